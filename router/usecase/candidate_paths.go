package usecase

import (
	"github.com/charisma-labs/srs/domain"
)

// findAllPaths enumerates every simple path between the two tokens with at
// most maxHops pool traversals. The search is breadth-first over paths, so
// results come out shortest first; within the same length they follow the
// graph's deterministic edge order. A path never extends past the
// destination and never revisits a token.
//
// Returns nil when either token is absent from the graph or when source
// and destination are the same token.
func findAllPaths(graph *domain.SwapGraph, srcContractID, dstContractID string, maxHops int) []domain.CandidatePath {
	if srcContractID == dstContractID {
		return nil
	}

	srcToken, ok := graph.Token(srcContractID)
	if !ok {
		return nil
	}
	if !graph.HasToken(dstContractID) {
		return nil
	}

	var paths []domain.CandidatePath

	queue := []domain.CandidatePath{{srcToken}}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		last := path[len(path)-1]
		if last.ContractID == dstContractID {
			paths = append(paths, path)
			continue
		}

		if path.NumHops() == maxHops {
			continue
		}

		for _, edge := range graph.Edges(last.ContractID) {
			if pathContains(path, edge.Token.ContractID) {
				continue
			}

			extended := make(domain.CandidatePath, len(path), len(path)+1)
			copy(extended, path)
			extended = append(extended, edge.Token)

			queue = append(queue, extended)
		}
	}

	return paths
}

// findPath returns the first path the breadth-first search reaches, which
// is also a shortest one, or nil when no path exists. Existence checks use
// this instead of findAllPaths so they stop at the first hit rather than
// enumerating the full candidate set.
func findPath(graph *domain.SwapGraph, srcContractID, dstContractID string, maxHops int) domain.CandidatePath {
	if srcContractID == dstContractID {
		return nil
	}

	srcToken, ok := graph.Token(srcContractID)
	if !ok {
		return nil
	}
	if !graph.HasToken(dstContractID) {
		return nil
	}

	queue := []domain.CandidatePath{{srcToken}}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		last := path[len(path)-1]
		if last.ContractID == dstContractID {
			return path
		}

		if path.NumHops() == maxHops {
			continue
		}

		for _, edge := range graph.Edges(last.ContractID) {
			if pathContains(path, edge.Token.ContractID) {
				continue
			}

			extended := make(domain.CandidatePath, len(path), len(path)+1)
			copy(extended, path)
			extended = append(extended, edge.Token)

			queue = append(queue, extended)
		}
	}

	return nil
}

func pathContains(path domain.CandidatePath, tokenContractID string) bool {
	for _, token := range path {
		if token.ContractID == tokenContractID {
			return true
		}
	}
	return false
}
