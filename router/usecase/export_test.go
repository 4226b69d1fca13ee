package usecase

import (
	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
)

func FindAllPaths(graph *domain.SwapGraph, srcContractID, dstContractID string, maxHops int) []domain.CandidatePath {
	return findAllPaths(graph, srcContractID, dstContractID, maxHops)
}

func FindPath(graph *domain.SwapGraph, srcContractID, dstContractID string, maxHops int) domain.CandidatePath {
	return findPath(graph, srcContractID, dstContractID, maxHops)
}

func PricingCacheKey(amountIn math.Int, path domain.CandidatePath) string {
	return pricingCacheKey(amountIn, path)
}
