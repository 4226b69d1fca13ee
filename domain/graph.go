package domain

// GraphEdge is a single adjacency: the neighboring token and the pool
// connecting it to the node owning the edge.
type GraphEdge struct {
	Token Token
	Pool  Pool
}

type graphNode struct {
	token Token
	// edges in pool insertion order. Deterministic enumeration matters:
	// path enumeration order is the tie-breaker during best-path selection.
	edges []GraphEdge
	// edgeIndex maps a neighbor contract id to its position in edges.
	edgeIndex map[string]int
}

// SwapGraph is an adjacency structure over the pool set:
// token -> {neighbor token -> pool}. A graph is an immutable snapshot;
// it is rebuilt wholesale whenever the pool registry changes and is
// never mutated in place.
type SwapGraph struct {
	nodes    map[string]*graphNode
	numPools int
}

// NewSwapGraph builds a graph from the given pool set. For every pool a
// bidirectional edge is inserted between its two tokens, with the pool
// reference stored on both sides. Construction is pure; empty input
// produces an empty graph.
//
// CONTRACT: pools have been validated. If the same token pair appears in
// more than one pool, the later pool replaces the earlier edge.
func NewSwapGraph(pools []Pool) *SwapGraph {
	g := &SwapGraph{
		nodes: make(map[string]*graphNode, len(pools)*2),
	}

	for _, pool := range pools {
		g.addEdge(pool.Token0, pool.Token1, pool)
		g.addEdge(pool.Token1, pool.Token0, pool)
		g.numPools++
	}

	return g
}

func (g *SwapGraph) addEdge(from, to Token, pool Pool) {
	node, ok := g.nodes[from.ContractID]
	if !ok {
		node = &graphNode{
			token:     from,
			edgeIndex: make(map[string]int),
		}
		g.nodes[from.ContractID] = node
	}

	edge := GraphEdge{Token: to, Pool: pool}
	if i, ok := node.edgeIndex[to.ContractID]; ok {
		node.edges[i] = edge
		return
	}

	node.edgeIndex[to.ContractID] = len(node.edges)
	node.edges = append(node.edges, edge)
}

// HasToken returns true if the token is present in the graph.
func (g *SwapGraph) HasToken(tokenContractID string) bool {
	_, ok := g.nodes[tokenContractID]
	return ok
}

// Token returns the token metadata stored in the graph for the given
// contract id.
func (g *SwapGraph) Token(tokenContractID string) (Token, bool) {
	node, ok := g.nodes[tokenContractID]
	if !ok {
		return Token{}, false
	}
	return node.token, true
}

// Edges returns the adjacency list of the given token in deterministic
// (pool insertion) order. Callers must not mutate the returned slice.
func (g *SwapGraph) Edges(tokenContractID string) []GraphEdge {
	node, ok := g.nodes[tokenContractID]
	if !ok {
		return nil
	}
	return node.edges
}

// GetDirectPool returns the pool directly connecting the two tokens,
// if one exists. O(1) lookup via the adjacency map.
func (g *SwapGraph) GetDirectPool(fromContractID, toContractID string) (Pool, bool) {
	node, ok := g.nodes[fromContractID]
	if !ok {
		return Pool{}, false
	}
	i, ok := node.edgeIndex[toContractID]
	if !ok {
		return Pool{}, false
	}
	return node.edges[i].Pool, true
}

// NumTokens returns the number of tokens in the graph.
func (g *SwapGraph) NumTokens() int {
	return len(g.nodes)
}

// NumPools returns the number of pool insertions that built the graph.
func (g *SwapGraph) NumPools() int {
	return g.numPools
}
