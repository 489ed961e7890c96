// Package depgraph holds the task dependency graph and the algorithms run over it.
package depgraph

// Graph is a directed dependency graph that remembers node insertion order,
// so every traversal over it is deterministic.
type Graph struct {
	nodes []string
	edges map[string][]string
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{edges: make(map[string][]string)}
}

// AddNode adds id with its dependency list. Adding an existing id replaces
// its dependencies but keeps its original position.
func (g *Graph) AddNode(id string, dependencies []string) {
	if _, ok := g.edges[id]; !ok {
		g.nodes = append(g.nodes, id)
	}
	deps := make([]string, len(dependencies))
	copy(deps, dependencies)
	g.edges[id] = deps
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.edges[id]
	return ok
}

// Nodes returns node ids in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Dependencies returns the dependency list of id as given, unknown ids included.
func (g *Graph) Dependencies(id string) []string {
	return g.edges[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// BlockingCounts returns, for every node, how many dependency entries of
// other nodes point at it. Self-references and entries naming unknown ids
// are ignored.
func (g *Graph) BlockingCounts() map[string]int {
	counts := make(map[string]int, len(g.nodes))
	for _, id := range g.nodes {
		counts[id] = 0
	}
	for _, id := range g.nodes {
		for _, dep := range g.edges[id] {
			if dep == id {
				continue
			}
			if _, ok := counts[dep]; ok {
				counts[dep]++
			}
		}
	}
	return counts
}
