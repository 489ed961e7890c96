package depgraph

type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	done
)

// frame is one level of the depth-first walk: the node being explored and
// the index of the next dependency to look at.
type frame struct {
	node string
	next int
}

// DetectCycles returns every cycle found by a depth-first walk that starts
// from each unvisited node in insertion order. A cycle is the slice of the
// active path from the revisited node through the current node, closed by
// repeating the revisited node, e.g. [A B C A]. A self-loop yields [A A].
//
// The walk keeps its own frame stack instead of recursing, so arbitrarily
// long dependency chains are safe. The result is never nil.
func DetectCycles(g *Graph) [][]string {
	cycles := [][]string{}
	if g == nil {
		return cycles
	}

	state := make(map[string]visitState, len(g.nodes))
	pathIndex := make(map[string]int)
	var path []string
	var frames []frame

	enter := func(id string) {
		state[id] = inProgress
		pathIndex[id] = len(path)
		path = append(path, id)
		frames = append(frames, frame{node: id})
	}

	for _, root := range g.nodes {
		if state[root] != unvisited {
			continue
		}
		enter(root)

		for len(frames) > 0 {
			top := &frames[len(frames)-1]
			deps := g.edges[top.node]

			if top.next >= len(deps) {
				state[top.node] = done
				delete(pathIndex, top.node)
				path = path[:len(path)-1]
				frames = frames[:len(frames)-1]
				continue
			}

			dep := deps[top.next]
			top.next++

			if !g.Has(dep) {
				continue
			}

			switch state[dep] {
			case unvisited:
				enter(dep)
			case inProgress:
				if idx, ok := pathIndex[dep]; ok {
					cycle := make([]string, 0, len(path)-idx+1)
					cycle = append(cycle, path[idx:]...)
					cycle = append(cycle, dep)
					cycles = append(cycles, cycle)
				}
			}
		}
	}

	return cycles
}
