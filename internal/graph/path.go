package graph

// ShortestPath returns a minimum-hop path from start to end, both inclusive.
// It returns nil when either station is unknown or no path connects them.
func (g *Graph) ShortestPath(start, end string) []string {
	if !g.Has(start) || !g.Has(end) {
		return nil
	}
	if start == end {
		return []string{start}
	}

	parent := map[string]string{start: ""}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, next := range g.adj[cur] {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			if next == end {
				return buildPath(parent, start, end)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

func buildPath(parent map[string]string, start, end string) []string {
	var rev []string
	for cur := end; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == start {
			break
		}
	}

	path := make([]string, len(rev))
	for i, name := range rev {
		path[len(rev)-1-i] = name
	}
	return path
}
