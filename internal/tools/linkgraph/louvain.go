package linkgraph

import (
	"maps"
	"slices"
)

// wgraph is an undirected weighted graph. Self loops are kept apart from the
// adjacency maps; deg counts a loop twice.
type wgraph struct {
	adj  []map[int]float64
	loop []float64
	deg  []float64
	m2   float64
}

func newWGraph(n int) *wgraph {
	g := &wgraph{
		adj:  make([]map[int]float64, n),
		loop: make([]float64, n),
		deg:  make([]float64, n),
	}
	for i := range g.adj {
		g.adj[i] = make(map[int]float64)
	}
	return g
}

func (g *wgraph) add(a, b int, w float64) {
	g.m2 += 2 * w
	if a == b {
		g.loop[a] += w
		g.deg[a] += 2 * w
		return
	}
	g.adj[a][b] += w
	g.adj[b][a] += w
	g.deg[a] += w
	g.deg[b] += w
}

// communities partitions n nodes by modularity with the Louvain method and
// returns a dense community id per node. Node order is fixed, so the result
// is deterministic for a given edge list.
func communities(n int, edges [][2]int, resolution float64) []int {
	g := newWGraph(n)
	for _, e := range edges {
		g.add(e[0], e[1], 1)
	}

	member := make([]int, n)
	for i := range member {
		member[i] = i
	}
	for {
		comm, moved := g.localMoving(resolution)
		if !moved {
			break
		}
		comm = dense(comm)
		for i := range member {
			member[i] = comm[member[i]]
		}
		g = g.aggregate(comm)
	}
	return dense(member)
}

// localMoving greedily moves each node into the neighbouring community with
// the best modularity gain until a full sweep moves nothing.
func (g *wgraph) localMoving(resolution float64) ([]int, bool) {
	n := len(g.adj)
	comm := make([]int, n)
	tot := make([]float64, n)
	for i := range comm {
		comm[i] = i
		tot[i] = g.deg[i]
	}
	if g.m2 == 0 {
		return comm, false
	}

	moved := false
	for improved := true; improved; {
		improved = false
		for i := 0; i < n; i++ {
			links := make(map[int]float64, len(g.adj[i]))
			for j, w := range g.adj[i] {
				links[comm[j]] += w
			}

			cur := comm[i]
			tot[cur] -= g.deg[i]
			best := cur
			bestGain := links[cur] - resolution*tot[cur]*g.deg[i]/g.m2
			for _, c := range slices.Sorted(maps.Keys(links)) {
				gain := links[c] - resolution*tot[c]*g.deg[i]/g.m2
				if gain > bestGain+1e-12 {
					best, bestGain = c, gain
				}
			}
			tot[best] += g.deg[i]

			if best != cur {
				comm[i] = best
				improved = true
				moved = true
			}
		}
	}
	return comm, moved
}

// aggregate collapses each community of a dense partition into one node.
func (g *wgraph) aggregate(comm []int) *wgraph {
	k := 0
	for _, c := range comm {
		k = max(k, c+1)
	}
	out := newWGraph(k)
	for i := range g.adj {
		if g.loop[i] > 0 {
			out.add(comm[i], comm[i], g.loop[i])
		}
		for j, w := range g.adj[i] {
			if j > i {
				out.add(comm[i], comm[j], w)
			}
		}
	}
	return out
}

// dense renumbers ids in first-seen order starting at zero.
func dense(ids []int) []int {
	mapping := make(map[int]int, len(ids))
	out := make([]int, len(ids))
	for i, id := range ids {
		d, ok := mapping[id]
		if !ok {
			d = len(mapping)
			mapping[id] = d
		}
		out[i] = d
	}
	return out
}
