// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - Distances and predecessors are dense slices indexed by vertex id.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once their vertex is finalized.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable wall.
//   - Candidate distances that would overflow int64 are discarded.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridroute/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum total weight source→v, Infinity if unreachable.
//   - prev: prev[v] is the predecessor of v on one shortest path; prev[v] == v
//     for the source and for every unreachable vertex.
//   - err:  ErrNilGraph or ErrVertexNotFound; both checked before any work.
//
// Ties keep the first recorded predecessor (strict "<" relaxation).
// Calling Dijkstra twice with the same arguments yields identical slices.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) ([]int64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Run.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only input
	options Options
	source  int
	dist    []int64 // best-known distance from source
	prev    []int   // predecessor on the best-known path
	visited []bool  // finalized vertices
	pq      nodePQ  // lazy min-heap
}

// init sets dist to Infinity (0 for the source), prev to self, and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = v
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes it,
// until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale entry: u was finalized through a shorter push.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.relax(u)
	}
}

// relax tries to improve every target of an edge leaving u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for v, w := range r.g.Neighbors(u) {
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		if w > Infinity-du {
			continue // would overflow
		}

		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict: equal candidates keep the existing predecessor.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its distance at push time.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
