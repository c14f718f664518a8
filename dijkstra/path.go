package dijkstra

import "fmt"

// Path rebuilds the route source→…→goal from a predecessor vector produced
// by Dijkstra.
//
// Behavior:
//  1. goal == source yields [source].
//  2. Otherwise walk goal, prev[goal], prev[prev[goal]], … until source.
//  3. A vertex that is its own predecessor (other than source) means the goal
//     was never reached: ErrUnreachable.
//  4. A walk longer than len(prev) means prev does not describe a tree rooted
//     at source (e.g. a cycle): also ErrUnreachable, never an endless loop.
//
// The returned slice is freshly allocated, source first.
// Complexity: O(len(path)) time and space.
func Path(prev []int, source, goal int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: goal %d", ErrVertexNotFound, goal)
	}

	rev := []int{goal}
	for cur := goal; cur != source; {
		p := prev[cur]
		if p == cur || p < 0 || p >= n || len(rev) > n {
			return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, goal)
		}
		rev = append(rev, p)
		cur = p
	}

	// Reverse in place: collected goal-first.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
