// File: search.go
// Role: per-call search context (label maps, predecessor links, colors),
// endpoint validation, path backtracking and the shared priority frontier.
//
// The permanent station records carry no traversal scratch. Every routing
// call allocates a fresh scratch, which is what makes the "reset before
// every call" invariant hold by construction: there is no state to reset.
package route

import "github.com/katalvlaran/railnet/core"

// Visitation colors for stack- and frontier-based traversals.
const (
	white = iota // not yet discovered
	gray         // on the stack / in the frontier
	black        // fully explored
)

// scratch is the transient state of one routing call.
type scratch struct {
	dist  map[string]core.Distance // primary distance label
	aux   map[string]core.Distance // secondary label (accumulated / heuristic-augmented)
	when  map[string]core.Time     // arrival/departure label (EarliestArrival only)
	pred  map[string]string        // predecessor station; absence = undiscovered
	color map[string]int           // visitation color; absence = white
}

func newScratch(net *core.Network) *scratch {
	n := net.StationCount()

	return &scratch{
		dist:  make(map[string]core.Distance, n),
		aux:   make(map[string]core.Distance, n),
		when:  make(map[string]core.Time, n),
		pred:  make(map[string]string, n),
		color: make(map[string]int, n),
	}
}

// distOf reads the primary label, defaulting to Unreachable.
func (s *scratch) distOf(id string) core.Distance {
	if d, ok := s.dist[id]; ok {
		return d
	}

	return core.Unreachable
}

// whenOf reads the time label, defaulting to NoTime.
func (s *scratch) whenOf(id string) core.Time {
	if t, ok := s.when[id]; ok {
		return t
	}

	return core.NoTime
}

// backtrack walks predecessor links from goal back to start and returns the
// station ids in start→goal order. It returns nil when the chain never
// reaches start (the goal was not discovered from it).
func (s *scratch) backtrack(start, goal string) []string {
	ids := []string{goal}
	cur := goal
	for cur != start {
		p, ok := s.pred[cur]
		if !ok {
			return nil
		}
		ids = append(ids, p)
		cur = p
	}
	// Reverse in place: collected goal→start, report start→goal.
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids
}

// endpoints validates a (network, from, to) triple.
func endpoints(net *core.Network, from, to string) error {
	if net == nil {
		return ErrNetworkNil
	}
	if !net.HasStation(from) || !net.HasStation(to) {
		return ErrStationNotFound
	}

	return nil
}

// frontierItem is one entry of the priority frontier: a station id keyed by
// whatever int64-backed metric the algorithm orders on.
type frontierItem struct {
	id  string
	key int64
}

// frontier is a min-heap of frontierItem for container/heap, using the
// lazy decrease-key pattern: improvements push a fresh entry and outdated
// entries pop harmlessly (the relax test rejects them). Ties break on
// station id for deterministic pop order.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].key != f[j].key {
		return f[i].key < f[j].key
	}

	return f[i].id < f[j].id
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
