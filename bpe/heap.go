package bpe

import "container/heap"

// pairEntry is a snapshot of one pair's count at the time it was pushed.
// Pushed whenever a pair's live count changes; a popped entry is only
// authoritative if its count still matches pairCounts, otherwise it is
// stale (superseded by a later push for the same pair) and is discarded.
type pairEntry struct {
	pair    pairKey
	count   int64
	aBytes  []byte // vocab bytes of pair.A at push time, for tie-break
	bBytes  []byte // vocab bytes of pair.B at push time, for tie-break
	heapIdx int
}

// pairHeap is a max-heap ordered by (count desc, then the lexicographically
// larger byte pair wins on a tie), matching the trainer's tie-break rule.
type pairHeap []*pairEntry

func (h pairHeap) Len() int { return len(h) }

func (h pairHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.count != b.count {
		return a.count > b.count
	}
	return comparePairBytes(a.aBytes, a.bBytes, b.aBytes, b.bBytes) > 0
}

func (h pairHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx = i
	h[j].heapIdx = j
}

func (h *pairHeap) Push(x any) {
	e := x.(*pairEntry)
	e.heapIdx = len(*h)
	*h = append(*h, e)
}

func (h *pairHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.heapIdx = -1
	*h = old[:n-1]
	return e
}

// comparePairBytes orders two byte pairs the way the tie-break rule
// requires: compare A's bytes, then B's bytes, lexicographically.
func comparePairBytes(a1, b1, a2, b2 []byte) int {
	if c := compareBytes(a1, a2); c != 0 {
		return c
	}
	return compareBytes(b1, b2)
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// pairSelector wraps a pairHeap with lazy invalidation against a live count
// table, so a caller can push a new snapshot whenever a count changes
// without removing the old one, and still pop the true current best pair.
type pairSelector struct {
	h     pairHeap
	vocab *Vocabulary
}

func newPairSelector(vocab *Vocabulary) *pairSelector {
	s := &pairSelector{vocab: vocab}
	heap.Init(&s.h)
	return s
}

// push records (or re-records) a pair's current count.
func (s *pairSelector) push(p pairKey, count int64) {
	aBytes, _ := s.vocab.Bytes(p.A)
	bBytes, _ := s.vocab.Bytes(p.B)
	heap.Push(&s.h, &pairEntry{pair: p, count: count, aBytes: aBytes, bBytes: bBytes})
}

// best pops and discards stale entries until it finds one whose count
// still matches live, or the heap is empty. It does not remove the
// returned entry's underlying count from live; callers are expected to
// zero it out (or stop pushing for it) once consumed.
func (s *pairSelector) best(live map[pairKey]int64) (pairKey, int64, bool) {
	for s.h.Len() > 0 {
		e := heap.Pop(&s.h).(*pairEntry)
		if cur, ok := live[e.pair]; ok && cur == e.count && cur > 0 {
			return e.pair, e.count, true
		}
	}
	return pairKey{}, 0, false
}
