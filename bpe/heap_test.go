package bpe

import "testing"

func TestPairSelectorCountWins(t *testing.T) {
	v := NewVocabulary(nil)
	s := newPairSelector(v)

	live := map[pairKey]int64{
		{A: 'a', B: 'b'}: 3,
		{A: 'c', B: 'd'}: 5,
	}
	for p, c := range live {
		s.push(p, c)
	}

	best, count, ok := s.best(live)
	if !ok {
		t.Fatal("expected a best pair")
	}
	if best != (pairKey{A: 'c', B: 'd'}) || count != 5 {
		t.Errorf("expected (c,d)=5 to win, got %v=%d", best, count)
	}
}

func TestPairSelectorTieBreakLexicographicallyLarger(t *testing.T) {
	v := NewVocabulary(nil)
	s := newPairSelector(v)

	// Same count; ('y','z') is lexicographically larger than ('a','b').
	live := map[pairKey]int64{
		{A: 'a', B: 'b'}: 4,
		{A: 'y', B: 'z'}: 4,
	}
	for p, c := range live {
		s.push(p, c)
	}

	best, _, ok := s.best(live)
	if !ok {
		t.Fatal("expected a best pair")
	}
	if best != (pairKey{A: 'y', B: 'z'}) {
		t.Errorf("expected larger byte pair (y,z) to win tie, got %v", best)
	}
}

func TestPairSelectorStaleEntryDiscarded(t *testing.T) {
	v := NewVocabulary(nil)
	s := newPairSelector(v)

	p := pairKey{A: 'a', B: 'b'}
	s.push(p, 10)
	// count changes; a fresh snapshot is pushed without removing the old one.
	live := map[pairKey]int64{p: 2}
	s.push(p, 2)

	_, count, ok := s.best(live)
	if !ok {
		t.Fatal("expected a best pair")
	}
	if count != 2 {
		t.Errorf("expected the live count 2 to win over the stale entry 10, got %d", count)
	}
}
