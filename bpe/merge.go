package bpe

// MergeList is the ordered sequence of learned merge rules. Insertion
// order is the contract: the Encoder applies rules in this order, a sweep
// per rule, not a per-position best-pair search.
type MergeList []Merge

// applyMerge performs one non-overlapping left-to-right replacement of
// every occurrence of (a, b) in ids with newID, advancing past a
// successful match by 2 so the same position is never consumed twice.
func applyMerge(ids ByteToken, a, b, newID TokenID) ByteToken {
	if len(ids) < 2 {
		return ids
	}
	out := make(ByteToken, 0, len(ids))
	i := 0
	for i < len(ids) {
		if i < len(ids)-1 && ids[i] == a && ids[i+1] == b {
			out = append(out, newID)
			i += 2
			continue
		}
		out = append(out, ids[i])
		i++
	}
	return out
}

// pairKeyOf returns the pairKey for adjacent ids[i], ids[i+1].
func pairKeyOf(ids ByteToken, i int) pairKey {
	return pairKey{A: ids[i], B: ids[i+1]}
}
