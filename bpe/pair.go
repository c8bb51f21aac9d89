package bpe

// pairKey identifies an adjacent pair of token ids. Unlike tokenKey, a pair
// always has exactly two elements, so a plain comparable struct serves
// directly as a map key without packing.
type pairKey struct {
	A, B TokenID
}

// Merge is one learned rule: token ids A and B merge into token id C. The
// position of a Merge within a MergeList is the order it was learned, and
// that order is itself part of the contract the Encoder walks.
type Merge struct {
	A, B, C TokenID
}
