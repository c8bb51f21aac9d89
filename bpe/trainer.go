package bpe

import "context"

// Trainer learns a MergeList and Vocabulary from a corpus, repeatedly
// merging the most frequent adjacent token pair until the target
// vocabulary size is reached or no pair remains to merge.
type Trainer struct {
	cfg trainerConfig
}

// NewTrainer builds a Trainer from functional options.
func NewTrainer(opts ...TrainerOption) (*Trainer, error) {
	cfg := trainerConfig{vocabSize: baseByteVocabSize, workers: 1}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Trainer{cfg: cfg}, nil
}

// tokenSlot is one distinct pre-token's mutable working state during
// training: its current (possibly partially merged) id sequence and the
// number of times it occurred in the corpus.
type tokenSlot struct {
	ids   ByteToken
	count int64
}

// Train runs the merge loop over a pre-built PreTokenCounter and returns
// the resulting Artifact. The counter is not mutated.
func (t *Trainer) Train(counter PreTokenCounter) (*Artifact, error) {
	vocab := NewVocabulary(t.cfg.specialTokens)
	specials := newSpecialTokenMap(t.cfg.specialTokens)

	if vocab.Len() > t.cfg.vocabSize {
		return nil, NewConfigError("vocab_size", t.cfg.vocabSize, ErrVocabTooSmall)
	}
	if vocab.Len() == t.cfg.vocabSize {
		return &Artifact{Vocabulary: vocab, Merges: nil, Specials: specials}, nil
	}

	slots := make([]*tokenSlot, 0, len(counter))
	for _, rec := range counter {
		ids := make(ByteToken, len(rec.ids))
		copy(ids, rec.ids)
		slots = append(slots, &tokenSlot{ids: ids, count: rec.count})
	}

	pairCounts := make(map[pairKey]int64)
	pairLocations := make(map[pairKey]map[int]struct{})
	for i, s := range slots {
		for j := 0; j+1 < len(s.ids); j++ {
			p := pairKeyOf(s.ids, j)
			pairCounts[p] += s.count
			if pairLocations[p] == nil {
				pairLocations[p] = make(map[int]struct{})
			}
			pairLocations[p][i] = struct{}{}
		}
	}

	selector := newPairSelector(vocab)
	for p, c := range pairCounts {
		selector.push(p, c)
	}

	var merges MergeList
	for vocab.Len() < t.cfg.vocabSize {
		bestPair, _, ok := selector.best(pairCounts)
		if !ok {
			break
		}

		newID := vocab.AddMerge(bestPair.A, bestPair.B)
		merges = append(merges, Merge{A: bestPair.A, B: bestPair.B, C: newID})

		slotsToUpdate := pairLocations[bestPair]
		delete(pairCounts, bestPair)
		delete(pairLocations, bestPair)

		touched := make(map[pairKey]struct{})
		for slotIdx := range slotsToUpdate {
			slot := slots[slotIdx]
			oldIDs := slot.ids

			for j := 0; j+1 < len(oldIDs); j++ {
				p := pairKeyOf(oldIDs, j)
				pairCounts[p] -= slot.count
				if pairCounts[p] <= 0 {
					delete(pairCounts, p)
				}
				if locs, ok := pairLocations[p]; ok {
					delete(locs, slotIdx)
					if len(locs) == 0 {
						delete(pairLocations, p)
					}
				}
				touched[p] = struct{}{}
			}

			newIDs := applyMerge(oldIDs, bestPair.A, bestPair.B, newID)
			slot.ids = newIDs

			for j := 0; j+1 < len(newIDs); j++ {
				p := pairKeyOf(newIDs, j)
				pairCounts[p] += slot.count
				if pairLocations[p] == nil {
					pairLocations[p] = make(map[int]struct{})
				}
				pairLocations[p][slotIdx] = struct{}{}
				touched[p] = struct{}{}
			}
		}

		for p := range touched {
			if p == bestPair {
				continue
			}
			if c, ok := pairCounts[p]; ok {
				selector.push(p, c)
			}
		}
	}

	return &Artifact{Vocabulary: vocab, Merges: merges, Specials: specials}, nil
}

// TrainFromFile pre-tokenizes path in parallel (see CountPreTokensParallel)
// using the workers configured via WithTrainWorkers, then trains on the
// resulting counter.
func (t *Trainer) TrainFromFile(ctx context.Context, path string) (*Artifact, error) {
	specials := newSpecialTokenMap(t.cfg.specialTokens)
	counter, err := CountPreTokensParallel(ctx, path, specials, t.cfg.workers)
	if err != nil {
		return nil, err
	}
	return t.Train(counter)
}
