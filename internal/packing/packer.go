package packing

import (
	"sort"

	"specsplit/internal/domain"
)

// Packer distributes weighted spec items across chunks.
type Packer interface {
	Pack(items []domain.SpecItem, chunkCount int) ([]domain.Chunk, error)
}

// LPTPacker implements the longest-processing-time-first heuristic: items are
// placed heaviest-first into the currently lightest chunk. It does not
// guarantee an optimal makespan but approximates it well in
// O(n log n + n*chunkCount).
type LPTPacker struct{}

// NewLPTPacker creates a new LPTPacker.
func NewLPTPacker() *LPTPacker {
	return &LPTPacker{}
}

// Pack assigns every item to exactly one of chunkCount chunks. The sort is
// stable and ties on the lightest chunk resolve to the first index, so
// identical inputs always produce identical assignments; parallel CI
// invocations rely on that to agree on the partition without coordination.
func (p *LPTPacker) Pack(items []domain.SpecItem, chunkCount int) ([]domain.Chunk, error) {
	if chunkCount < 1 {
		return nil, ErrInvalidChunkCount
	}

	sorted := make([]domain.SpecItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	chunks := make([]domain.Chunk, chunkCount)
	for _, item := range sorted {
		lightest := 0
		for i := 1; i < chunkCount; i++ {
			if chunks[i].Weight < chunks[lightest].Weight {
				lightest = i
			}
		}
		chunks[lightest].Items = append(chunks[lightest].Items, item)
		chunks[lightest].Weight += item.Weight
	}

	return chunks, nil
}
