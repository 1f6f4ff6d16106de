package packing

import (
	"errors"
	"reflect"
	"testing"

	"specsplit/internal/domain"
)

func items(pairs ...interface{}) []domain.SpecItem {
	out := make([]domain.SpecItem, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.SpecItem{
			Path:   pairs[i].(string),
			Weight: pairs[i+1].(float64),
		})
	}
	return out
}

func TestLPTPacker_Pack(t *testing.T) {
	packer := NewLPTPacker()

	t.Run("balances heaviest first onto lightest chunk", func(t *testing.T) {
		// Mirrors the degraded-timing scenario: c has no timing data and is
		// estimated at 100, a and b carry measured durations.
		chunks, err := packer.Pack(items(
			"spec/a_spec.sh", 10.0,
			"spec/b_spec.sh", 1.0,
			"spec/c_spec.sh", 100.0,
		), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := chunks[0].Paths(); !reflect.DeepEqual(got, []string{"spec/c_spec.sh"}) {
			t.Errorf("chunk 0: expected [spec/c_spec.sh], got %v", got)
		}
		if got := chunks[1].Paths(); !reflect.DeepEqual(got, []string{"spec/a_spec.sh", "spec/b_spec.sh"}) {
			t.Errorf("chunk 1: expected [spec/a_spec.sh spec/b_spec.sh], got %v", got)
		}
		if chunks[0].Weight != 100 || chunks[1].Weight != 11 {
			t.Errorf("unexpected weights: %v, %v", chunks[0].Weight, chunks[1].Weight)
		}
	})

	t.Run("single chunk receives everything", func(t *testing.T) {
		in := items("spec/a_spec.sh", 5.0, "spec/b_spec.sh", 3.0, "spec/c_spec.sh", 8.0)
		chunks, err := packer.Pack(in, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chunks) != 1 || len(chunks[0].Items) != 3 {
			t.Fatalf("expected all 3 items in one chunk, got %v", chunks)
		}
		if chunks[0].Weight != 16 {
			t.Errorf("expected weight 16, got %v", chunks[0].Weight)
		}
	})

	t.Run("rejects chunk count below one", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			if _, err := packer.Pack(items("spec/a_spec.sh", 1.0), n); !errors.Is(err, ErrInvalidChunkCount) {
				t.Errorf("chunk count %d: expected ErrInvalidChunkCount, got %v", n, err)
			}
		}
	})

	t.Run("no items leaves all chunks empty", func(t *testing.T) {
		chunks, err := packer.Pack(nil, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chunks) != 3 {
			t.Fatalf("expected 3 chunks, got %d", len(chunks))
		}
		for i, chunk := range chunks {
			if len(chunk.Items) != 0 || chunk.Weight != 0 {
				t.Errorf("chunk %d should be empty, got %v", i, chunk)
			}
		}
	})

	t.Run("more chunks than items leaves trailing chunks empty", func(t *testing.T) {
		chunks, err := packer.Pack(items("spec/a_spec.sh", 4.0), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(chunks[0].Items) != 1 {
			t.Errorf("expected item in chunk 0, got %v", chunks)
		}
		if len(chunks[1].Items) != 0 || len(chunks[2].Items) != 0 {
			t.Errorf("expected chunks 1 and 2 empty, got %v", chunks)
		}
	})

	t.Run("equal weights break ties toward the first chunk", func(t *testing.T) {
		chunks, err := packer.Pack(items(
			"spec/a_spec.sh", 2.0,
			"spec/b_spec.sh", 2.0,
			"spec/c_spec.sh", 2.0,
		), 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// a -> chunk 0, b -> chunk 1, c -> chunk 0 (first minimum on the tie).
		if got := chunks[0].Paths(); !reflect.DeepEqual(got, []string{"spec/a_spec.sh", "spec/c_spec.sh"}) {
			t.Errorf("chunk 0: expected [spec/a_spec.sh spec/c_spec.sh], got %v", got)
		}
		if got := chunks[1].Paths(); !reflect.DeepEqual(got, []string{"spec/b_spec.sh"}) {
			t.Errorf("chunk 1: expected [spec/b_spec.sh], got %v", got)
		}
	})

	t.Run("weights are conserved and items assigned exactly once", func(t *testing.T) {
		in := items(
			"spec/a_spec.sh", 7.0,
			"spec/b_spec.sh", 0.0,
			"spec/c_spec.sh", 12.5,
			"spec/d_spec.sh", 3.0,
			"spec/e_spec.sh", 3.0,
		)
		chunks, err := packer.Pack(in, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var total float64
		seen := make(map[string]int)
		for _, chunk := range chunks {
			var sum float64
			for _, item := range chunk.Items {
				seen[item.Path]++
				sum += item.Weight
			}
			if sum != chunk.Weight {
				t.Errorf("chunk weight %v does not match member sum %v", chunk.Weight, sum)
			}
			total += chunk.Weight
		}
		if total != 25.5 {
			t.Errorf("expected total weight 25.5, got %v", total)
		}
		if len(seen) != len(in) {
			t.Errorf("expected %d distinct items, got %d", len(in), len(seen))
		}
		for path, count := range seen {
			if count != 1 {
				t.Errorf("item %s assigned %d times", path, count)
			}
		}
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		in := items(
			"spec/a_spec.sh", 5.0,
			"spec/b_spec.sh", 5.0,
			"spec/c_spec.sh", 2.0,
			"spec/d_spec.sh", 9.0,
		)
		first, err := packer.Pack(in, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < 10; i++ {
			again, err := packer.Pack(in, 3)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("run %d differed: %v vs %v", i, first, again)
			}
		}
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		in := items("spec/a_spec.sh", 1.0, "spec/b_spec.sh", 9.0)
		if _, err := packer.Pack(in, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in[0].Path != "spec/a_spec.sh" || in[1].Path != "spec/b_spec.sh" {
			t.Errorf("input slice was reordered: %v", in)
		}
	})
}
