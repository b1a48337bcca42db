package embedding

import (
	"fmt"
	"math"
	"sort"

	"github.com/viant/embias/geometry"
)

// Neighbor is a single nearest-neighbour match.
type Neighbor struct {
	Word  string
	Score float64
}

// NearestNeighbors returns up to k words of the store ranked by cosine
// similarity to the query vector, best first. Words with zero-magnitude
// vectors are skipped.
func NearestNeighbors(store Store, query []float32, k int) ([]Neighbor, error) {
	if store.Dim() == 0 {
		return nil, nil
	}
	if len(query) != store.Dim() {
		return nil, fmt.Errorf("embedding: query dim %d != store dim %d", len(query), store.Dim())
	}
	qm := geometry.Norm(query)
	if qm == 0 {
		return nil, nil
	}

	words := store.Words()
	scored := make([]Neighbor, 0, len(words))
	for _, word := range words {
		vec, ok := store.Vector(word)
		if !ok {
			continue
		}
		sim, err := geometry.CosineSimilarity(query, vec)
		if err != nil || math.IsNaN(sim) {
			continue
		}
		scored = append(scored, Neighbor{Word: word, Score: sim})
	}
	sort.Slice(scored, func(a, b int) bool { return scored[a].Score > scored[b].Score })
	if k <= 0 || k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}
