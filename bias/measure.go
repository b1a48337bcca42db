package bias

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/viant/embias/embedding"
	"github.com/viant/embias/geometry"
)

// WordScore is a word together with its projection on a direction.
type WordScore struct {
	Word       string
	Projection float64
}

// ProjectOnDirection returns the projection score of a word: the cosine
// similarity of its vector with the direction. Cosine is norm-invariant, so
// the word vector need not be pre-normalized.
func ProjectOnDirection(store embedding.Store, dir Direction, word string) (float64, error) {
	if !dir.Identified() {
		return 0, ErrDirectionNotIdentified
	}
	vec, err := vectorOf(store, word)
	if err != nil {
		return 0, err
	}
	return geometry.CosineSimilarity(vec, dir.Vector)
}

// ProjectionScores computes the projection of every word and returns the
// table sorted by projection, descending. External consumers (plotting,
// reporting) rely on this ordering.
func ProjectionScores(store embedding.Store, dir Direction, words []string) ([]WordScore, error) {
	if !dir.Identified() {
		return nil, ErrDirectionNotIdentified
	}
	scores := make([]WordScore, 0, len(words))
	for _, word := range words {
		p, err := ProjectOnDirection(store, dir, word)
		if err != nil {
			return nil, err
		}
		scores = append(scores, WordScore{Word: word, Projection: p})
	}
	sort.Slice(scores, func(a, b int) bool { return scores[a].Projection > scores[b].Projection })
	return scores, nil
}

// DirectBias aggregates the absolute projection of neutral words on the
// direction: mean(|projection|^c). The strictness c is typically 1; c <= 0
// falls back to 1. Larger c penalizes strongly-biased words more.
func DirectBias(store embedding.Store, dir Direction, neutralWords []string, c float64) (float64, error) {
	if !dir.Identified() {
		return 0, ErrDirectionNotIdentified
	}
	if len(neutralWords) == 0 {
		return 0, fmt.Errorf("bias: no neutral words given")
	}
	if c <= 0 {
		c = 1
	}
	var sum float64
	for _, word := range neutralWords {
		p, err := ProjectOnDirection(store, dir, word)
		if err != nil {
			return 0, err
		}
		sum += math.Pow(math.Abs(p), c)
	}
	return sum / float64(len(neutralWords)), nil
}

// IndirectBias measures the share of the two words' similarity attributable
// to the bias direction (also called pair bias): with both vectors
// normalized, (<v1,v2> - cosine(reject(v1), reject(v2))) / <v1,v2>.
//
// The measure is undefined in two degenerate cases: when the raw similarity
// <v1,v2> is zero or near zero the quotient blows up, and when a word lies
// exactly on the direction its rejection is the zero vector. Both return NaN
// (or +-Inf) rather than an error, and callers should guard against it.
func IndirectBias(store embedding.Store, dir Direction, word1, word2 string) (float64, error) {
	if !dir.Identified() {
		return 0, ErrDirectionNotIdentified
	}
	v1, err := vectorOf(store, word1)
	if err != nil {
		return 0, err
	}
	v2, err := vectorOf(store, word2)
	if err != nil {
		return 0, err
	}
	n1, err := geometry.Normalize(v1)
	if err != nil {
		return 0, fmt.Errorf("bias: %q: %w", word1, err)
	}
	n2, err := geometry.Normalize(v2)
	if err != nil {
		return 0, fmt.Errorf("bias: %q: %w", word2, err)
	}

	r1, err := geometry.Reject(n1, dir.Vector)
	if err != nil {
		return 0, err
	}
	r2, err := geometry.Reject(n2, dir.Vector)
	if err != nil {
		return 0, err
	}

	inner, err := geometry.Dot(n1, n2)
	if err != nil {
		return 0, err
	}
	perpendicular, err := geometry.CosineSimilarity(r1, r2)
	if errors.Is(err, geometry.ErrZeroVector) {
		// A word on the direction itself has no perpendicular component.
		return math.NaN(), nil
	}
	if err != nil {
		return 0, err
	}
	return (inner - perpendicular) / inner, nil
}
