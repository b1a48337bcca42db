package bias

import (
	"errors"
	"fmt"

	"github.com/viant/embias/embedding"
	"github.com/viant/embias/geometry"
)

// Direction estimation methods.
const (
	MethodSingle = "single"
	MethodSum    = "sum"
	MethodPCA    = "pca"
)

// DirectionMethods enumerates the valid Identify methods.
var DirectionMethods = []string{MethodSingle, MethodSum, MethodPCA}

// ErrDirectionNotIdentified is returned when a measurement or debias
// operation receives a zero-value Direction.
var ErrDirectionNotIdentified = errors.New("bias: direction not identified")

// Pair is a definitional word pair spanning the bias axis, e.g. {he, she}.
type Pair struct {
	First  string
	Second string
}

// Direction is an identified bias axis: a unit-norm vector oriented so that
// cosine(vector(PositiveEnd) - vector(NegativeEnd), Vector) >= 0. It is a
// read-only value; create one with Identify.
type Direction struct {
	Vector      []float32
	PositiveEnd string
	NegativeEnd string
}

// Identified reports whether the direction has been estimated.
func (d Direction) Identified() bool { return len(d.Vector) > 0 }

func vectorOf(store embedding.Store, word string) ([]float32, error) {
	vec, ok := store.Vector(word)
	if !ok {
		return nil, fmt.Errorf("bias: word %q not in store", word)
	}
	return vec, nil
}

// Identify estimates the bias direction from definitional pairs using one of
// the methods in DirectionMethods:
//
//   - single: normalize(normalize(first) - normalize(second)) of the first
//     pair only;
//   - sum: per-position group sums of the raw vectors, each normalized, then
//     the normalized difference;
//   - pca: first principal component of the pair-centered normalized
//     vectors; fails unless it explains at least FirstPCThreshold of the
//     variance.
//
// Whatever the method, the sign is calibrated against positiveEnd and
// negativeEnd so that projecting positiveEnd yields a non-negative score.
func Identify(store embedding.Store, positiveEnd, negativeEnd string, pairs []Pair, method string) (Direction, error) {
	if positiveEnd == negativeEnd {
		return Direction{}, fmt.Errorf("bias: positive and negative ends should differ, both are %q", positiveEnd)
	}
	if len(pairs) == 0 {
		return Direction{}, fmt.Errorf("bias: no definitional pairs")
	}

	var vector []float32
	var err error
	switch method {
	case MethodSingle:
		vector, err = singleDirection(store, pairs[0])
	case MethodSum:
		vector, err = sumDirection(store, pairs)
	case MethodPCA:
		vector, err = principalDirection(store, pairs)
	default:
		return Direction{}, fmt.Errorf("bias: method should be one of %v, %q was given", DirectionMethods, method)
	}
	if err != nil {
		return Direction{}, err
	}

	// The estimation (PCA in particular) does not control orientation; flip
	// so that the positive end projects positively.
	pos, err := vectorOf(store, positiveEnd)
	if err != nil {
		return Direction{}, err
	}
	neg, err := vectorOf(store, negativeEnd)
	if err != nil {
		return Direction{}, err
	}
	diff := make([]float32, len(pos))
	for i := range pos {
		diff[i] = pos[i] - neg[i]
	}
	sim, err := geometry.CosineSimilarity(diff, vector)
	if err != nil {
		return Direction{}, fmt.Errorf("bias: sign calibration: %w", err)
	}
	if sim < 0 {
		for i := range vector {
			vector[i] = -vector[i]
		}
	}

	return Direction{Vector: vector, PositiveEnd: positiveEnd, NegativeEnd: negativeEnd}, nil
}

func singleDirection(store embedding.Store, pair Pair) ([]float32, error) {
	v1, err := vectorOf(store, pair.First)
	if err != nil {
		return nil, err
	}
	v2, err := vectorOf(store, pair.Second)
	if err != nil {
		return nil, err
	}
	n1, err := geometry.Normalize(v1)
	if err != nil {
		return nil, fmt.Errorf("bias: %q: %w", pair.First, err)
	}
	n2, err := geometry.Normalize(v2)
	if err != nil {
		return nil, fmt.Errorf("bias: %q: %w", pair.Second, err)
	}
	diff := make([]float32, len(n1))
	for i := range n1 {
		diff[i] = n1[i] - n2[i]
	}
	return geometry.Normalize(diff)
}

func sumDirection(store embedding.Store, pairs []Pair) ([]float32, error) {
	dim := store.Dim()
	sum1 := make([]float32, dim)
	sum2 := make([]float32, dim)
	for _, pair := range pairs {
		v1, err := vectorOf(store, pair.First)
		if err != nil {
			return nil, err
		}
		v2, err := vectorOf(store, pair.Second)
		if err != nil {
			return nil, err
		}
		for i := 0; i < dim; i++ {
			sum1[i] += v1[i]
			sum2[i] += v2[i]
		}
	}
	n1, err := geometry.Normalize(sum1)
	if err != nil {
		return nil, fmt.Errorf("bias: first group sum: %w", err)
	}
	n2, err := geometry.Normalize(sum2)
	if err != nil {
		return nil, fmt.Errorf("bias: second group sum: %w", err)
	}
	diff := make([]float32, dim)
	for i := range diff {
		diff[i] = n1[i] - n2[i]
	}
	return geometry.Normalize(diff)
}
