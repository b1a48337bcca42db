package geometry

import (
	"errors"
	"fmt"

	"github.com/viant/vec/search"
)

// ErrZeroVector is returned by operations that cannot proceed on a
// zero-magnitude vector (e.g. Normalize).
var ErrZeroVector = errors.New("geometry: zero-magnitude vector")

// Dot returns the inner product of a and b accumulated in float64.
func Dot(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("geometry: dot dimension mismatch: %d vs %d", len(a), len(b))
	}
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s, nil
}

// Norm returns the Euclidean magnitude of v.
func Norm(v []float32) float64 {
	return float64(search.Float32s(v).Magnitude())
}

// Normalize returns v scaled to unit length. It fails with ErrZeroVector when
// v has zero magnitude; the input slice is never mutated.
func Normalize(v []float32) ([]float32, error) {
	m := Norm(v)
	if m == 0 {
		return nil, ErrZeroVector
	}
	out := make([]float32, len(v))
	for i := range v {
		out[i] = float32(float64(v[i]) / m)
	}
	return out, nil
}

// CosineSimilarity computes (a.b)/(|a||b|). It returns an error on dimension
// mismatch or when either vector has zero magnitude.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("geometry: cosine dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("geometry: cosine on empty vectors")
	}
	ma := Norm(a)
	mb := Norm(b)
	if ma == 0 || mb == 0 {
		return 0, ErrZeroVector
	}
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	return dot / (ma * mb), nil
}

// Project returns the component of v along the unit direction d: (v.d)d.
func Project(v, d []float32) ([]float32, error) {
	p, _, err := ProjectReject(v, d)
	return p, err
}

// Reject returns the component of v orthogonal to the unit direction d:
// v - (v.d)d.
func Reject(v, d []float32) ([]float32, error) {
	_, r, err := ProjectReject(v, d)
	return r, err
}

// ProjectReject splits v into its component along the unit direction d and
// the orthogonal remainder, using a single dot product. The two results
// always sum back to v.
func ProjectReject(v, d []float32) (projected, rejected []float32, err error) {
	scalar, err := Dot(v, d)
	if err != nil {
		return nil, nil, err
	}
	projected = make([]float32, len(v))
	rejected = make([]float32, len(v))
	for i := range v {
		p := float32(scalar * float64(d[i]))
		projected[i] = p
		rejected[i] = v[i] - p
	}
	return projected, rejected, nil
}
