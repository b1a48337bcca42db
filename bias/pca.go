package bias

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/viant/embias/embedding"
	"github.com/viant/embias/geometry"
)

// FirstPCThreshold is the minimum share of total variance the first
// principal component must explain for the pca method to accept the
// direction. Below it, the pair differences are not dominated by one axis
// and the definitional set is a bad input.
const FirstPCThreshold = 0.5

// principalDirection builds a 2Nxdim matrix holding, for every definitional
// pair, both normalized vectors centered on their pair mean, and returns the
// first principal component.
func principalDirection(store embedding.Store, pairs []Pair) ([]float32, error) {
	dim := store.Dim()
	data := mat.NewDense(2*len(pairs), dim, nil)

	for p, pair := range pairs {
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
		for i := 0; i < dim; i++ {
			center := (float64(n1[i]) + float64(n2[i])) / 2
			data.Set(2*p, i, float64(n1[i])-center)
			data.Set(2*p+1, i, float64(n2[i])-center)
		}
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return nil, fmt.Errorf("bias: principal component analysis failed")
	}

	vars := pc.VarsTo(nil)
	total := floats.Sum(vars)
	if total == 0 {
		return nil, fmt.Errorf("bias: definitional pairs carry no variance")
	}
	ratio := vars[0] / total
	if ratio < FirstPCThreshold {
		return nil, fmt.Errorf("bias: first principal component explains %.3f of the variance, need at least %v", ratio, FirstPCThreshold)
	}

	var vectors mat.Dense
	pc.VectorsTo(&vectors)
	direction := make([]float32, dim)
	for i := 0; i < dim; i++ {
		direction[i] = float32(vectors.At(i, 0))
	}
	return direction, nil
}
