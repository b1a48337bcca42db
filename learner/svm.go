package learner

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// LinearSVM is a trained linear max-margin classifier.
type LinearSVM struct {
	Weights []float64
	Bias    float64
}

// Decision returns the signed distance of x from the separating hyperplane
// (up to the weight norm).
func (m *LinearSVM) Decision(x []float64) float64 {
	return floats.Dot(m.Weights, x) + m.Bias
}

// Predict reports whether x falls on the positive side of the hyperplane.
func (m *LinearSVM) Predict(x []float64) bool { return m.Decision(x) > 0 }

// trainLinearSVM fits a linear SVM on the hinge loss by Pegasos-style
// stochastic subgradient descent with per-class weights compensating for
// label imbalance: weight(class) = n / (2 * n_class). The soft-margin
// parameter c maps to the regularization rate lambda = 1/(c*n). Training is
// deterministic for a fixed rng.
func trainLinearSVM(features [][]float64, labels []bool, c float64, epochs int, rng *rand.Rand) (*LinearSVM, error) {
	n := len(features)
	if n == 0 || n != len(labels) {
		return nil, fmt.Errorf("learner: features/labels size mismatch: %d vs %d", n, len(labels))
	}
	dim := len(features[0])

	var positives int
	for _, label := range labels {
		if label {
			positives++
		}
	}
	negatives := n - positives
	if positives == 0 || negatives == 0 {
		return nil, fmt.Errorf("learner: training set has a single class (%d positive of %d)", positives, n)
	}
	positiveWeight := float64(n) / (2 * float64(positives))
	negativeWeight := float64(n) / (2 * float64(negatives))

	lambda := 1 / (c * float64(n))
	weights := make([]float64, dim)
	bias := 0.0
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	step := 0
	for epoch := 0; epoch < epochs; epoch++ {
		rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, idx := range order {
			step++
			eta := 1 / (lambda * float64(step))

			x := features[idx]
			y := -1.0
			classWeight := negativeWeight
			if labels[idx] {
				y = 1
				classWeight = positiveWeight
			}

			margin := y * (floats.Dot(weights, x) + bias)
			floats.Scale(1-eta*lambda, weights)
			if margin < 1 {
				floats.AddScaled(weights, eta*classWeight*y, x)
				bias += eta * classWeight * y
			}
		}
	}
	return &LinearSVM{Weights: weights, Bias: bias}, nil
}
