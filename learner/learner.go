package learner

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/viant/embias/embedding"
)

const (
	// DefaultMaxNonSpecific caps the non-specific training examples taken
	// from the vocabulary.
	DefaultMaxNonSpecific = 1000

	// randomSeed fixes the shuffle and training order for reproducibility.
	randomSeed = 42

	defaultEpochs = 40
	defaultC      = 1
)

// Options configures Learn.
type Options struct {
	// MaxNonSpecific caps the negative examples, taken in vocabulary
	// enumeration order. Zero means DefaultMaxNonSpecific.
	MaxNonSpecific int

	// Debug retains the training feature matrix and label vector on the
	// Result for inspection.
	Debug bool
}

// Result is the outcome of Learn.
type Result struct {
	// Words is the expanded specific-word set: every vocabulary word the
	// classifier predicts positive.
	Words []string

	// Model is the trained classifier, reusable on unit-normalized vectors.
	Model *LinearSVM

	// Features and Labels hold the training data when Options.Debug is set.
	Features [][]float64
	Labels   []bool
}

// Learn trains a linear max-margin classifier on the seed-specific words
// (positive) against up to MaxNonSpecific other vocabulary words (negative,
// taken in enumeration order), then predicts over the entire vocabulary and
// returns the words predicted specific.
//
// The combined training set is shuffled with a fixed seed and all feature
// vectors are normalized to unit length; class weights compensate for the
// imbalance introduced by the cap.
func Learn(store embedding.Store, seedSpecificWords []string, opts Options) (*Result, error) {
	maxNonSpecific := opts.MaxNonSpecific
	if maxNonSpecific <= 0 {
		maxNonSpecific = DefaultMaxNonSpecific
	}

	seeds := make(map[string]struct{}, len(seedSpecificWords))
	for _, word := range seedSpecificWords {
		seeds[word] = struct{}{}
	}

	var features [][]float64
	var labels []bool
	nonSpecific := 0
	for _, word := range store.Words() {
		_, isSpecific := seeds[word]
		if !isSpecific {
			nonSpecific++
			if nonSpecific > maxNonSpecific {
				continue
			}
		}
		vec, ok := store.Vector(word)
		if !ok {
			continue
		}
		features = append(features, toUnitFloat64(vec))
		labels = append(labels, isSpecific)
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("learner: empty vocabulary")
	}

	rng := rand.New(rand.NewSource(randomSeed))
	rng.Shuffle(len(features), func(i, j int) {
		features[i], features[j] = features[j], features[i]
		labels[i], labels[j] = labels[j], labels[i]
	})

	model, err := trainLinearSVM(features, labels, defaultC, defaultEpochs, rng)
	if err != nil {
		return nil, err
	}

	var fullSpecific []string
	for _, word := range store.Words() {
		vec, ok := store.Vector(word)
		if !ok {
			continue
		}
		if model.Predict(toUnitFloat64(vec)) {
			fullSpecific = append(fullSpecific, word)
		}
	}

	result := &Result{Words: fullSpecific, Model: model}
	if opts.Debug {
		result.Features = features
		result.Labels = labels
	}
	return result, nil
}

// toUnitFloat64 widens a float32 vector and rescales it to unit length.
// Zero vectors are returned as-is.
func toUnitFloat64(vec []float32) []float64 {
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = float64(v)
	}
	if norm := floats.Norm(out, 2); norm > 0 {
		floats.Scale(1/norm, out)
	}
	return out
}
