package bias

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/viant/embias/embedding"
	"github.com/viant/embias/geometry"
)

// Debias methods.
const (
	DebiasNeutralize = "neutralize"
	DebiasHard       = "hard"
	DebiasSoft       = "soft"
)

// DebiasMethods enumerates the valid Debias methods.
var DebiasMethods = []string{DebiasNeutralize, DebiasHard, DebiasSoft}

// DefaultSoftStrength is the soft-debias neutralization weight used when
// Options.SoftStrength is zero.
const DefaultSoftStrength = 0.5

// Options configures a Debias run.
type Options struct {
	// Method is one of DebiasMethods. neutralize strips the direction
	// component from the neutral words; hard additionally equalizes the
	// equality sets; soft removes only a SoftStrength fraction of the
	// direction component.
	Method string

	// NeutralWords are the words to neutralize. When nil, the set defaults
	// to ExtractNeutralWords(store, SpecificWords).
	NeutralWords []string

	// SpecificWords seed the default neutral-word extraction when
	// NeutralWords is nil.
	SpecificWords []string

	// EqualitySets are the word groups symmetrized by the hard method.
	EqualitySets [][]string

	// SoftStrength is the fraction of the bias component removed by the
	// soft method, in [0, 1]. Zero means DefaultSoftStrength.
	SoftStrength float64

	// Inplace selects whether the given store is mutated directly or a
	// fully independent clone is debiased instead.
	Inplace bool

	// Progress, when non-nil, observes the vocabulary-wide neutralize loop.
	Progress ProgressReporter
}

// Debias applies the selected debiasing to the store and returns the store
// that was mutated: the input itself when Inplace, a clone otherwise (the
// original is then left untouched).
//
// As a side effect every vector of the debiased store is renormalized to unit
// length; callers must not assume original norms survive.
func Debias(store embedding.Store, dir Direction, opts Options) (embedding.Store, error) {
	if !dir.Identified() {
		return nil, ErrDirectionNotIdentified
	}
	switch opts.Method {
	case DebiasNeutralize, DebiasHard, DebiasSoft:
	default:
		return nil, fmt.Errorf("bias: method should be one of %v, %q was given", DebiasMethods, opts.Method)
	}
	if opts.SoftStrength < 0 || opts.SoftStrength > 1 {
		return nil, fmt.Errorf("bias: soft strength %v out of range [0, 1]", opts.SoftStrength)
	}

	target := store
	if !opts.Inplace {
		target = store.Clone()
	}

	neutralWords := opts.NeutralWords
	if neutralWords == nil {
		neutralWords = ExtractNeutralWords(target, opts.SpecificWords)
	}

	switch opts.Method {
	case DebiasNeutralize, DebiasHard:
		if err := Neutralize(target, dir, neutralWords, opts.Progress); err != nil {
			return nil, err
		}
	case DebiasSoft:
		strength := opts.SoftStrength
		if strength == 0 {
			strength = DefaultSoftStrength
		}
		if err := softNeutralize(target, dir, neutralWords, strength, opts.Progress); err != nil {
			return nil, err
		}
	}
	if opts.Method == DebiasHard {
		if err := Equalize(target, dir, opts.EqualitySets); err != nil {
			return nil, err
		}
	}

	target.NormalizeAll()
	return target, nil
}

// Neutralize replaces each word's vector with its component orthogonal to
// the direction, removing the bias component entirely. Words absent from the
// store fail the run; pre-filter with Contains when tolerance is needed.
func Neutralize(store embedding.Store, dir Direction, words []string, progress ProgressReporter) error {
	if !dir.Identified() {
		return ErrDirectionNotIdentified
	}
	if progress != nil {
		progress.Start(len(words))
		defer progress.Finish()
	}
	for _, word := range words {
		vec, err := vectorOf(store, word)
		if err != nil {
			return err
		}
		rejected, err := geometry.Reject(vec, dir.Vector)
		if err != nil {
			return err
		}
		if err := store.SetVector(word, rejected); err != nil {
			return err
		}
		if progress != nil {
			progress.Increment()
		}
	}
	return nil
}

// softNeutralize removes a strength fraction of the bias component:
// v <- v - strength*(v.d)d.
func softNeutralize(store embedding.Store, dir Direction, words []string, strength float64, progress ProgressReporter) error {
	if progress != nil {
		progress.Start(len(words))
		defer progress.Finish()
	}
	for _, word := range words {
		vec, err := vectorOf(store, word)
		if err != nil {
			return err
		}
		projected, err := geometry.Project(vec, dir.Vector)
		if err != nil {
			return err
		}
		out := make([]float32, len(vec))
		for i := range vec {
			out[i] = vec[i] - float32(strength*float64(projected[i]))
		}
		if err := store.SetVector(word, out); err != nil {
			return err
		}
		if progress != nil {
			progress.Increment()
		}
	}
	return nil
}

// Equalize symmetrizes each word group around the direction: all members end
// with the same orthogonal component and equal-magnitude positions along the
// bias axis.
func Equalize(store embedding.Store, dir Direction, equalitySets [][]string) error {
	if !dir.Identified() {
		return ErrDirectionNotIdentified
	}
	for _, set := range equalitySets {
		if len(set) == 0 {
			continue
		}
		dim := store.Dim()
		normalized := make([][]float32, len(set))
		center := make([]float32, dim)
		for w, word := range set {
			vec, err := vectorOf(store, word)
			if err != nil {
				return err
			}
			n, err := geometry.Normalize(vec)
			if err != nil {
				return fmt.Errorf("bias: %q: %w", word, err)
			}
			normalized[w] = n
			for i := range n {
				center[i] += n[i] / float32(len(set))
			}
		}

		projectedCenter, rejectedCenter, err := geometry.ProjectReject(center, dir.Vector)
		if err != nil {
			return err
		}
		// Clamp: numerical error can push the rejected norm above 1.
		rejectedNorm := geometry.Norm(rejectedCenter)
		scaling := math.Sqrt(math.Max(0, 1-rejectedNorm*rejectedNorm))

		for w, word := range set {
			projected, err := geometry.Project(normalized[w], dir.Vector)
			if err != nil {
				return err
			}
			delta := make([]float32, dim)
			for i := range delta {
				delta[i] = projected[i] - projectedCenter[i]
			}
			projectedDelta, err := geometry.Normalize(delta)
			if err != nil {
				return fmt.Errorf("bias: equality set %v: word %q has no offset along the direction: %w", set, word, err)
			}
			equalized := make([]float32, dim)
			for i := range equalized {
				equalized[i] = rejectedCenter[i] + float32(scaling*float64(projectedDelta[i]))
			}
			if err := store.SetVector(word, equalized); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExtractNeutralWords returns the vocabulary minus every case variant
// (as given, lower, upper, title) of the specific words. The specific-words
// classifier is typically trained on a partial vocabulary, so variants are
// expanded before taking the complement.
func ExtractNeutralWords(store embedding.Store, specificWords []string) []string {
	extended := make(map[string]struct{}, len(specificWords)*4)
	for _, word := range specificWords {
		extended[word] = struct{}{}
		extended[strings.ToLower(word)] = struct{}{}
		extended[strings.ToUpper(word)] = struct{}{}
		extended[titleCase(word)] = struct{}{}
	}
	var neutral []string
	for _, word := range store.Words() {
		if _, ok := extended[word]; !ok {
			neutral = append(neutral, word)
		}
	}
	return neutral
}

// titleCase uppercases the first letter of each word and lowercases the rest.
func titleCase(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	startOfWord := true
	for _, r := range word {
		switch {
		case !unicode.IsLetter(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			startOfWord = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
