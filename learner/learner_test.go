package learner

import (
	"fmt"
	"testing"

	"github.com/viant/embias/embedding"
)

// newLexiconStore builds a vocabulary where gendered words carry a strong
// first-axis component and filler words do not.
func newLexiconStore(t *testing.T) *embedding.MemoryStore {
	t.Helper()
	store := embedding.NewMemoryStore(3)
	add := func(word string, vec []float32) {
		if err := store.Add(word, vec); err != nil {
			t.Fatalf("Add(%q) failed: %v", word, err)
		}
	}

	add("he", []float32{1, 0.1, 0})
	add("she", []float32{-1, 0.1, 0})
	add("man", []float32{0.9, 0.2, 0.1})
	add("woman", []float32{-0.9, 0.2, 0.1})
	add("king", []float32{0.8, 0.1, 0.2})
	add("queen", []float32{-0.8, 0.1, 0.2})

	for i := 0; i < 40; i++ {
		add(fmt.Sprintf("filler%02d", i),
			[]float32{0, 0.5 + float32(i%7)/10, 0.5 + float32(i%5)/10})
	}
	return store
}

func TestLearnRecoversSeeds(t *testing.T) {
	store := newLexiconStore(t)
	seeds := []string{"he", "she", "man", "woman"}

	result, err := Learn(store, seeds, Options{MaxNonSpecific: 100})
	if err != nil {
		t.Fatalf("Learn failed: %v", err)
	}
	if len(result.Words) == 0 {
		t.Fatal("Learn returned an empty specific set")
	}

	got := make(map[string]bool, len(result.Words))
	for _, word := range result.Words {
		got[word] = true
	}
	for _, seed := range seeds {
		if !got[seed] {
			t.Fatalf("seed %q missing from learned set %v", seed, result.Words)
		}
	}
}

func TestLearnGeneralizesBeyondSeeds(t *testing.T) {
	store := newLexiconStore(t)

	// king and queen sit in the gendered region but are not seeds.
	result, err := Learn(store, []string{"he", "she", "man", "woman"}, Options{})
	if err != nil {
		t.Fatalf("Learn failed: %v", err)
	}
	got := make(map[string]bool, len(result.Words))
	for _, word := range result.Words {
		got[word] = true
	}
	if !got["king"] || !got["queen"] {
		t.Fatalf("learned set %v does not generalize to king/queen", result.Words)
	}
	if got["filler00"] {
		t.Fatalf("filler word classified specific: %v", result.Words)
	}
}

func TestLearnDeterministic(t *testing.T) {
	seeds := []string{"he", "she", "man", "woman"}

	a, err := Learn(newLexiconStore(t), seeds, Options{})
	if err != nil {
		t.Fatalf("first Learn failed: %v", err)
	}
	b, err := Learn(newLexiconStore(t), seeds, Options{})
	if err != nil {
		t.Fatalf("second Learn failed: %v", err)
	}
	if len(a.Words) != len(b.Words) {
		t.Fatalf("runs disagree: %v vs %v", a.Words, b.Words)
	}
	for i := range a.Words {
		if a.Words[i] != b.Words[i] {
			t.Fatalf("runs disagree: %v vs %v", a.Words, b.Words)
		}
	}
}

func TestLearnCapsNonSpecificExamples(t *testing.T) {
	store := newLexiconStore(t)
	seeds := []string{"he", "she", "man", "woman"}

	result, err := Learn(store, seeds, Options{MaxNonSpecific: 10, Debug: true})
	if err != nil {
		t.Fatalf("Learn failed: %v", err)
	}
	if len(result.Features) != len(seeds)+10 {
		t.Fatalf("training set size = %d, want %d", len(result.Features), len(seeds)+10)
	}
	if len(result.Labels) != len(result.Features) {
		t.Fatalf("labels size %d != features size %d", len(result.Labels), len(result.Features))
	}
}

func TestLearnDebugOff(t *testing.T) {
	store := newLexiconStore(t)
	result, err := Learn(store, []string{"he", "she", "man", "woman"}, Options{})
	if err != nil {
		t.Fatalf("Learn failed: %v", err)
	}
	if result.Features != nil || result.Labels != nil {
		t.Fatal("training data retained without Debug")
	}
}

func TestLearnSingleClass(t *testing.T) {
	store := embedding.NewMemoryStore(2)
	if err := store.Add("he", []float32{1, 0}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := Learn(store, []string{"he"}, Options{}); err == nil {
		t.Fatal("Learn accepted a single-class vocabulary")
	}
}
