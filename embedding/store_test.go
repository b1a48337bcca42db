package embedding

import (
	"math"
	"testing"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore(3)
	add := func(word string, vec []float32) {
		if err := store.Add(word, vec); err != nil {
			t.Fatalf("Add(%q) failed: %v", word, err)
		}
	}
	add("he", []float32{1, 0.2, 0})
	add("she", []float32{-1, 0.2, 0})
	add("book", []float32{0, 0.5, 0.5})
	return store
}

func TestMemoryStoreBasics(t *testing.T) {
	store := newTestStore(t)

	if !store.Contains("he") || store.Contains("missing") {
		t.Fatal("Contains gave wrong answers")
	}
	if _, ok := store.Vector("missing"); ok {
		t.Fatal("Vector returned ok for missing word")
	}
	if got := store.Words(); len(got) != 3 || got[0] != "he" || got[2] != "book" {
		t.Fatalf("Words = %v, want insertion order [he she book]", got)
	}
	if store.Dim() != 3 || store.Len() != 3 {
		t.Fatalf("Dim/Len = %d/%d, want 3/3", store.Dim(), store.Len())
	}

	if err := store.Add("he", []float32{0, 0, 0}); err == nil {
		t.Fatal("duplicate Add did not fail")
	}
	if err := store.Add("bad", []float32{1, 2}); err == nil {
		t.Fatal("dimension-mismatched Add did not fail")
	}
	if err := store.SetVector("missing", []float32{0, 0, 0}); err == nil {
		t.Fatal("SetVector on missing word did not fail")
	}
}

func TestMemoryStoreSetVector(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetVector("book", []float32{1, 1, 1}); err != nil {
		t.Fatalf("SetVector failed: %v", err)
	}
	vec, _ := store.Vector("book")
	if vec[0] != 1 || vec[1] != 1 || vec[2] != 1 {
		t.Fatalf("Vector after SetVector = %v, want [1 1 1]", vec)
	}
}

func TestMemoryStoreNormalizeAll(t *testing.T) {
	store := newTestStore(t)
	if err := store.Add("zero", []float32{0, 0, 0}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	store.NormalizeAll()

	for _, word := range []string{"he", "she", "book"} {
		vec, _ := store.Vector(word)
		var n float64
		for _, v := range vec {
			n += float64(v) * float64(v)
		}
		if math.Abs(math.Sqrt(n)-1) > 1e-5 {
			t.Fatalf("norm(%q) = %v after NormalizeAll, want 1", word, math.Sqrt(n))
		}
	}
	// Zero vector stays untouched.
	zero, _ := store.Vector("zero")
	if zero[0] != 0 || zero[1] != 0 || zero[2] != 0 {
		t.Fatalf("zero vector changed to %v", zero)
	}
}

func TestMemoryStoreCloneIndependence(t *testing.T) {
	store := newTestStore(t)
	clone := store.Clone()

	if err := clone.SetVector("he", []float32{9, 9, 9}); err != nil {
		t.Fatalf("SetVector on clone failed: %v", err)
	}
	orig, _ := store.Vector("he")
	if orig[0] != 1 || orig[1] != 0.2 || orig[2] != 0 {
		t.Fatalf("clone mutation reached the original: %v", orig)
	}

	got := clone.Words()
	want := store.Words()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("clone enumeration order %v != original %v", got, want)
		}
	}
}
