package bias

import (
	"math"
	"strings"
	"testing"

	"github.com/viant/embias/embedding"
	"github.com/viant/embias/geometry"
)

const tolerance = 1e-4

func almostEqual(a, b float64) bool { return math.Abs(a-b) <= tolerance }

// newGenderStore builds a small embedding space whose gender signal lives on
// the first axis.
func newGenderStore(t *testing.T) *embedding.MemoryStore {
	t.Helper()
	store := embedding.NewMemoryStore(4)
	add := func(word string, vec []float32) {
		if err := store.Add(word, vec); err != nil {
			t.Fatalf("Add(%q) failed: %v", word, err)
		}
	}
	add("he", []float32{1, 0.2, 0, 0})
	add("she", []float32{-1, 0.2, 0, 0})
	add("man", []float32{0.9, 0.3, 0, 0})
	add("woman", []float32{-0.9, 0.3, 0, 0})
	add("king", []float32{0.7, 0.3, 0.1, 0})
	add("queen", []float32{-0.7, 0.3, 0.1, 0})
	add("doctor", []float32{0.4, 0.5, 0.3, 0})
	add("nurse", []float32{-0.4, 0.5, 0.3, 0})
	add("book", []float32{0, 0.5, 0.5, 0})
	add("water", []float32{0, 0, 1, 0})
	return store
}

func identifyGender(t *testing.T, store embedding.Store, method string) Direction {
	t.Helper()
	pairs := []Pair{{"he", "she"}, {"man", "woman"}}
	dir, err := Identify(store, "he", "she", pairs, method)
	if err != nil {
		t.Fatalf("Identify(%s) failed: %v", method, err)
	}
	return dir
}

func TestIdentifySum(t *testing.T) {
	store := newGenderStore(t)
	dir := identifyGender(t, store, MethodSum)

	if !dir.Identified() {
		t.Fatal("direction not identified")
	}
	if !almostEqual(geometry.Norm(dir.Vector), 1) {
		t.Fatalf("direction norm = %v, want 1", geometry.Norm(dir.Vector))
	}
	// The gender signal is exactly the first axis in this store.
	if !almostEqual(float64(dir.Vector[0]), 1) {
		t.Fatalf("direction = %v, want first axis", dir.Vector)
	}

	he, err := ProjectOnDirection(store, dir, "he")
	if err != nil {
		t.Fatalf("ProjectOnDirection(he) failed: %v", err)
	}
	she, err := ProjectOnDirection(store, dir, "she")
	if err != nil {
		t.Fatalf("ProjectOnDirection(she) failed: %v", err)
	}
	if he <= 0 || she >= 0 {
		t.Fatalf("projections he=%v she=%v, want positive/negative", he, she)
	}
}

func TestIdentifySingle(t *testing.T) {
	store := newGenderStore(t)
	dir := identifyGender(t, store, MethodSingle)
	if !almostEqual(float64(dir.Vector[0]), 1) {
		t.Fatalf("direction = %v, want first axis", dir.Vector)
	}
}

func TestIdentifyPCA(t *testing.T) {
	store := newGenderStore(t)
	dir := identifyGender(t, store, MethodPCA)

	if !almostEqual(geometry.Norm(dir.Vector), 1) {
		t.Fatalf("direction norm = %v, want 1", geometry.Norm(dir.Vector))
	}
	if !almostEqual(math.Abs(float64(dir.Vector[0])), 1) {
		t.Fatalf("direction = %v, want +-first axis", dir.Vector)
	}
	// Sign must be calibrated towards the positive end.
	he, err := ProjectOnDirection(store, dir, "he")
	if err != nil {
		t.Fatalf("ProjectOnDirection failed: %v", err)
	}
	if he <= 0 {
		t.Fatalf("projection of positive end = %v, want > 0", he)
	}
}

func TestIdentifyPCARejectsScatteredPairs(t *testing.T) {
	store := embedding.NewMemoryStore(4)
	vectors := map[string][]float32{
		"a1": {1, 0, 0, 0}, "a2": {-1, 0, 0, 0},
		"b1": {0, 1, 0, 0}, "b2": {0, -1, 0, 0},
		"c1": {0, 0, 1, 0}, "c2": {0, 0, -1, 0},
	}
	for word, vec := range vectors {
		if err := store.Add(word, vec); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	pairs := []Pair{{"a1", "a2"}, {"b1", "b2"}, {"c1", "c2"}}
	_, err := Identify(store, "a1", "a2", pairs, MethodPCA)
	if err == nil {
		t.Fatal("Identify accepted pairs with no dominant principal component")
	}
	if !strings.Contains(err.Error(), "principal component") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIdentifyCalibratesSign(t *testing.T) {
	store := newGenderStore(t)
	// Reversed pairs push the raw estimate towards -x; calibration against
	// (he, she) must flip it back.
	pairs := []Pair{{"she", "he"}, {"woman", "man"}}
	dir, err := Identify(store, "he", "she", pairs, MethodSum)
	if err != nil {
		t.Fatalf("Identify failed: %v", err)
	}
	diffSim := float64(dir.Vector[0])
	if diffSim <= 0 {
		t.Fatalf("direction = %v, sign not calibrated to positive end", dir.Vector)
	}
}

func TestIdentifyEqualEnds(t *testing.T) {
	store := newGenderStore(t)
	pairs := []Pair{{"he", "she"}}
	for _, method := range DirectionMethods {
		if _, err := Identify(store, "he", "he", pairs, method); err == nil {
			t.Fatalf("Identify(%s) accepted equal ends", method)
		}
	}
}

func TestIdentifyUnknownMethod(t *testing.T) {
	store := newGenderStore(t)
	_, err := Identify(store, "he", "she", []Pair{{"he", "she"}}, "svd")
	if err == nil {
		t.Fatal("Identify accepted unknown method")
	}
	if !strings.Contains(err.Error(), MethodSingle) || !strings.Contains(err.Error(), MethodPCA) {
		t.Fatalf("error does not enumerate valid methods: %v", err)
	}
}

func TestIdentifyUnknownWord(t *testing.T) {
	store := newGenderStore(t)
	if _, err := Identify(store, "he", "she", []Pair{{"he", "missing"}}, MethodSum); err == nil {
		t.Fatal("Identify accepted a pair with an unknown word")
	}
}
