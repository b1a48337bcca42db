package embedding

import "testing"

func TestNearestNeighbors(t *testing.T) {
	store := newTestStore(t)

	got, err := NearestNeighbors(store, []float32{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("NearestNeighbors failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d neighbours, want 2", len(got))
	}
	if got[0].Word != "he" {
		t.Fatalf("nearest = %q, want he", got[0].Word)
	}
	if got[0].Score < got[1].Score {
		t.Fatalf("scores not descending: %v", got)
	}
}

func TestNearestNeighborsDimMismatch(t *testing.T) {
	store := newTestStore(t)
	if _, err := NearestNeighbors(store, []float32{1, 0}, 1); err == nil {
		t.Fatal("dimension mismatch did not fail")
	}
}

func TestNearestNeighborsZeroQuery(t *testing.T) {
	store := newTestStore(t)
	got, err := NearestNeighbors(store, []float32{0, 0, 0}, 1)
	if err != nil || got != nil {
		t.Fatalf("zero query = %v, %v; want nil, nil", got, err)
	}
}
