package embedding

import (
	"fmt"

	"github.com/viant/embias/geometry"
)

// Store is the key-vector collaborator consumed by the bias packages.
// Implementations own the vectors; callers must not retain mutable references
// across SetVector calls.
//
// Words must return the vocabulary in a stable enumeration order: the
// specific-word learner caps its negative examples by that order, so two
// calls over an unchanged store must agree.
type Store interface {
	// Vector returns the embedding of word and whether the word is present.
	Vector(word string) ([]float32, bool)

	// Contains reports whether word is in the vocabulary.
	Contains(word string) bool

	// Words returns the vocabulary in stable enumeration order.
	Words() []string

	// Dim returns the embedding dimensionality (0 for an empty store).
	Dim() int

	// SetVector replaces the vector of an existing word in place.
	SetVector(word string, vec []float32) error

	// NormalizeAll rescales every vector to unit length. Zero vectors are
	// left unchanged.
	NormalizeAll()

	// Clone returns a fully independent deep copy of the store.
	Clone() Store
}

// MemoryStore is an in-memory Store keyed by word. Enumeration order is
// insertion order.
type MemoryStore struct {
	words []string
	index map[string]int
	vecs  [][]float32
	dim   int
}

// NewMemoryStore creates an empty store for vectors of the given
// dimensionality. dim may be 0, in which case the first Add fixes it.
func NewMemoryStore(dim int) *MemoryStore {
	return &MemoryStore{index: make(map[string]int), dim: dim}
}

// Add inserts a new word with its vector. It fails on duplicate words and on
// dimension mismatches.
func (s *MemoryStore) Add(word string, vec []float32) error {
	if word == "" {
		return fmt.Errorf("embedding: empty word")
	}
	if _, ok := s.index[word]; ok {
		return fmt.Errorf("embedding: word %q already present", word)
	}
	if s.dim == 0 {
		s.dim = len(vec)
	}
	if len(vec) != s.dim {
		return fmt.Errorf("embedding: vector for %q has dim %d, store dim %d", word, len(vec), s.dim)
	}
	s.index[word] = len(s.words)
	s.words = append(s.words, word)
	s.vecs = append(s.vecs, append([]float32(nil), vec...))
	return nil
}

// Vector returns the embedding of word and whether the word is present. The
// returned slice is the store's backing array; callers that need to mutate it
// must go through SetVector.
func (s *MemoryStore) Vector(word string) ([]float32, bool) {
	i, ok := s.index[word]
	if !ok {
		return nil, false
	}
	return s.vecs[i], true
}

// Contains reports whether word is in the vocabulary.
func (s *MemoryStore) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// Words returns the vocabulary in insertion order. The returned slice is a
// copy and safe to modify.
func (s *MemoryStore) Words() []string {
	return append([]string(nil), s.words...)
}

// Dim returns the embedding dimensionality.
func (s *MemoryStore) Dim() int { return s.dim }

// Len returns the vocabulary size.
func (s *MemoryStore) Len() int { return len(s.words) }

// SetVector replaces the vector of an existing word.
func (s *MemoryStore) SetVector(word string, vec []float32) error {
	i, ok := s.index[word]
	if !ok {
		return fmt.Errorf("embedding: word %q not in store", word)
	}
	if len(vec) != s.dim {
		return fmt.Errorf("embedding: vector for %q has dim %d, store dim %d", word, len(vec), s.dim)
	}
	copy(s.vecs[i], vec)
	return nil
}

// NormalizeAll rescales every vector to unit length in place. Zero vectors
// are left unchanged.
func (s *MemoryStore) NormalizeAll() {
	for i := range s.vecs {
		n, err := geometry.Normalize(s.vecs[i])
		if err != nil {
			continue
		}
		copy(s.vecs[i], n)
	}
}

// Clone returns a deep copy with independent backing arrays, so mutations of
// the clone never reach the original.
func (s *MemoryStore) Clone() Store {
	out := NewMemoryStore(s.dim)
	out.words = append([]string(nil), s.words...)
	out.vecs = make([][]float32, len(s.vecs))
	for i, v := range s.vecs {
		out.vecs[i] = append([]float32(nil), v...)
		out.index[s.words[i]] = i
	}
	return out
}

// Ensure MemoryStore satisfies the Store interface.
var _ Store = (*MemoryStore)(nil)
