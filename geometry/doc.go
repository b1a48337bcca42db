// Package geometry provides the pure vector operations the bias audit is
// built on: normalization, cosine similarity, and projection/rejection
// against a unit direction. All functions are side-effect free, operate on
// float32 embeddings with float64 accumulation, and are O(dimension).
package geometry
