// Package embedding implements the key-vector store the bias audit operates
// on. It includes:
//   - Store interface and an in-memory implementation with stable
//     vocabulary enumeration order
//   - word2vec text format reader/writer
//   - BLOB vector encoding and SQLite persistence
//   - scalar SQL functions (vec_cosine, vec_projection) for auditing
//     persisted stores in SQL
//   - a brute-force nearest-neighbour scan
package embedding
