// Package bias identifies linear bias directions in a word-embedding store,
// measures direct and indirect bias along them, and applies neutralize,
// equalize, and soft debiasing mutations.
//
// A Direction is a small value record passed explicitly into measurement and
// debias functions, so several audits of different directions can share one
// store. Debiasing mutates the store (or a clone) and is single-writer: it
// must not run concurrently with reads of the same store.
package bias
