// Package learner expands a small seed set of bias-specific words into a
// vocabulary-wide set by training a linear max-margin classifier on the seed
// labels and predicting over every word of the store.
package learner
