// Package model holds the water-potability classifier.
//
// A Holder is built once at startup from a model artifact on disk and is
// read-only afterwards, so a single *Holder can be shared by every request
// goroutine without locking.
//
//   - artifact.go: the on-disk artifact schema, decoding by file extension, validation.
//   - classifier.go: tree, forest and logistic evaluators.
//   - holder.go: Holder (Load/New, Predict, PredictProba, Info).
//   - errors.go: error types and helpers (IsInvalidArtifact, IsUnsupportedFormat, IsNonFiniteInput).
//
// Artifacts are declarative: a list of features in classifier column order,
// an optional standard scaler and either tree nodes or linear coefficients.
// The features list may be any permutation of the nine sample fields; the
// Holder maps sample fields onto classifier columns by name.
package model
