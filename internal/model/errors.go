package model

import "errors"

// invalidArtifactError signals a model artifact that decoded but cannot be evaluated.
type invalidArtifactError struct{ reason string }

func (e invalidArtifactError) Error() string { return "invalid model artifact: " + e.reason }

func errInvalid(reason string) error { return invalidArtifactError{reason: reason} }

// IsInvalidArtifact reports whether err was caused by a structurally invalid artifact.
func IsInvalidArtifact(err error) bool {
	var e invalidArtifactError
	return errors.As(err, &e)
}

type unsupportedFormatError struct{ ext string }

func (e unsupportedFormatError) Error() string { return "unsupported model artifact extension: " + e.ext }

// IsUnsupportedFormat reports whether the artifact extension is not one of .json, .yaml, .yml, .toml.
func IsUnsupportedFormat(err error) bool {
	var e unsupportedFormatError
	return errors.As(err, &e)
}

// nonFiniteInputError is returned by Predict when a sample carries NaN or Inf.
// The HTTP layer maps it to a generic 500 like any other prediction failure.
type nonFiniteInputError struct{ feature string }

func (e nonFiniteInputError) Error() string { return "input contains non-finite value for " + e.feature }

// IsNonFiniteInput reports whether prediction failed on a NaN/Inf feature value.
func IsNonFiniteInput(err error) bool {
	var e nonFiniteInputError
	return errors.As(err, &e)
}
