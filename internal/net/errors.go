package net

import "errors"

// Errors returned by the model. They are wrapped with detail, so compare
// with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid model configuration")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidLabel  = errors.New("class label out of range")
	ErrEmptyInput    = errors.New("empty input")
)
