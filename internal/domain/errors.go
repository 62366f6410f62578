package domain

import "errors"

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrUnknownCorpus   = errors.New("unknown corpus")
	ErrMalformedRecord = errors.New("malformed record")
)
