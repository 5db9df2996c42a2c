package api

import "errors"

var (
	// ErrNoReference is returned when a scorer needs a gold reference or
	// label and the record does not carry one
	ErrNoReference = errors.New("reference value is required for this scorer")
	// ErrGenerationFailed is returned when a chat-completion call fails
	ErrGenerationFailed = errors.New("chat completion failed")
	// ErrClassificationFailed is returned when a text-classification call fails
	ErrClassificationFailed = errors.New("text classification failed")
)
