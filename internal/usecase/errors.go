package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("Invalid input")
	ErrInternal         = errors.New("Internal error")
	ErrWorkflowNotFound = errors.New("Workflow not found")
	ErrNoTextExtracted  = errors.New("Could not extract text from file")
)
