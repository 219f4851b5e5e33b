package core

import "errors"

// Common errors.
var (
	ErrReadOnly  = errors.New("store is in read-only mode")
	ErrNotFound  = errors.New("task not found")
	ErrAmbiguous = errors.New("task reference is ambiguous")
	ErrEmptyID   = errors.New("task ID cannot be empty")
)
