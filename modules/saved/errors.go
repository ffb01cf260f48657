package saved

import "errors"

var (
	// ErrNotFound indicates no saved name exists with the given id.
	ErrNotFound = errors.New("saved name not found")
	// ErrFailedToSave indicates the storage write did not complete.
	ErrFailedToSave = errors.New("failed to save name")
	// ErrFailedToList indicates the storage read did not complete.
	ErrFailedToList = errors.New("failed to list saved names")
)
