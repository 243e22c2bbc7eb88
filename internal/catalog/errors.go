package catalog

import "errors"

// Domain errors for the catalog package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, catalog.ErrModelNotFound) {
//	    // handle not found case
//	}
var (
	// ErrModelNotFound is returned when a model ID does not exist in the catalog.
	ErrModelNotFound = errors.New("catalog: model not found")

	// ErrInvalidDate is returned when a dataset date is not a valid YYYY-MM-DD string.
	ErrInvalidDate = errors.New("catalog: invalid date")

	// ErrUnknownStatus is returned at load time when a device carries a
	// support status that is not a key of support_status_definitions.
	ErrUnknownStatus = errors.New("catalog: unknown support status")

	// ErrDuplicateModelID is returned at load time when two devices share a model ID.
	ErrDuplicateModelID = errors.New("catalog: duplicate model id")

	// ErrEmptyDataset is returned at load time when the source document
	// contains no devices or no status definitions.
	ErrEmptyDataset = errors.New("catalog: empty dataset")
)
