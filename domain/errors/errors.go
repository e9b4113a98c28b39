package errors

import "errors"

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrDatasetNotFound  = errors.New("dataset not found")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrEmptyDataset     = errors.New("empty dataset")
	ErrMissingColumn    = errors.New("missing required column")
	ErrInvalidDate      = errors.New("invalid date")
)
