package quest

import "errors"

var (
	// ErrMalformedDate is returned when a date string does not split into
	// year, month and day numerals.
	ErrMalformedDate = errors.New("quest: malformed date")

	// ErrInvalidDocument is returned when a quest document cannot be decoded
	// or is missing a required field. The load is rejected.
	ErrInvalidDocument = errors.New("quest: invalid document")

	// ErrAcquisition is returned when a document could not be read or
	// fetched. It is a warning; a manual load is still possible.
	ErrAcquisition = errors.New("quest: acquisition failed")
)
