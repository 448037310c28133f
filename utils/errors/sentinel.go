package errors

import "errors"

// Sentinel errors usable with errors.Is() across layers.
var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrRecordNotFound   = errors.New("record not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrDuplicateRecord  = errors.New("duplicate record")
)

// IsStoreUnavailable checks if an error represents an unreachable or
// unconfigured persistence layer.
func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// IsRecordNotFound checks if an error represents a missing keyed record.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

// IsUnauthorized checks if an error represents a failed auth check.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsInvalidInput checks if an error represents invalid input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDuplicateRecord checks if an error represents a uniqueness violation.
func IsDuplicateRecord(err error) bool {
	return errors.Is(err, ErrDuplicateRecord)
}
