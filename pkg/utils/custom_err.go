package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("text generation upstream unavailable")
	ErrExtractionFailure   = errors.New("no parseable itinerary payload in model output")
	ErrValidationFailure   = errors.New("itinerary payload failed validation")
	ErrGenerationInFlight  = errors.New("a generation request is already in flight")
	ErrUnknownCurrency     = errors.New("unsupported display currency")
	ErrDatabaseError       = errors.New("database error")
)

// IsGenerationFailure reports whether err is one of the failure modes of a
// generation cycle. All three surface to the user as the same retry prompt.
func IsGenerationFailure(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable) ||
		errors.Is(err, ErrExtractionFailure) ||
		errors.Is(err, ErrValidationFailure)
}
