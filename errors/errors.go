package errors

import "errors"

// Sentinel errors for the pipeline's failure taxonomy. Callers classify
// failures with errors.Is rather than matching message text.
var (
	// ErrNotFound indicates that a document reference does not resolve to
	// an existing file.
	ErrNotFound = errors.New("document not found")

	// ErrExtraction indicates a parse or decode fault while extracting
	// text from a document. The original cause is attached via wrapping.
	ErrExtraction = errors.New("extraction failed")

	// ErrBackend indicates the summarization backend raised or returned
	// an unusable fault.
	ErrBackend = errors.New("backend invocation failed")

	// ErrMalformedResponse indicates a backend response that cannot be
	// coerced to text. Defensive; a conforming backend never triggers it.
	ErrMalformedResponse = errors.New("malformed backend response")

	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = errors.New("invalid input")
)
