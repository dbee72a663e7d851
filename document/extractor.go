package document

import "context"

// Extractor converts a paginated document into ordered plain text.
// maxPages <= 0 means no page limit. Implementations must release the
// document handle on every exit path and must not return partial results
// alongside an error.
type Extractor interface {
	Extract(ctx context.Context, ref Reference, maxPages int) (Extracted, error)
}
