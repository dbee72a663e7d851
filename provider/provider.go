package provider

import (
	"context"
	"fmt"

	apperrors "github.com/sweetpotato0/docsum/errors"
)

// Client invokes the generative text backend with a fully composed prompt.
// A single call, no implicit retry, timeout or rate limiting; those policies
// belong to the caller or a wrapping layer.
type Client interface {
	Invoke(ctx context.Context, prompt string) (Response, error)
}

// Response is the backend's loosely-typed reply: either a bare string or a
// structured value carrying a content field. Modeled as a closed union so
// normalization is an exhaustive match instead of runtime shape probing.
type Response interface {
	response()
}

// TextValue is a backend reply that is itself the summary text.
type TextValue string

func (TextValue) response() {}

// StructuredValue is a backend reply with an explicit content field plus
// whatever metadata the backend attaches.
type StructuredValue struct {
	Content string
	Model   string
}

func (StructuredValue) response() {}

// Normalize converts any legal backend response into a single canonical
// string. A nil response is the one malformed shape it refuses.
func Normalize(resp Response) (string, error) {
	switch v := resp.(type) {
	case nil:
		return "", fmt.Errorf("%w: nil response", apperrors.ErrMalformedResponse)
	case TextValue:
		return string(v), nil
	case StructuredValue:
		return v.Content, nil
	default:
		return fmt.Sprint(v), nil
	}
}
