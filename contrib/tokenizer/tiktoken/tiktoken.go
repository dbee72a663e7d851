package tiktoken

import (
	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates prompt token counts using a tiktoken encoding.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// NewCounter resolves an encoding by model name, falling back to encoding
// name lookup.
func NewCounter(name string) (*Counter, error) {
	enc, err := tiktoken.EncodingForModel(name)
	if err != nil {
		enc, err = tiktoken.GetEncoding(name)
		if err != nil {
			return nil, err
		}
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of tokens in text.
func (c *Counter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}
