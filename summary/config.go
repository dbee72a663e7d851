package summary

import (
	"fmt"

	"github.com/sweetpotato0/docsum/config"
	apperrors "github.com/sweetpotato0/docsum/errors"
)

// Style is a named preset controlling summary verbosity.
type Style string

const (
	StyleBrief         Style = "brief"
	StyleComprehensive Style = "comprehensive"
	StyleDetailed      Style = "detailed"
)

// Resolve maps any unrecognized style to StyleComprehensive. Unknown values
// are not an error.
func (s Style) Resolve() Style {
	switch s {
	case StyleBrief, StyleComprehensive, StyleDetailed:
		return s
	default:
		return StyleComprehensive
	}
}

// Config controls how a summary request is composed. Supplied per invocation
// and never mutated by the pipeline.
type Config struct {
	// Style selects the instruction preset; unknown values resolve to
	// comprehensive.
	Style Style
	// TargetLength is the requested summary length in words. Advisory:
	// embedded as an instruction, not enforced on the backend's output.
	TargetLength int
	// IncludeKeyPoints asks for a bulleted key-points section.
	IncludeKeyPoints bool
	// MaxPages bounds document extraction; 0 means all pages.
	MaxPages int
}

// DefaultConfig mirrors the pipeline's documented defaults.
func DefaultConfig() Config {
	return Config{
		Style:            StyleComprehensive,
		TargetLength:     500,
		IncludeKeyPoints: true,
	}
}

// resolved fills zero values with defaults and normalizes the style.
func (c Config) resolved() Config {
	c.Style = c.Style.Resolve()
	if c.TargetLength == 0 {
		c.TargetLength = 500
	}
	return c
}

// Validate rejects configs that cannot describe a summary request.
func (c Config) Validate() error {
	v := config.NewValidator()
	v.RequirePositive("target_length", c.TargetLength)
	v.RequireNonNegative("max_pages", c.MaxPages)
	if err := v.Error(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}
	return nil
}
