package provider

import (
	"errors"
	"testing"

	apperrors "github.com/sweetpotato0/docsum/errors"
)

func TestNormalizeTextValue(t *testing.T) {
	out, err := Normalize(TextValue("plain summary"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "plain summary" {
		t.Errorf("Expected 'plain summary', got %q", out)
	}
}

func TestNormalizeStructuredValue(t *testing.T) {
	out, err := Normalize(StructuredValue{Content: "structured summary", Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "structured summary" {
		t.Errorf("Expected content field, got %q", out)
	}
}

func TestNormalizeNil(t *testing.T) {
	_, err := Normalize(nil)
	if !errors.Is(err, apperrors.ErrMalformedResponse) {
		t.Errorf("Expected ErrMalformedResponse for nil response, got %v", err)
	}
}

type oddResponse struct{ note string }

func (oddResponse) response() {}

func (r oddResponse) String() string { return r.note }

func TestNormalizeUnknownShapeCoerces(t *testing.T) {
	out, err := Normalize(oddResponse{note: "coerced"})
	if err != nil {
		t.Fatalf("Expected no error for coercible shape, got %v", err)
	}
	if out != "coerced" {
		t.Errorf("Expected string coercion, got %q", out)
	}
}
