package summary

import (
	"strings"
	"testing"
)

func TestBuildPromptDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	text := "The annual report covers revenue, hiring and product milestones."

	first, err := BuildPrompt(cfg, text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := BuildPrompt(cfg, text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first != second {
		t.Error("Expected byte-identical prompts for identical inputs")
	}
}

func TestBuildPromptStyles(t *testing.T) {
	text := "some content"
	cases := []struct {
		style Style
		want  string
	}{
		{StyleBrief, "brief, concise summary in 2-3 sentences"},
		{StyleComprehensive, "captures all major points"},
		{StyleDetailed, "thorough analysis of all key aspects"},
	}

	for _, tc := range cases {
		out, err := BuildPrompt(Config{Style: tc.style, TargetLength: 100}, text)
		if err != nil {
			t.Fatalf("Expected no error for style %q, got %v", tc.style, err)
		}
		if !strings.Contains(out, tc.want) {
			t.Errorf("Expected style %q prompt to contain %q", tc.style, tc.want)
		}
	}
}

func TestBuildPromptUnknownStyleFallsBack(t *testing.T) {
	text := "some content"

	unknown, err := BuildPrompt(Config{Style: "extreme", TargetLength: 100}, text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	comprehensive, err := BuildPrompt(Config{Style: StyleComprehensive, TargetLength: 100}, text)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if unknown != comprehensive {
		t.Error("Expected unknown style to produce the comprehensive prompt")
	}
}

func TestBuildPromptTargetLength(t *testing.T) {
	out, err := BuildPrompt(Config{Style: StyleBrief, TargetLength: 250}, "content")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "approximately 250 words") {
		t.Errorf("Expected target length instruction, got %q", out)
	}
}

func TestBuildPromptKeyPoints(t *testing.T) {
	with, err := BuildPrompt(Config{Style: StyleBrief, TargetLength: 100, IncludeKeyPoints: true}, "content")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(with, "5-7 key points") {
		t.Error("Expected key points instruction when requested")
	}
	if !strings.Contains(with, "## Key Points") {
		t.Error("Expected Key Points heading in format section when requested")
	}

	without, err := BuildPrompt(Config{Style: StyleBrief, TargetLength: 100, IncludeKeyPoints: false}, "content")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(without, "Key Points") {
		t.Error("Expected no Key Points section when not requested")
	}
}

func TestBuildPromptTruncation(t *testing.T) {
	long := strings.Repeat("a", 12000)

	out, err := BuildPrompt(DefaultConfig(), long)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, strings.Repeat("a", 10000)+"...") {
		t.Error("Expected 10000-char excerpt followed by truncation marker")
	}
	if strings.Contains(out, strings.Repeat("a", 10001)) {
		t.Error("Expected embedded text to stop at 10000 characters")
	}
}

func TestBuildPromptNoTruncationAtBound(t *testing.T) {
	exact := strings.Repeat("b", 10000)

	out, err := BuildPrompt(DefaultConfig(), exact)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(out, exact+"...") {
		t.Error("Expected no truncation marker for text at the bound")
	}
	if !strings.Contains(out, exact) {
		t.Error("Expected full text to be embedded")
	}
}

func TestStyleResolve(t *testing.T) {
	if got := Style("extreme").Resolve(); got != StyleComprehensive {
		t.Errorf("Expected comprehensive fallback, got %q", got)
	}
	if got := StyleBrief.Resolve(); got != StyleBrief {
		t.Errorf("Expected brief to resolve to itself, got %q", got)
	}
}
