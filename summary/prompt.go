package summary

import (
	"github.com/sweetpotato0/docsum/prompt"
)

const (
	// maxEmbeddedChars bounds how much source text is embedded in a prompt.
	// A coarse character proxy for the backend's context limit.
	maxEmbeddedChars = 10000

	// truncationMarker is appended directly after the embedded excerpt when
	// the source text exceeded the bound.
	truncationMarker = "..."
)

var styleInstructions = map[Style]string{
	StyleBrief:         "Create a brief, concise summary in 2-3 sentences.",
	StyleComprehensive: "Create a comprehensive summary that captures all major points.",
	StyleDetailed:      "Create a detailed summary with thorough analysis of all key aspects.",
}

var summaryTemplate = prompt.MustTemplate("summarize", `You are an expert at analyzing and summarizing documents.

Please analyze the following text and provide a summary.

{{.StyleInstruction}}
Target length: approximately {{.TargetLength}} words.{{if .IncludeKeyPoints}}

After the summary, provide 5-7 key points as bullet points.{{end}}

Format your response as:

## Summary
[Your summary here]
{{if .IncludeKeyPoints}}
## Key Points
- [Point 1]
- [Point 2]
- ...
{{end}}
Text to summarize:
---
{{.Text}}{{.Marker}}
---

Summary:`)

// BuildPrompt composes the summarization prompt for the given config and
// source text. Pure: identical inputs always yield a byte-identical prompt.
// Source text is cut at the first 10,000 characters; the truncation marker
// appears if and only if the original exceeded that bound.
func BuildPrompt(cfg Config, text string) (string, error) {
	cfg = cfg.resolved()

	embedded := text
	marker := ""
	if runes := []rune(text); len(runes) > maxEmbeddedChars {
		embedded = string(runes[:maxEmbeddedChars])
		marker = truncationMarker
	}

	return summaryTemplate.Render(map[string]interface{}{
		"StyleInstruction": styleInstructions[cfg.Style],
		"TargetLength":     cfg.TargetLength,
		"IncludeKeyPoints": cfg.IncludeKeyPoints,
		"Text":             embedded,
		"Marker":           marker,
	})
}
