package tool

import (
	"context"
	"testing"
)

func TestToolExecution(t *testing.T) {
	ctx := context.Background()

	tool := &Tool{
		Name:        "test_tool",
		Description: "A test tool",
		Parameters: []Parameter{
			{Name: "input", Type: "string", Description: "Test input", Required: true},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			return args["input"].(string) + "_processed", nil
		},
	}

	result, err := tool.Execute(ctx, map[string]interface{}{"input": "test"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result != "test_processed" {
		t.Errorf("Expected 'test_processed', got '%s'", result)
	}
}

func TestToolValidation(t *testing.T) {
	ctx := context.Background()

	tool := &Tool{
		Name:        "test_tool",
		Description: "A test tool",
		Parameters: []Parameter{
			{Name: "required_param", Type: "string", Description: "Required parameter", Required: true},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			return "ok", nil
		},
	}

	// Test with missing required parameter
	_, err := tool.Execute(ctx, map[string]interface{}{})
	if err == nil {
		t.Error("Expected error for missing required parameter, got nil")
	}

	// Test with required parameter
	_, err = tool.Execute(ctx, map[string]interface{}{"required_param": "value"})
	if err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestToolEnumValidation(t *testing.T) {
	ctx := context.Background()

	tool := &Tool{
		Name: "styled_tool",
		Parameters: []Parameter{
			{Name: "style", Type: "string", Enum: []string{"brief", "comprehensive", "detailed"}},
		},
		Handler: func(ctx context.Context, args map[string]interface{}) (string, error) {
			return "ok", nil
		},
	}

	if _, err := tool.Execute(ctx, map[string]interface{}{"style": "brief"}); err != nil {
		t.Errorf("Expected no error for allowed enum value, got %v", err)
	}

	if _, err := tool.Execute(ctx, map[string]interface{}{"style": "extreme"}); err == nil {
		t.Error("Expected error for disallowed enum value, got nil")
	}

	// Omitting an optional enum parameter is fine.
	if _, err := tool.Execute(ctx, map[string]interface{}{}); err != nil {
		t.Errorf("Expected no error for omitted optional parameter, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	tool1 := &Tool{Name: "tool1", Description: "First tool"}
	tool2 := &Tool{Name: "tool2", Description: "Second tool"}

	if err := registry.Register(tool1); err != nil {
		t.Fatalf("Failed to register tool1: %v", err)
	}

	if err := registry.Register(tool2); err != nil {
		t.Fatalf("Failed to register tool2: %v", err)
	}

	// Test duplicate registration
	if err := registry.Register(tool1); err == nil {
		t.Error("Expected error for duplicate registration, got nil")
	}

	retrieved, err := registry.Get("tool1")
	if err != nil {
		t.Fatalf("Failed to get tool1: %v", err)
	}

	if retrieved.Name != "tool1" {
		t.Errorf("Expected tool name 'tool1', got '%s'", retrieved.Name)
	}

	tools := registry.List()
	if len(tools) != 2 {
		t.Errorf("Expected 2 tools, got %d", len(tools))
	}
}

func TestToolJSONSchema(t *testing.T) {
	tool := &Tool{
		Name:        "summarize_text",
		Description: "Summarize text",
		Parameters: []Parameter{
			{Name: "text", Type: "string", Required: true},
			{Name: "summary_style", Type: "string", Enum: []string{"brief", "comprehensive", "detailed"}, Default: "comprehensive"},
		},
	}

	schema := tool.ToJSONSchema()
	fn, ok := schema["function"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected function object in schema")
	}
	if fn["name"] != "summarize_text" {
		t.Errorf("Expected schema name 'summarize_text', got %v", fn["name"])
	}

	params := fn["parameters"].(map[string]interface{})
	required := params["required"].([]string)
	if len(required) != 1 || required[0] != "text" {
		t.Errorf("Expected only 'text' to be required, got %v", required)
	}
}
