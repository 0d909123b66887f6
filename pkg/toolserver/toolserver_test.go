package toolserver

import (
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTools(t *testing.T, words string, limits config.ServerConfig) *Tools {
	t.Helper()
	sess := session.New(session.Options{})
	if err := sess.Load(strings.NewReader(words)); err != nil {
		t.Fatal(err)
	}
	return New(sess, limits)
}

func call(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) != 1 {
		t.Fatalf("expected a single content item, got %+v", result)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestHandleSpellCheck(t *testing.T) {
	tools := newTools(t, "the quick brown fox", config.ServerConfig{})

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "clean",
			text: "The quick brown fox",
			want: "No spelling mistakes found.",
		},
		{
			name: "mistakes",
			text: "the qick brown fx",
			want: "Found 2 spelling mistakes:\n\n" +
				"Line 1: qick\nSuggestions for 'qick': quick\n\n" +
				"Line 1: fx\nSuggestions for 'fx': fox\n\n",
		},
		{
			name: "no suggestions",
			text: "the\nzebra",
			want: "Found 1 spelling mistakes:\n\nLine 2: zebra\nSuggestions for 'zebra': None\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tools.HandleSpellCheck(context.Background(), call("spellcheck", map[string]interface{}{"text": tt.text}))
			if err != nil {
				t.Fatal(err)
			}
			if got := textOf(t, result); got != tt.want {
				t.Errorf("spellcheck(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestHandleSpellCheckRejects(t *testing.T) {
	tools := newTools(t, "fox", config.ServerConfig{MaxTextBytes: 4})

	if _, err := tools.HandleSpellCheck(context.Background(), call("spellcheck", map[string]interface{}{"text": 42})); err == nil {
		t.Error("non-string text should fail")
	}
	if _, err := tools.HandleSpellCheck(context.Background(), call("spellcheck", map[string]interface{}{"text": "foxes fox"})); err == nil {
		t.Error("oversized text should fail")
	}

	empty := New(session.New(session.Options{}), config.ServerConfig{})
	if _, err := empty.HandleSpellCheck(context.Background(), call("spellcheck", map[string]interface{}{"text": "fox"})); err == nil {
		t.Error("spellcheck without a dictionary should fail")
	}
}

func TestHandleSuggest(t *testing.T) {
	tools := newTools(t, "car cart care cat", config.ServerConfig{})

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"default limit", map[string]interface{}{"word": "cax"}, "Suggestions for 'cax': car, cart, care, cat"},
		{"with limit", map[string]interface{}{"word": "cax", "limit": float64(2)}, "Suggestions for 'cax': car, cart"},
		{"none", map[string]interface{}{"word": "dog"}, "Suggestions for 'dog': None"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tools.HandleSuggest(context.Background(), call("suggest", tt.args))
			if err != nil {
				t.Fatal(err)
			}
			if got := textOf(t, result); got != tt.want {
				t.Errorf("suggest = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := tools.HandleSuggest(context.Background(), call("suggest", map[string]interface{}{})); err == nil {
		t.Error("missing word should fail")
	}
}

func TestNewMCPServer(t *testing.T) {
	if NewMCPServer("wordcheck", "test", newTools(t, "fox", config.ServerConfig{})) == nil {
		t.Fatal("NewMCPServer returned nil")
	}
}

func TestHandleSuggestBounds(t *testing.T) {
	tools := newTools(t, "car cart care cat", config.ServerConfig{MaxWordLen: 4, MaxLimit: 2})

	result, err := tools.HandleSuggest(context.Background(), call("suggest", map[string]interface{}{"word": "cax", "limit": float64(100)}))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := textOf(t, result), "Suggestions for 'cax': car, cart"; got != want {
		t.Errorf("suggest = %q, want %q", got, want)
	}

	if _, err := tools.HandleSuggest(context.Background(), call("suggest", map[string]interface{}{"word": "carts"})); err == nil {
		t.Error("word over the length limit should fail")
	}
}
