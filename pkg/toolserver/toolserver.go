// Package toolserver exposes a session as Model Context Protocol tools:
// "spellcheck" reports the mistakes of a text and "suggest" lists
// corrections for one word.
package toolserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/session"
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tools holds the handlers bound to a session.
type Tools struct {
	session *session.Session
	limits  config.ServerConfig
}

// New binds tool handlers to sess. Inputs are bounded by limits the same
// way the IPC server bounds them; zero fields disable a bound.
func New(sess *session.Session, limits config.ServerConfig) *Tools {
	return &Tools{session: sess, limits: limits}
}

// NewMCPServer creates an MCP server with the tools registered.
func NewMCPServer(name, version string, tools *Tools) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)
	tools.Register(mcpServer)
	return mcpServer
}

// Serve runs the MCP server over stdin/stdout until the client disconnects.
func Serve(mcpServer *server.MCPServer) error {
	return server.ServeStdio(mcpServer)
}

// Register adds the spellcheck and suggest tools to mcpServer.
func (t *Tools) Register(mcpServer *server.MCPServer) {
	spellCheckTool := mcp.NewTool("spellcheck",
		mcp.WithDescription("Checks the spelling of a text against the loaded dictionary. Reports every unknown word with its line number and words from the dictionary that share its leading letters."),
		mcp.WithString("text",
			mcp.Description("The text to check"),
			mcp.Required(),
		),
	)
	mcpServer.AddTool(spellCheckTool, t.HandleSpellCheck)

	suggestTool := mcp.NewTool("suggest",
		mcp.WithDescription("Lists dictionary words that start with the longest known prefix of a word."),
		mcp.WithString("word",
			mcp.Description("The word to find corrections for"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of suggestions (default: session limit)"),
		),
	)
	mcpServer.AddTool(suggestTool, t.HandleSuggest)

	log.Debug("Registered MCP tools", "tools", "spellcheck,suggest")
}

// HandleSpellCheck is the handler function for the spellcheck tool
func (t *Tools) HandleSpellCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, ok := request.Params.Arguments["text"].(string)
	if !ok {
		return nil, fmt.Errorf("text must be a string")
	}
	if t.limits.MaxTextBytes > 0 && len(text) > t.limits.MaxTextBytes {
		return nil, fmt.Errorf("text exceeds %d bytes", t.limits.MaxTextBytes)
	}

	report, err := t.session.Check(text)
	if err != nil {
		return nil, fmt.Errorf("error performing spell check: %w", err)
	}

	result := &mcp.CallToolResult{}
	if report.Clean() {
		result.Content = append(result.Content, mcp.TextContent{
			Type: "text",
			Text: "No spelling mistakes found.",
		})
		return result, nil
	}

	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Found %d spelling mistakes:\n\n", len(report.Entries)))
	for _, e := range report.Entries {
		summary.WriteString(fmt.Sprintf("Line %d: %s\n", e.Line, e.Word))
		summary.WriteString(fmt.Sprintf("Suggestions for '%s': %s\n\n", e.Word, joinOrNone(e.Suggestions)))
	}
	result.Content = append(result.Content, mcp.TextContent{
		Type: "text",
		Text: summary.String(),
	})
	return result, nil
}

// HandleSuggest is the handler function for the suggest tool
func (t *Tools) HandleSuggest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	word, ok := arguments["word"].(string)
	if !ok || word == "" {
		return nil, fmt.Errorf("word must be a non-empty string")
	}
	if t.limits.MaxWordLen > 0 && len(word) > t.limits.MaxWordLen {
		return nil, fmt.Errorf("word exceeds maximum length of %d", t.limits.MaxWordLen)
	}
	limit := 0
	if limitVal, ok := arguments["limit"].(float64); ok {
		limit = int(limitVal)
	}
	if t.limits.MaxLimit > 0 && limit > t.limits.MaxLimit {
		limit = t.limits.MaxLimit
	}

	words, err := t.session.Suggest(word, limit)
	if err != nil {
		return nil, fmt.Errorf("error generating suggestions: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: fmt.Sprintf("Suggestions for '%s': %s", word, joinOrNone(words)),
			},
		},
	}, nil
}

func joinOrNone(words []string) string {
	if len(words) == 0 {
		return "None"
	}
	return strings.Join(words, ", ")
}
