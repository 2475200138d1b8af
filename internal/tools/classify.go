package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
)

// ClassifyTool handles the beauty_classify MCP tool. It previews a
// classification without saving anything.
type ClassifyTool struct {
	svc *beauty.Service
}

// NewClassifyTool creates a ClassifyTool.
func NewClassifyTool(svc *beauty.Service) *ClassifyTool {
	return &ClassifyTool{svc: svc}
}

// Definition returns the MCP tool definition for beauty_classify.
func (t *ClassifyTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Preview undertone and season classification for a description without saving a profile. " +
				"Useful to check how extra indicators change the verdict.",
		),
		mcp.WithString(argDetail,
			mcp.Description("Verbosity: summary, standard (default), full (indicator breakdown)"),
			mcp.Enum(DetailLevelValues()...),
		),
	}
	opts = append(opts, attributeOptions(true)...)
	return mcp.NewTool("beauty_classify", opts...)
}

// Handle processes the beauty_classify tool call.
func (t *ClassifyTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := attributesArg(req)
	a.UserID = ""

	p, err := t.svc.Classify(a)
	if err != nil {
		return toolError("classify", err), nil
	}

	var b strings.Builder
	b.WriteString(renderProfile(p, ParseDetailLevel(req.GetString(argDetail, ""))))
	b.WriteString("\n_Preview only: nothing was saved._\n")
	return mcp.NewToolResultText(b.String()), nil
}
