package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
)

// ListProfilesTool handles the beauty_list_profiles MCP tool.
type ListProfilesTool struct {
	svc *beauty.Service
}

// NewListProfilesTool creates a ListProfilesTool.
func NewListProfilesTool(svc *beauty.Service) *ListProfilesTool {
	return &ListProfilesTool{svc: svc}
}

// Definition returns the MCP tool definition for beauty_list_profiles.
func (t *ListProfilesTool) Definition() mcp.Tool {
	return mcp.NewTool("beauty_list_profiles",
		mcp.WithDescription("List every stored color profile in creation order."),
		mcp.WithNumber(argLimit,
			mcp.Description("Max profiles to show (default: 50)"),
		),
	)
}

// Handle processes the beauty_list_profiles tool call.
func (t *ListProfilesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit, err := intArg(req, argLimit, 50)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit < 1 {
		limit = 50
	}

	list, err := t.svc.ListProfiles(ctx)
	if err != nil {
		return toolError("list profiles", err), nil
	}
	if len(list) == 0 {
		return mcp.NewToolResultText("No profiles yet. Use `beauty_create_profile` to add one."), nil
	}

	shown := list
	if len(shown) > limit {
		shown = shown[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 👥 Profiles (%d)\n\n", len(list))
	b.WriteString("| User | Name | Season | Undertone | Confidence |\n|---|---|---|---|---|\n")
	for _, p := range shown {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %.0f%% |\n",
			p.UserID, p.Name, p.Season.Name(), p.Verdict.Undertone, p.Verdict.Confidence*100)
	}
	b.WriteString(NavigationHint(len(shown), len(list), "Raise 'limit' to see more."))
	return mcp.NewToolResultText(b.String()), nil
}
