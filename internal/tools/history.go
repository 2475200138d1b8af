package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
)

// HistoryTool handles the beauty_history MCP tool.
type HistoryTool struct {
	svc *beauty.Service
}

// NewHistoryTool creates a HistoryTool.
func NewHistoryTool(svc *beauty.Service) *HistoryTool {
	return &HistoryTool{svc: svc}
}

// Definition returns the MCP tool definition for beauty_history.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("beauty_history",
		mcp.WithDescription(
			"Show the palettes generated for a user, most recent first. "+
				"Use detail_level=summary for a compact list of hex codes.",
		),
		mcp.WithString(argUserID,
			mcp.Required(),
			mcp.Description("User whose palette history to show"),
		),
		mcp.WithString(argDetail,
			mcp.Description("Verbosity: summary (hex codes), standard (default, role table), full (rationale and tips)"),
			mcp.Enum(DetailLevelValues()...),
		),
		mcp.WithNumber(argLimit,
			mcp.Description("Max palettes to show (default: 10)"),
		),
	)
}

// Handle processes the beauty_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := req.GetString(argUserID, "")
	if userID == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}
	detail := ParseDetailLevel(req.GetString(argDetail, ""))
	limit, err := intArg(req, argLimit, 10)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if limit < 1 {
		limit = 10
	}

	history, err := t.svc.History(ctx, userID)
	if err != nil {
		return toolError("history", err), nil
	}
	if len(history) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No palettes yet for `%s`. Use `beauty_generate_palette` to create one.", userID)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 🗂️ Palette history for `%s` (%d)\n\n", userID, len(history))
	shown := 0
	for i := len(history) - 1; i >= 0 && shown < limit; i-- {
		p := history[i]
		if detail == DetailSummary {
			fmt.Fprintf(&b, "- %s `%s` %s (%s): %s\n",
				p.CreatedAt.Format("2006-01-02"), p.ID, p.Type, p.Event, strings.Join(p.Hexes(), " "))
		} else {
			b.WriteString(renderPalette(&p, detail))
			b.WriteString("\n")
		}
		shown++
	}
	b.WriteString(NavigationHint(shown, len(history), "Raise 'limit' to see older palettes."))
	if detail == DetailSummary {
		b.WriteString(SummaryFooter)
	}
	return mcp.NewToolResultText(b.String()), nil
}
