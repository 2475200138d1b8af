package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
)

// GetProfileTool handles the beauty_get_profile MCP tool.
type GetProfileTool struct {
	svc *beauty.Service
}

// NewGetProfileTool creates a GetProfileTool.
func NewGetProfileTool(svc *beauty.Service) *GetProfileTool {
	return &GetProfileTool{svc: svc}
}

// Definition returns the MCP tool definition for beauty_get_profile.
func (t *GetProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("beauty_get_profile",
		mcp.WithDescription("Show a stored color profile: season, undertone verdict, traits and indicators."),
		mcp.WithString(argUserID,
			mcp.Required(),
			mcp.Description("User whose profile to show"),
		),
		mcp.WithString(argDetail,
			mcp.Description("Verbosity: summary (season and undertone only), standard (default), full (indicator breakdown)"),
			mcp.Enum(DetailLevelValues()...),
		),
	)
}

// Handle processes the beauty_get_profile tool call.
func (t *GetProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := req.GetString(argUserID, "")
	if userID == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}

	p, err := t.svc.GetProfile(ctx, userID)
	if err != nil {
		return toolError("get profile", err), nil
	}
	return mcp.NewToolResultText(renderProfile(p, ParseDetailLevel(req.GetString(argDetail, "")))), nil
}
