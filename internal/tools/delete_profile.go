package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
)

// DeleteProfileTool handles the beauty_delete_profile MCP tool.
type DeleteProfileTool struct {
	svc *beauty.Service
}

// NewDeleteProfileTool creates a DeleteProfileTool.
func NewDeleteProfileTool(svc *beauty.Service) *DeleteProfileTool {
	return &DeleteProfileTool{svc: svc}
}

// Definition returns the MCP tool definition for beauty_delete_profile.
func (t *DeleteProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("beauty_delete_profile",
		mcp.WithDescription("Delete a color profile together with its whole palette history. This cannot be undone."),
		mcp.WithString(argUserID,
			mcp.Required(),
			mcp.Description("User whose profile to delete"),
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true to actually delete"),
		),
	)
}

// Handle processes the beauty_delete_profile tool call.
func (t *DeleteProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := req.GetString(argUserID, "")
	if userID == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}
	if !boolArg(req, "confirm", false) {
		return mcp.NewToolResultError("set 'confirm' to true to delete the profile and its history"), nil
	}

	if err := t.svc.DeleteProfile(ctx, userID); err != nil {
		return toolError("delete profile", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("🗑️ Deleted profile `%s` and its palette history.", userID)), nil
}
