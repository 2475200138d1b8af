package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
)

// CreateProfileTool handles the beauty_create_profile MCP tool.
type CreateProfileTool struct {
	svc *beauty.Service
}

// NewCreateProfileTool creates a CreateProfileTool.
func NewCreateProfileTool(svc *beauty.Service) *CreateProfileTool {
	return &CreateProfileTool{svc: svc}
}

// Definition returns the MCP tool definition for beauty_create_profile.
func (t *CreateProfileTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Create or replace a personal color profile. Classifies the undertone from the given " +
				"indicators (at least one is required), then assigns one of eight season archetypes " +
				"from undertone, skin depth and contrast. Replacing a profile keeps its palette history.",
		),
		mcp.WithString(argUserID,
			mcp.Required(),
			mcp.Description("Stable identifier for the person (letters, digits, '.', '_', '@', '-')"),
		),
		mcp.WithString(argName,
			mcp.Description("Display name"),
		),
	}
	opts = append(opts, attributeOptions(true)...)
	return mcp.NewTool("beauty_create_profile", opts...)
}

// Handle processes the beauty_create_profile tool call.
func (t *CreateProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := attributesArg(req)
	if a.UserID == "" {
		return mcp.NewToolResultError("'user_id' is required"), nil
	}

	p, err := t.svc.CreateProfile(ctx, a)
	if err != nil {
		return toolError("create profile", err), nil
	}

	var b strings.Builder
	b.WriteString("✅ Profile saved.\n\n")
	b.WriteString(renderProfile(p, DetailStandard))
	b.WriteString("\nNext: call `beauty_generate_palette` with this user_id and a palette_type (clothing, makeup, accessories).\n")
	return mcp.NewToolResultText(b.String()), nil
}
