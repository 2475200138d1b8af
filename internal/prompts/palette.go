package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

// PalettePrompt handles the beauty-palette MCP prompt.
// It asks the AI to generate and explain a palette for a stored profile.
type PalettePrompt struct{}

// NewPalettePrompt creates a PalettePrompt.
func NewPalettePrompt() *PalettePrompt {
	return &PalettePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *PalettePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("beauty-palette",
		mcp.WithPromptDescription(
			"Get a color palette for an occasion. Uses your saved profile and explains "+
				"how to wear each color.",
		),
		mcp.WithArgument("user_id",
			mcp.ArgumentDescription("Saved profile to use"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("palette_type",
			mcp.ArgumentDescription("clothing, makeup or accessories. Default: clothing"),
		),
		mcp.WithArgument("event_type",
			mcp.ArgumentDescription("Occasion: "+strings.Join(colorimetry.EventValues(), ", ")+". Default: casual"),
		),
	)
}

// Handle processes the beauty-palette prompt request.
func (p *PalettePrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	userID := argOr(req, "user_id", "")
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	paletteType := argOr(req, "palette_type", string(colorimetry.Clothing))
	event := argOr(req, "event_type", string(colorimetry.Casual))

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("%s palette for %s", paletteType, userID),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please run `beauty_generate_palette` with user_id='%s', palette_type='%s' and event_type='%s'.\n\n"+
						"Then:\n"+
						"1. Present the colors as a short list with their role and hex code\n"+
						"2. Explain in one sentence each why they suit my season\n"+
						"3. Share the most useful tips and season-of-year adjustments\n"+
						"4. If the profile is missing, offer to run the beauty-start flow instead",
					userID, paletteType, event,
				)),
			},
		},
	}, nil
}
