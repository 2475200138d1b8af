// Package prompts implements MCP prompt handlers for the beauty server.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to run a sequence of tool calls. Unlike tools (which the
// AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the beauty-start MCP prompt.
// It guides the AI through collecting traits and creating a profile.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("beauty-start",
		mcp.WithPromptDescription(
			"Discover your color season. The assistant asks a few questions about your skin, "+
				"eyes, hair and undertone signals, then saves a personal color profile.",
		),
		mcp.WithArgument("user_id",
			mcp.ArgumentDescription("Identifier to save the profile under"),
		),
		mcp.WithArgument("language",
			mcp.ArgumentDescription("Conversation language: 'es' or 'en'. Default: es"),
		),
	)
}

// Handle processes the beauty-start prompt request.
func (p *StartPrompt) Handle(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	userID := argOr(req, "user_id", "")
	language := argOr(req, "language", "es")

	idStep := fmt.Sprintf("Use user_id='%s'.", userID)
	if userID == "" {
		idStep = "Ask me for a short user_id (letters, digits, '.', '_', '@' or '-')."
	}

	languageNote := "Talk to me in Spanish."
	if language == "en" {
		languageNote = "Talk to me in English."
	}

	return &mcp.GetPromptResult{
		Description: "Discover your color season",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to find out which color season suits me. %s\n\n"+
						"Please:\n"+
						"1. %s\n"+
						"2. Ask for my skin tone (light, medium, deep), eye color and natural hair color\n"+
						"3. Ask at least two undertone questions: the color of the veins on my wrist, "+
						"whether gold or silver jewelry flatters me more, how my skin reacts to the sun, "+
						"and my natural lip color\n"+
						"4. Run `beauty_create_profile` with my answers\n"+
						"5. Explain my season and undertone in plain words; if confidence is low, "+
						"ask one more undertone question and update the profile\n"+
						"6. Offer to generate a clothing, makeup or accessories palette with `beauty_generate_palette`",
					languageNote, idStep,
				)),
			},
		},
	}, nil
}

// argOr returns the named prompt argument or def when it is missing or empty.
func argOr(req mcp.GetPromptRequest, name, def string) string {
	if args := req.Params.Arguments; args != nil {
		if v, ok := args[name]; ok && v != "" {
			return v
		}
	}
	return def
}
