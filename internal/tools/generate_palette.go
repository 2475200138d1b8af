package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

// GeneratePaletteTool handles the beauty_generate_palette MCP tool.
type GeneratePaletteTool struct {
	svc *beauty.Service
}

// NewGeneratePaletteTool creates a GeneratePaletteTool.
func NewGeneratePaletteTool(svc *beauty.Service) *GeneratePaletteTool {
	return &GeneratePaletteTool{svc: svc}
}

// Definition returns the MCP tool definition for beauty_generate_palette.
func (t *GeneratePaletteTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Generate a deterministic color palette. With user_id the stored profile is used and the " +
				"palette is saved to that user's history. Without user_id, pass skin_tone, eye_color, " +
				"hair_color and at least one undertone indicator for a one-off palette that is not saved.",
		),
		mcp.WithString(argPalette,
			mcp.Required(),
			mcp.Description("What the palette is for"),
			mcp.Enum(colorimetry.PaletteTypeValues()...),
		),
		mcp.WithString(argUserID,
			mcp.Description("Stored profile to use; omit for a one-off palette"),
		),
		mcp.WithString(argEvent,
			mcp.Description("Occasion (default: casual)"),
			mcp.Enum(colorimetry.EventValues()...),
		),
		mcp.WithString(argYearSeason,
			mcp.Description("Season of the year (default: derived from today's date)"),
			mcp.Enum(colorimetry.YearSeasonValues()...),
		),
		mcp.WithNumber(argSlots,
			mcp.Description("Number of colors (default: one per role, 3 for clothing and accessories, 4 for makeup)"),
		),
		mcp.WithString(argDetail,
			mcp.Description("Verbosity: summary (hex codes only), standard (default), full (rationale and tips)"),
			mcp.Enum(DetailLevelValues()...),
		),
	}
	opts = append(opts, attributeOptions(false)...)
	return mcp.NewTool("beauty_generate_palette", opts...)
}

// Handle processes the beauty_generate_palette tool call.
func (t *GeneratePaletteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paletteType := req.GetString(argPalette, "")
	if paletteType == "" {
		return mcp.NewToolResultError("'palette_type' is required"), nil
	}

	slots, err := intArg(req, argSlots, 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r := colorimetry.Request{
		UserID:       strings.TrimSpace(req.GetString(argUserID, "")),
		Type:         paletteType,
		Event:        req.GetString(argEvent, ""),
		SeasonOfYear: req.GetString(argYearSeason, ""),
		Slots:        slots,
	}
	if r.UserID == "" {
		a := attributesArg(req)
		if !hasAttributes(a) {
			return mcp.NewToolResultError("provide 'user_id' for a stored profile, or skin_tone, eye_color, hair_color and an undertone indicator"), nil
		}
		r.Overrides = &a
	}

	pal, err := t.svc.GeneratePalette(ctx, r)
	if err != nil {
		return toolError("generate palette", err), nil
	}

	detail := req.GetString(argDetail, "")
	if detail == "" {
		detail = DetailFull
	}
	text := renderPalette(pal, ParseDetailLevel(detail))
	if r.UserID == "" {
		text += "\n_One-off palette: not saved. Create a profile to keep a history._\n"
	}
	return mcp.NewToolResultText(text), nil
}
