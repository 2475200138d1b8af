// Package tools implements the MCP tool handlers for the beauty server.
//
// Each tool is a struct that receives its dependencies via its constructor
// and exposes Definition() for the schema and Handle() for the call:
// - one file per tool
// - tools depend on beauty.Service, never on a store directly
// - domain failures become tool-result errors, never Go errors
package tools

import (
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

// Detail level constants for read tools.
const (
	DetailSummary  = "summary"
	DetailStandard = "standard"
	DetailFull     = "full"
)

// DetailLevelValues returns the enum values for MCP tool definitions.
func DetailLevelValues() []string {
	return []string{DetailSummary, DetailStandard, DetailFull}
}

// ParseDetailLevel normalizes a detail_level string, defaulting to "standard"
// for empty or unrecognized values.
func ParseDetailLevel(s string) string {
	switch s {
	case DetailSummary, DetailFull:
		return s
	default:
		return DetailStandard
	}
}

// SummaryFooter is appended to summary-mode responses.
const SummaryFooter = "\n---\n💡 Use detail_level: standard or full for more detail."

// NavigationHint returns a one-line footer when results are capped by a limit.
// Returns an empty string when all results fit or total is 0.
func NavigationHint(showing, total int, hint string) string {
	if total <= 0 || showing >= total {
		return ""
	}
	if hint != "" {
		return fmt.Sprintf("\n📊 Showing %d of %d. %s", showing, total, hint)
	}
	return fmt.Sprintf("\n📊 Showing %d of %d.", showing, total)
}

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
// Fractions and values beyond 32 bits are rejected.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (int, error) {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal, nil
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("'%s' must be a whole number, got %v", key, v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("'%s' is out of range: %v", key, v)
	}
	return int(v), nil
}

// boolArg extracts a boolean argument from a tool request.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}

// toolError converts an engine or store error into a tool-result error.
// Engine errors keep their reason; anything else is reported as internal.
func toolError(action string, err error) *mcp.CallToolResult {
	kind := colorimetry.KindOf(err)
	if kind == "internal" {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", action, err))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", kind, colorimetry.Reason(err)))
}

// Argument names shared by the profile and palette tools.
const (
	argUserID     = "user_id"
	argName       = "name"
	argSkinTone   = "skin_tone"
	argEyeColor   = "eye_color"
	argHairColor  = "hair_color"
	argHairType   = "hair_type"
	argStyle      = "style_preference"
	argContrast   = "contrast_level"
	argVein       = "vein_color"
	argJewelry    = "jewelry_preference"
	argSun        = "sun_reaction"
	argLips       = "natural_lip_color"
	argUndertone  = "undertone"
	argDetail     = "detail_level"
	argPalette    = "palette_type"
	argEvent      = "event_type"
	argYearSeason = "season_of_year"
	argSlots      = "slots"
	argLimit      = "limit"
)

// attributeOptions returns the schema for the person description. When
// required is false the physical traits are optional (quick mode).
func attributeOptions(required bool) []mcp.ToolOption {
	trait := func(name, desc string) mcp.ToolOption {
		opts := []mcp.PropertyOption{mcp.Description(desc)}
		if required {
			opts = append(opts, mcp.Required())
		}
		return mcp.WithString(name, opts...)
	}
	return []mcp.ToolOption{
		trait(argSkinTone, "Skin depth: clara/light, media/medium, oscura/deep (aliases such as fair, olive, morena, dark are accepted)"),
		trait(argEyeColor, "Eye color: azul/blue, verde/green, avellana/hazel, cafe/brown, gris/grey, negro/black"),
		trait(argHairColor, "Natural hair color: rubio/blonde, castaño/brown, negro/black, pelirrojo/red, canoso/grey"),
		mcp.WithString(argHairType, mcp.Description("Hair type: liso/straight, ondulado/wavy, rizado/curly (default: straight)")),
		mcp.WithString(argStyle, mcp.Description("Style preference: classic, modern, bohemian, minimalist, romantic, edgy (default: classic)")),
		mcp.WithString(argContrast, mcp.Description("Personal contrast: bajo/low, medio/medium, alto/high. Estimated from hair, eyes and skin when omitted")),
		mcp.WithString(argVein, mcp.Description("Wrist vein color: azul/blue, verde/green, mixto/mixed")),
		mcp.WithString(argJewelry, mcp.Description("Metal that flatters most: plata/silver, oro/gold, oro_rosa/rose_gold, ambos/both")),
		mcp.WithString(argSun, mcp.Description("Reaction to sun: se_quema/burns, broncea_facil/tans, a_veces/sometimes")),
		mcp.WithString(argLips, mcp.Description("Natural lip color: rosado/pink, durazno/peach, neutro/nude")),
		mcp.WithString(argUndertone, mcp.Description("Self-reported undertone: frio/cool, calido/warm, neutro/neutral")),
	}
}

// attributesArg reads the person description from a request.
func attributesArg(req mcp.CallToolRequest) colorimetry.Attributes {
	return colorimetry.Attributes{
		UserID:          strings.TrimSpace(req.GetString(argUserID, "")),
		Name:            req.GetString(argName, ""),
		SkinTone:        req.GetString(argSkinTone, ""),
		EyeColor:        req.GetString(argEyeColor, ""),
		HairColor:       req.GetString(argHairColor, ""),
		HairType:        req.GetString(argHairType, ""),
		StylePreference: req.GetString(argStyle, ""),
		ContrastLevel:   req.GetString(argContrast, ""),
		IndicatorInput: colorimetry.IndicatorInput{
			VeinColor:         req.GetString(argVein, ""),
			JewelryPreference: req.GetString(argJewelry, ""),
			SunReaction:       req.GetString(argSun, ""),
			NaturalLipColor:   req.GetString(argLips, ""),
			StatedUndertone:   req.GetString(argUndertone, ""),
		},
	}
}

// hasAttributes reports whether any physical trait was supplied.
func hasAttributes(a colorimetry.Attributes) bool {
	return a.SkinTone != "" || a.EyeColor != "" || a.HairColor != "" ||
		a.VeinColor != "" || a.JewelryPreference != "" || a.SunReaction != "" ||
		a.NaturalLipColor != "" || a.StatedUndertone != ""
}
