package tools

import (
	"fmt"
	"strings"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeVerdict renders the undertone verdict line.
func writeVerdict(b *strings.Builder, v colorimetry.Verdict) {
	fmt.Fprintf(b, "- **Undertone**: %s (confidence %.0f%%, %d indicator(s))\n",
		v.Undertone, v.Confidence*100, v.Indicators)
	if v.LowConfidence {
		b.WriteString("- ⚠️ Low confidence: add more indicators (vein color, jewelry, sun reaction, lip color) to refine the result.\n")
	}
}

// renderProfile renders a profile as markdown at the given detail level.
func renderProfile(p *colorimetry.Profile, detail string) string {
	var b strings.Builder

	name := p.Name
	if name == "" {
		name = p.UserID
	}
	if name == "" {
		name = "Preview"
	}
	fmt.Fprintf(&b, "# 🌸 %s: %s\n\n", name, p.Season.Name())

	if detail == DetailSummary {
		fmt.Fprintf(&b, "- **Season**: %s | **Undertone**: %s (%.0f%%)\n",
			p.Season.Name(), p.Verdict.Undertone, p.Verdict.Confidence*100)
		b.WriteString(SummaryFooter)
		return b.String()
	}

	if p.UserID != "" {
		fmt.Fprintf(&b, "- **User**: `%s`\n", p.UserID)
	}
	fmt.Fprintf(&b, "- **Season**: %s (`%s`)\n", p.Season.Name(), p.Season)
	writeVerdict(&b, p.Verdict)
	fmt.Fprintf(&b, "- **Skin**: %s (%s depth)\n", p.SkinTone, p.SkinDepth)
	fmt.Fprintf(&b, "- **Eyes / hair**: %s / %s, %s hair\n", p.EyeColor, p.HairColor, p.HairType)
	fmt.Fprintf(&b, "- **Contrast**: %s\n", p.Contrast)
	fmt.Fprintf(&b, "- **Style**: %s\n", p.StylePreference)

	if detail == DetailFull {
		b.WriteString("\n## Undertone indicators\n\n")
		b.WriteString("| Indicator | Value | Vote | Weight |\n|---|---|---|---|\n")
		for _, ind := range p.Indicators {
			fmt.Fprintf(&b, "| %s | %s | %s | %.2f |\n", ind.Kind, ind.Value, ind.Vote, ind.Weight)
		}
		a := p.Season.Archetype()
		fmt.Fprintf(&b, "\n## Archetype\n\n%s: %s undertone, %s depth, %s contrast.\n",
			a.Name, a.Warmth, a.Depth, a.Contrast)
		if !p.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "\nCreated %s, updated %s.\n",
				p.CreatedAt.Format("2006-01-02 15:04"), p.UpdatedAt.Format("2006-01-02 15:04"))
		}
	}
	return b.String()
}

// renderPalette renders a palette as markdown at the given detail level.
func renderPalette(p *colorimetry.Palette, detail string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## 🎨 %s palette for %s (%s)\n\n", title(string(p.Type)), p.Season.Name(), p.Event)

	if detail == DetailSummary {
		fmt.Fprintf(&b, "`%s` %s\n", p.ID, strings.Join(p.Hexes(), " "))
		return b.String()
	}

	b.WriteString("| Role | Color | Hex |\n|---|---|---|\n")
	for _, e := range p.Entries {
		fmt.Fprintf(&b, "| %s | %s | `%s` |\n", e.Role, e.Swatch.Name, e.Swatch.Hex)
	}
	fmt.Fprintf(&b, "\n- **Harmony**: %s\n", p.Harmony)
	fmt.Fprintf(&b, "- **Contrast ratio** (first two colors): %.2f:1\n", p.Contrast)
	fmt.Fprintf(&b, "- **Season of year**: %s\n", p.SeasonOfYear)
	if p.LowConfidence {
		b.WriteString("- ⚠️ Undertone confidence is low: favour the neutrals in this palette.\n")
	}
	if p.Relaxed {
		b.WriteString("- ℹ️ No neutral could be included without repeating a color.\n")
	}
	if len(p.Combinations) > 0 {
		b.WriteString("\n### Combinations\n\n")
		for _, c := range p.Combinations {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	if detail == DetailFull {
		b.WriteString("\n### Why these colors\n\n")
		for _, e := range p.Entries {
			fmt.Fprintf(&b, "- %s\n", e.Rationale)
		}
		if len(p.Tips) > 0 {
			b.WriteString("\n### Tips\n\n")
			for _, t := range p.Tips {
				fmt.Fprintf(&b, "- %s\n", t)
			}
		}
		if len(p.Adjustments) > 0 {
			fmt.Fprintf(&b, "\n### %s adjustments\n\n", title(string(p.SeasonOfYear)))
			for _, a := range p.Adjustments {
				fmt.Fprintf(&b, "- %s\n", a)
			}
		}
		fmt.Fprintf(&b, "\nPalette `%s`, generated %s.\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}
