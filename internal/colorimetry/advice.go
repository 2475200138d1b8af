package colorimetry

import (
	"fmt"
	"strings"
)

var eventStylingTips = map[Event][]string{
	Formal:  {"Choose clean lines and solid colors", "Avoid loud prints"},
	Casual:  {"Experiment with textures and layers", "Accessories can be more relaxed"},
	Fiesta:  {"Time to shine with vibrant colors", "Consider textured or shimmering fabrics"},
	Trabajo: {"Keep the brightest color to a single piece"},
	Cita:    {"Wear your most flattering color near the face"},
	Deporte: {"Pair one bright color with a neutral base"},
	Viaje:   {"Pick pieces that mix and match around one neutral"},
}

var styleTips = map[string]string{
	"minimalist": "Keep the palette simple, two or three colors at most",
	"bohemian":   "Mix natural textures with earthy colors",
	"romantic":   "Soften the look with flowing fabrics in the lighter shades",
	"edgy":       "Anchor the palette with the deepest neutral",
}

var eyeMakeupTips = map[string]string{
	"blue":  "Orange and copper tones make blue eyes stand out",
	"green": "Reddish and purple tones make green eyes stand out",
	"brown": "Almost every color works with brown eyes",
	"grey":  "Smoky charcoal and plum deepen grey eyes",
	"black": "Jewel tones add definition to dark eyes",
}

var eventMakeupTips = map[Event]string{
	Trabajo: "Keep makeup professional and subtle",
	Fiesta:  "You can be bolder with intense colors",
	Cita:    "Let either the eyes or the lips lead, not both",
	Deporte: "Use long-wear, lightweight formulas",
}

var metalTips = map[Warmth]string{
	Warm:    "Choose gold metals to complement your undertone",
	Cool:    "Silver metals will enhance your cool undertone",
	Neutral: "You can mix gold and silver metals",
}

var seasonalAdjustments = map[YearSeason][]string{
	Verano:    {"Consider lighter versions of these colors", "Add whites and pastels for freshness"},
	Invierno:  {"Deepen these tones for the season", "Bring in rich textures and intense colors"},
	Primavera: {"Brighten the palette with more vibrant tones", "Add touches of fresh colors"},
	Otono:     {"Lean on earth and spice tones", "Layer warm textures like suede and knit"},
}

// Tips returns styling, makeup and coordination advice for a palette.
func Tips(p *Profile, pt PaletteType, ev Event) []string {
	var tips []string
	switch pt {
	case Clothing:
		tips = append(tips, eventStylingTips[ev]...)
		if t, ok := styleTips[p.StylePreference]; ok {
			tips = append(tips, t)
		}
	case Makeup:
		if t, ok := eyeMakeupTips[p.EyeColor]; ok {
			tips = append(tips, t)
		}
		if t, ok := eventMakeupTips[ev]; ok {
			tips = append(tips, t)
		}
	case Accessories:
		tips = append(tips,
			metalTips[p.Verdict.Undertone],
			"Coordinate bag and shoes in complementary tones",
			"One statement accessory can be the focal point",
		)
	}
	if p.Verdict.LowConfidence {
		tips = append(tips, "Undertone confidence is low: try the neutrals first and add more indicators to refine")
	}
	return tips
}

// Adjustments returns the season-of-year adjustments.
func Adjustments(ys YearSeason) []string {
	return append([]string(nil), seasonalAdjustments[ys]...)
}

// maxCombinations caps the outfits, looks or sets suggested per palette.
const maxCombinations = 3

type comboPart struct {
	role  string
	label string
}

var comboPrefix = map[PaletteType]string{
	Clothing:    "Outfit",
	Makeup:      "Look",
	Accessories: "Set",
}

var comboParts = map[PaletteType][]comboPart{
	Clothing:    {{"primary", "top"}, {"secondary", "bottom"}, {"accent", "accent"}},
	Makeup:      {{"eyes", "eyes"}, {"lips", "lips"}, {"cheeks", "cheeks"}},
	Accessories: {{"jewelry", "jewelry"}, {"bags", "bag"}, {"shoes", "shoes"}},
}

// Combinations pairs the palette entries into ready-to-wear suggestions:
// outfits for clothing, looks for makeup and sets for accessories.
// Numbered extra roles ("accent 2") rotate through the suggestions. Fewer
// than two filled parts yields nothing.
func Combinations(pt PaletteType, entries []Entry) []string {
	byRole := map[string][]string{}
	for _, e := range entries {
		role, _, _ := strings.Cut(e.Role, " ")
		byRole[role] = append(byRole[role], e.Swatch.Name)
	}

	var parts []comboPart
	n := 0
	for _, p := range comboParts[pt] {
		if names := byRole[p.role]; len(names) > 0 {
			parts = append(parts, p)
			n = max(n, len(names))
		}
	}
	if len(parts) < 2 {
		return nil
	}
	n = min(n, maxCombinations)

	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pieces := make([]string, len(parts))
		for j, p := range parts {
			names := byRole[p.role]
			pieces[j] = names[i%len(names)] + " " + p.label
		}
		out = append(out, fmt.Sprintf("%s %d: %s", comboPrefix[pt], i+1, strings.Join(pieces, " + ")))
	}
	return out
}
