// Package colorimetry implements personal color analysis: undertone and
// season classification, the swatch taxonomy, and harmony-based palette
// generation.
//
// The package holds no mutable state. The taxonomy and the season table are
// immutable after load, so every function is safe for concurrent use.
// Persistence of profiles and palette history lives in internal/profiles.
package colorimetry

import (
	"strings"
)

// normalizeToken lower-cases a vocabulary value and folds spaces and hyphens
// into underscores, so "Rose Gold", "rose-gold" and "rose_gold" all match.
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return stripAccents(s)
}

// stripAccents removes the Spanish diacritics users type in vocabulary
// values ("otoño", "clásico", "café").
func stripAccents(s string) string {
	return strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
	).Replace(s)
}

// lookup resolves a raw value against an alias table.
func lookup[T any](aliases map[string]T, raw string) (T, bool) {
	v, ok := aliases[normalizeToken(raw)]
	return v, ok
}

// --- Warmth ---

// Warmth is the cool/warm/neutral cast of a swatch or an undertone.
type Warmth string

const (
	Cool    Warmth = "cool"
	Warm    Warmth = "warm"
	Neutral Warmth = "neutral"
)

var warmthAliases = map[string]Warmth{
	"cool": Cool, "frio": Cool,
	"warm": Warm, "calido": Warm,
	"neutral": Neutral, "neutro": Neutral,
}

// ParseWarmth accepts English or Spanish warmth names.
func ParseWarmth(s string) (Warmth, error) {
	w, ok := lookup(warmthAliases, s)
	if !ok {
		return "", InvalidInput("unknown undertone %q: must be one of cool, warm, neutral", s)
	}
	return w, nil
}

// --- Depth ---

// Depth is the value (lightness) bucket of skin, and the depth preference
// of a season archetype.
type Depth string

const (
	Light  Depth = "light"
	Medium Depth = "medium"
	Deep   Depth = "deep"
)

var skinToneAliases = map[string]Depth{
	"light": Light, "clara": Light, "fair": Light, "palida": Light, "claro": Light,
	"medium": Medium, "media": Medium, "olive": Medium, "morena": Medium, "medio": Medium,
	"deep": Deep, "oscura": Deep, "dark": Deep, "oscuro": Deep, "negra": Deep,
}

// ParseSkinTone maps a skin tone description to its depth bucket.
func ParseSkinTone(s string) (Depth, error) {
	d, ok := lookup(skinToneAliases, s)
	if !ok {
		return "", InvalidInput("unknown skin_tone %q: must be one of light, medium, deep (clara, media, oscura)", s)
	}
	return d, nil
}

func (d Depth) level() int {
	switch d {
	case Light:
		return 0
	case Medium:
		return 1
	default:
		return 2
	}
}

// --- Contrast ---

// Contrast is the hair/eye versus skin contrast bucket.
type Contrast string

const (
	LowContrast    Contrast = "low"
	MediumContrast Contrast = "medium"
	HighContrast   Contrast = "high"
)

var contrastAliases = map[string]Contrast{
	"low": LowContrast, "bajo": LowContrast, "baja": LowContrast,
	"medium": MediumContrast, "medio": MediumContrast, "media": MediumContrast,
	"high": HighContrast, "alto": HighContrast, "alta": HighContrast,
}

// ParseContrast accepts low/medium/high or bajo/medio/alto.
func ParseContrast(s string) (Contrast, error) {
	c, ok := lookup(contrastAliases, s)
	if !ok {
		return "", InvalidInput("unknown contrast_level %q: must be one of low, medium, high", s)
	}
	return c, nil
}

func contrastFromLevel(n int) Contrast {
	switch {
	case n <= 0:
		return LowContrast
	case n == 1:
		return MediumContrast
	default:
		return HighContrast
	}
}

// --- Eyes and hair ---

// eyeAliases maps eye colors to canonical names; eyeLevels gives their
// value level (0 light .. 2 deep) for contrast estimation.
var eyeAliases = map[string]string{
	"blue": "blue", "azul": "blue",
	"green": "green", "verde": "green", "hazel": "green", "avellana": "green",
	"brown": "brown", "cafe": "brown", "marron": "brown",
	"grey": "grey", "gray": "grey", "gris": "grey",
	"black": "black", "negro": "black",
}

var eyeLevels = map[string]int{"blue": 0, "grey": 0, "green": 1, "brown": 1, "black": 2}

var hairAliases = map[string]string{
	"blonde": "blonde", "blond": "blonde", "rubio": "blonde",
	"brown": "brown", "castano": "brown", "brunette": "brown",
	"black": "black", "negro": "black",
	"red": "red", "rojo": "red", "pelirrojo": "red", "auburn": "red",
	"grey": "grey", "gray": "grey", "gris": "grey", "canoso": "grey", "white": "grey",
}

var hairLevels = map[string]int{"blonde": 0, "grey": 0, "red": 1, "brown": 1, "black": 2}

// ParseEyeColor canonicalises an eye color.
func ParseEyeColor(s string) (string, error) {
	v, ok := lookup(eyeAliases, s)
	if !ok {
		return "", InvalidInput("unknown eye_color %q: must be one of blue, green, brown, grey, black", s)
	}
	return v, nil
}

// ParseHairColor canonicalises a hair color.
func ParseHairColor(s string) (string, error) {
	v, ok := lookup(hairAliases, s)
	if !ok {
		return "", InvalidInput("unknown hair_color %q: must be one of blonde, brown, black, red, grey", s)
	}
	return v, nil
}

var hairTypeAliases = map[string]string{
	"straight": "straight", "liso": "straight",
	"wavy": "wavy", "ondulado": "wavy",
	"curly": "curly", "rizado": "curly", "coily": "curly",
}

// ParseHairType canonicalises a hair type; empty defaults to straight.
func ParseHairType(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "straight", nil
	}
	v, ok := lookup(hairTypeAliases, s)
	if !ok {
		return "", InvalidInput("unknown hair_type %q: must be one of straight, wavy, curly", s)
	}
	return v, nil
}

var styleAliases = map[string]string{
	"classic": "classic", "clasico": "classic",
	"modern": "modern", "moderno": "modern",
	"bohemian": "bohemian", "bohemio": "bohemian", "boho": "bohemian",
	"minimalist": "minimalist", "minimalista": "minimalist",
	"romantic": "romantic", "romantico": "romantic",
	"edgy": "edgy",
}

// ParseStyle canonicalises a style preference; empty defaults to classic.
func ParseStyle(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "classic", nil
	}
	v, ok := lookup(styleAliases, s)
	if !ok {
		return "", InvalidInput("unknown style_preference %q: must be one of classic, modern, bohemian, minimalist, romantic, edgy", s)
	}
	return v, nil
}

// --- Palette type ---

// PaletteType is the category a palette is generated for.
type PaletteType string

const (
	Clothing    PaletteType = "clothing"
	Makeup      PaletteType = "makeup"
	Accessories PaletteType = "accessories"
)

var paletteTypeAliases = map[string]PaletteType{
	"clothing": Clothing, "ropa": Clothing, "clothes": Clothing,
	"makeup": Makeup, "maquillaje": Makeup,
	"accessories": Accessories, "accesorios": Accessories,
}

// PaletteTypeValues returns the enum values for tool definitions.
func PaletteTypeValues() []string {
	return []string{string(Clothing), string(Makeup), string(Accessories)}
}

// ParsePaletteType accepts English or Spanish palette type names.
func ParsePaletteType(s string) (PaletteType, error) {
	t, ok := lookup(paletteTypeAliases, s)
	if !ok {
		return "", InvalidInput("unknown palette_type %q: must be one of clothing, makeup, accessories", s)
	}
	return t, nil
}

// --- Event ---

// Event is the occasion a palette is meant for.
type Event string

const (
	Casual  Event = "casual"
	Formal  Event = "formal"
	Fiesta  Event = "fiesta"
	Trabajo Event = "trabajo"
	Cita    Event = "cita"
	Deporte Event = "deporte"
	Viaje   Event = "viaje"
)

var eventAliases = map[string]Event{
	"casual": Casual,
	"formal": Formal, "gala": Formal,
	"fiesta": Fiesta, "party": Fiesta,
	"trabajo": Trabajo, "work": Trabajo, "office": Trabajo,
	"cita": Cita, "date": Cita,
	"deporte": Deporte, "sport": Deporte, "sports": Deporte, "gym": Deporte,
	"viaje": Viaje, "travel": Viaje,
}

// EventValues returns the enum values for tool definitions.
func EventValues() []string {
	return []string{string(Casual), string(Formal), string(Fiesta), string(Trabajo), string(Cita), string(Deporte), string(Viaje)}
}

// ParseEvent accepts Spanish or English event names; empty means casual.
func ParseEvent(s string) (Event, error) {
	if strings.TrimSpace(s) == "" {
		return Casual, nil
	}
	e, ok := lookup(eventAliases, s)
	if !ok {
		return "", InvalidInput("unknown event_type %q: must be one of %s", s, strings.Join(EventValues(), ", "))
	}
	return e, nil
}

// --- Season of year ---

// YearSeason is the calendar season a palette is generated for. It is not
// the same thing as a Season archetype.
type YearSeason string

const (
	Primavera YearSeason = "primavera"
	Verano    YearSeason = "verano"
	Otono     YearSeason = "otono"
	Invierno  YearSeason = "invierno"
)

var yearSeasonAliases = map[string]YearSeason{
	"primavera": Primavera, "spring": Primavera,
	"verano": Verano, "summer": Verano,
	"otono": Otono, "autumn": Otono, "fall": Otono,
	"invierno": Invierno, "winter": Invierno,
}

// YearSeasonValues returns the enum values for tool definitions.
func YearSeasonValues() []string {
	return []string{string(Primavera), string(Verano), string(Otono), string(Invierno)}
}

// ParseYearSeason accepts Spanish or English season names. Empty returns
// "" so the caller can derive the season from the clock.
func ParseYearSeason(s string) (YearSeason, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	y, ok := lookup(yearSeasonAliases, s)
	if !ok {
		return "", InvalidInput("unknown season_of_year %q: must be one of primavera, verano, otono, invierno", s)
	}
	return y, nil
}
