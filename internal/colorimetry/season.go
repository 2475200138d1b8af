package colorimetry

import "fmt"

// Season is one of the eight color-season archetypes.
type Season string

const (
	LightSpring Season = "light-spring"
	WarmSpring  Season = "warm-spring"
	SoftAutumn  Season = "soft-autumn"
	DeepAutumn  Season = "deep-autumn"
	LightSummer Season = "light-summer"
	SoftSummer  Season = "soft-summer"
	CoolWinter  Season = "cool-winter"
	DeepWinter  Season = "deep-winter"
)

// Archetype describes a Season's preferences.
type Archetype struct {
	Season   Season   `json:"season"`
	Name     string   `json:"name"`
	Warmth   Warmth   `json:"warmth"`
	Depth    Depth    `json:"depth"`
	Contrast Contrast `json:"contrast"`
}

// archetypes is listed in canonical order; Seasons() returns it.
var archetypes = []Archetype{
	{LightSpring, "Light Spring", Warm, Light, MediumContrast},
	{WarmSpring, "Warm Spring", Warm, Medium, MediumContrast},
	{SoftAutumn, "Soft Autumn", Warm, Medium, LowContrast},
	{DeepAutumn, "Deep Autumn", Warm, Deep, HighContrast},
	{LightSummer, "Light Summer", Cool, Light, LowContrast},
	{SoftSummer, "Soft Summer", Cool, Medium, LowContrast},
	{CoolWinter, "Cool Winter", Cool, Medium, HighContrast},
	{DeepWinter, "Deep Winter", Cool, Deep, HighContrast},
}

var archetypeBySeason = func() map[Season]Archetype {
	m := make(map[Season]Archetype, len(archetypes))
	for _, a := range archetypes {
		m[a.Season] = a
	}
	return m
}()

// Seasons returns all archetypes in canonical order.
func Seasons() []Archetype {
	out := make([]Archetype, len(archetypes))
	copy(out, archetypes)
	return out
}

// Archetype returns the descriptor of s. The zero Archetype is returned for
// unknown seasons.
func (s Season) Archetype() Archetype { return archetypeBySeason[s] }

// Name returns the display name, e.g. "Warm Spring".
func (s Season) Name() string {
	if a, ok := archetypeBySeason[s]; ok {
		return a.Name
	}
	return string(s)
}

// Valid reports whether s is one of the eight archetypes.
func (s Season) Valid() bool {
	_, ok := archetypeBySeason[s]
	return ok
}

// ParseSeason accepts a slug ("warm-spring") or display name ("Warm Spring").
func ParseSeason(s string) (Season, error) {
	key := normalizeToken(s)
	for _, a := range archetypes {
		if normalizeToken(string(a.Season)) == key || normalizeToken(a.Name) == key {
			return a.Season, nil
		}
	}
	return "", fmt.Errorf("unknown season %q", s)
}

var (
	warmthOrder   = [3]Warmth{Warm, Cool, Neutral}
	depthOrder    = [3]Depth{Light, Medium, Deep}
	contrastOrder = [3]Contrast{LowContrast, MediumContrast, HighContrast}
)

// seasonTable is indexed [undertone][depth][contrast] using warmthOrder,
// depthOrder and contrastOrder. It is total: every one of the 27 cells
// holds an archetype. Changing a cell changes every stored classification,
// so treat it as a frozen contract.
var seasonTable = [3][3][3]Season{
	// warm
	{
		{LightSpring, LightSpring, WarmSpring}, // light
		{SoftAutumn, WarmSpring, WarmSpring},   // medium
		{SoftAutumn, DeepAutumn, DeepAutumn},   // deep
	},
	// cool
	{
		{LightSummer, LightSummer, CoolWinter}, // light
		{SoftSummer, SoftSummer, CoolWinter},   // medium
		{SoftSummer, DeepWinter, DeepWinter},   // deep
	},
	// neutral
	{
		{LightSummer, LightSpring, CoolWinter}, // light
		{SoftSummer, SoftAutumn, CoolWinter},   // medium
		{SoftAutumn, DeepAutumn, DeepWinter},   // deep
	},
}

func indexOf[T comparable](order [3]T, v T) int {
	for i, o := range order {
		if o == v {
			return i
		}
	}
	return -1
}

// ClassifySeason maps (undertone, depth, contrast) to an archetype through
// the season table. Unrecognised buckets fall back to the middle bucket so
// the mapping never fails; low confidence stays on the verdict for callers
// to surface.
func ClassifySeason(v Verdict, depth Depth, contrast Contrast) Season {
	w := indexOf(warmthOrder, v.Undertone)
	if w < 0 {
		w = indexOf(warmthOrder, Neutral)
	}
	d := indexOf(depthOrder, depth)
	if d < 0 {
		d = 1
	}
	c := indexOf(contrastOrder, contrast)
	if c < 0 {
		c = 1
	}
	return seasonTable[w][d][c]
}

// TableEntry is one cell of the season table.
type TableEntry struct {
	Undertone Warmth   `json:"undertone"`
	Depth     Depth    `json:"depth"`
	Contrast  Contrast `json:"contrast"`
	Season    Season   `json:"season"`
	Name      string   `json:"name"`
}

// SeasonTable returns all 27 cells in undertone, depth, contrast order.
func SeasonTable() []TableEntry {
	out := make([]TableEntry, 0, 27)
	for wi, w := range warmthOrder {
		for di, d := range depthOrder {
			for ci, c := range contrastOrder {
				s := seasonTable[wi][di][ci]
				out = append(out, TableEntry{Undertone: w, Depth: d, Contrast: c, Season: s, Name: s.Name()})
			}
		}
	}
	return out
}

// EstimateContrast derives the contrast bucket from how far hair and eye
// value levels sit from the skin depth. Unknown colors count as medium.
func EstimateContrast(skin Depth, hairColor, eyeColor string) Contrast {
	skinLevel := skin.level()
	hair, ok := hairLevels[hairColor]
	if !ok {
		hair = 1
	}
	eye, ok := eyeLevels[eyeColor]
	if !ok {
		eye = 1
	}
	return contrastFromLevel(max(abs(hair-skinLevel), abs(eye-skinLevel)))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
