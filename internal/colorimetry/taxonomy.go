package colorimetry

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed swatches.yaml
var defaultSwatches []byte

// Swatch is one named color of the taxonomy.
type Swatch struct {
	Name    string        `json:"name" yaml:"name"`
	Hex     string        `json:"hex" yaml:"hex"`
	Warmth  Warmth        `json:"warmth" yaml:"warmth"`
	Seasons []Season      `json:"seasons" yaml:"seasons"`
	Uses    []PaletteType `json:"uses,omitempty" yaml:"uses,omitempty"`

	// HSL coordinates, filled in by NewTaxonomy.
	hsl    [3]float64
	hasHSL bool
}

// HSL returns hue in degrees [0,360) and saturation and lightness in [0,1].
// Swatches built outside a Taxonomy (e.g. decoded from storage) compute it
// on demand; an unparseable hex yields zeros.
func (s Swatch) HSL() (h, sat, l float64) {
	if s.hasHSL {
		return s.hsl[0], s.hsl[1], s.hsl[2]
	}
	c, err := colorful.Hex(s.Hex)
	if err != nil {
		return 0, 0, 0
	}
	return c.Hsl()
}

// TaggedFor reports whether the swatch carries the season tag.
func (s Swatch) TaggedFor(season Season) bool {
	for _, t := range s.Seasons {
		if t == season {
			return true
		}
	}
	return false
}

// UsableFor reports whether the swatch may appear in a palette of type t.
func (s Swatch) UsableFor(t PaletteType) bool {
	if len(s.Uses) == 0 {
		return true
	}
	for _, u := range s.Uses {
		if u == t {
			return true
		}
	}
	return false
}

// Taxonomy is the immutable, validated set of swatches in declaration order.
type Taxonomy struct {
	swatches []Swatch
	byName   map[string]int
}

// NewTaxonomy validates and canonicalises swatches. Hex codes are stored
// upper-case; warmth, season and use values may be given by alias.
func NewTaxonomy(swatches []Swatch) (*Taxonomy, error) {
	if len(swatches) == 0 {
		return nil, fmt.Errorf("taxonomy: no swatches")
	}

	t := &Taxonomy{
		swatches: make([]Swatch, 0, len(swatches)),
		byName:   make(map[string]int, len(swatches)),
	}
	hexes := make(map[string]string, len(swatches))

	for i, raw := range swatches {
		sw, err := canonicalSwatch(raw)
		if err != nil {
			return nil, fmt.Errorf("taxonomy: swatch %d: %w", i, err)
		}
		key := strings.ToLower(sw.Name)
		if _, dup := t.byName[key]; dup {
			return nil, fmt.Errorf("taxonomy: duplicate swatch name %q", sw.Name)
		}
		if other, dup := hexes[sw.Hex]; dup {
			return nil, fmt.Errorf("taxonomy: %q and %q share hex %s", other, sw.Name, sw.Hex)
		}
		hexes[sw.Hex] = sw.Name
		t.byName[key] = len(t.swatches)
		t.swatches = append(t.swatches, sw)
	}
	return t, nil
}

func canonicalSwatch(raw Swatch) (Swatch, error) {
	sw := Swatch{Name: strings.TrimSpace(raw.Name)}
	if sw.Name == "" {
		return Swatch{}, fmt.Errorf("empty name")
	}

	hex := strings.TrimSpace(raw.Hex)
	if len(hex) != 7 || hex[0] != '#' {
		return Swatch{}, fmt.Errorf("%s: hex %q must be #RRGGBB", sw.Name, raw.Hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Swatch{}, fmt.Errorf("%s: hex %q: %w", sw.Name, raw.Hex, err)
	}
	sw.Hex = strings.ToUpper(hex)
	h, s, l := c.Hsl()
	sw.hsl = [3]float64{h, s, l}
	sw.hasHSL = true

	w, ok := lookup(warmthAliases, string(raw.Warmth))
	if !ok {
		return Swatch{}, fmt.Errorf("%s: unknown warmth %q", sw.Name, raw.Warmth)
	}
	sw.Warmth = w

	if len(raw.Seasons) == 0 {
		return Swatch{}, fmt.Errorf("%s: no season tags", sw.Name)
	}
	for _, tag := range raw.Seasons {
		season, err := ParseSeason(string(tag))
		if err != nil {
			return Swatch{}, fmt.Errorf("%s: %w", sw.Name, err)
		}
		sw.Seasons = append(sw.Seasons, season)
	}

	for _, use := range raw.Uses {
		pt, ok := lookup(paletteTypeAliases, string(use))
		if !ok {
			return Swatch{}, fmt.Errorf("%s: unknown use %q", sw.Name, use)
		}
		sw.Uses = append(sw.Uses, pt)
	}
	return sw, nil
}

// ParseTaxonomy decodes a YAML document with a top-level "swatches" list.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var doc struct {
		Swatches []Swatch `yaml:"swatches"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("taxonomy: parse: %w", err)
	}
	return NewTaxonomy(doc.Swatches)
}

var loadDefault = sync.OnceValues(func() (*Taxonomy, error) {
	return ParseTaxonomy(defaultSwatches)
})

// LoadDefault returns the embedded taxonomy. It is parsed once.
func LoadDefault() (*Taxonomy, error) { return loadDefault() }

// Swatches returns a copy of the swatches in declaration order.
func (t *Taxonomy) Swatches() []Swatch {
	out := make([]Swatch, len(t.swatches))
	copy(out, t.swatches)
	return out
}

// Len returns the number of swatches.
func (t *Taxonomy) Len() int { return len(t.swatches) }

// Lookup finds a swatch by name, case-insensitively.
func (t *Taxonomy) Lookup(name string) (Swatch, bool) {
	i, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Swatch{}, false
	}
	return t.swatches[i], true
}

// pool returns the swatches eligible for a season and palette type, paired
// with their declaration index.
func (t *Taxonomy) pool(season Season, pt PaletteType) []candidate {
	var out []candidate
	for i, sw := range t.swatches {
		if !sw.UsableFor(pt) {
			continue
		}
		if !sw.TaggedFor(season) && sw.Warmth != Neutral {
			continue
		}
		out = append(out, candidate{swatch: sw, order: i})
	}
	return out
}
