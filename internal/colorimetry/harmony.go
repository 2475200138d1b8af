package colorimetry

import (
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Maria-Villafuerte/MCP/internal/logger"
)

// Harmony labels the hue relationship inside a palette.
type Harmony string

const (
	Analogous       Harmony = "analogous"
	Complementary   Harmony = "complementary"
	Triadic         Harmony = "triadic"
	Varied          Harmony = "varied"
	NeutralBalanced Harmony = "neutral-balanced"
)

// Selection is the outcome of one harmony query.
type Selection struct {
	Swatches []Swatch
	// Relaxed is set when the neutral rule could not be satisfied.
	Relaxed bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for relaxation warnings.
func WithLogger(l *logger.Logger) EngineOption {
	return func(e *Engine) { e.log = l }
}

// WithRelaxationHook registers a callback fired each time the neutral rule
// is relaxed.
func WithRelaxationHook(fn func(Season, PaletteType)) EngineOption {
	return func(e *Engine) { e.onRelax = fn }
}

// Engine selects harmonious swatches from a taxonomy. It is stateless past
// construction and safe for concurrent use.
type Engine struct {
	taxonomy *Taxonomy
	log      *logger.Logger
	onRelax  func(Season, PaletteType)
}

// NewEngine builds an engine over tax.
func NewEngine(tax *Taxonomy, opts ...EngineOption) *Engine {
	e := &Engine{taxonomy: tax, log: logger.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Taxonomy returns the taxonomy the engine selects from.
func (e *Engine) Taxonomy() *Taxonomy { return e.taxonomy }

type candidate struct {
	swatch Swatch
	order  int
	tagged int
	warmth int
	score  float64
}

func warmthCompatibility(target, w Warmth) int {
	switch {
	case w == target:
		return 2
	case w == Neutral:
		return 1
	default:
		return 0
	}
}

// compareCandidates orders by season tag, warmth compatibility, modifier
// score (all descending) and finally declaration order.
func compareCandidates(a, b candidate) int {
	if a.tagged != b.tagged {
		return b.tagged - a.tagged
	}
	if a.warmth != b.warmth {
		return b.warmth - a.warmth
	}
	if a.score != b.score {
		if a.score > b.score {
			return -1
		}
		return 1
	}
	return a.order - b.order
}

// Select returns the top slots swatches for season and palette type.
//
// When slots > 1 the selection holds at least one neutral: if the ranked
// head has none, the last pick is swapped for the best-ranked neutral. If
// the pool has no neutral to offer, the rule is relaxed and reported on the
// Selection rather than failing.
func (e *Engine) Select(season Season, pt PaletteType, slots int, mod Modifier) (Selection, error) {
	if slots < 1 {
		return Selection{}, InsufficientPalette("at least one slot is required, got %d", slots)
	}
	if !season.Valid() {
		return Selection{}, InvalidInput("unknown season %q", season)
	}

	target := season.Archetype().Warmth
	pool := e.taxonomy.pool(season, pt)
	for i := range pool {
		c := &pool[i]
		if c.swatch.TaggedFor(season) {
			c.tagged = 1
		}
		c.warmth = warmthCompatibility(target, c.swatch.Warmth)
		c.score = mod.Score(c.swatch)
	}
	slices.SortStableFunc(pool, compareCandidates)

	ranked := make([]Swatch, 0, len(pool))
	seen := make(map[string]bool, len(pool))
	for _, c := range pool {
		if seen[c.swatch.Hex] {
			continue
		}
		seen[c.swatch.Hex] = true
		ranked = append(ranked, c.swatch)
	}
	if len(ranked) < slots {
		return Selection{}, InsufficientPalette(
			"%s has %d %s swatches, %d requested", season.Name(), len(ranked), pt, slots)
	}

	sel := Selection{Swatches: slices.Clone(ranked[:slots])}
	if slots > 1 && !hasNeutral(sel.Swatches) {
		idx := slices.IndexFunc(ranked[slots:], func(s Swatch) bool { return s.Warmth == Neutral })
		if idx >= 0 {
			sel.Swatches[slots-1] = ranked[slots+idx]
		} else {
			sel.Relaxed = true
			e.log.Warn("neutral rule relaxed: no neutral swatch available",
				"season", season, "palette_type", pt, "slots", slots)
			if e.onRelax != nil {
				e.onRelax(season, pt)
			}
		}
	}
	return sel, nil
}

func hasNeutral(swatches []Swatch) bool {
	for _, s := range swatches {
		if s.Warmth == Neutral {
			return true
		}
	}
	return false
}

const (
	chromaMinSaturation = 0.15
	chromaMinLightness  = 0.08
	chromaMaxLightness  = 0.95
)

func chromatic(s Swatch) (hue float64, ok bool) {
	h, sat, l := s.HSL()
	if sat < chromaMinSaturation || l < chromaMinLightness || l > chromaMaxLightness {
		return 0, false
	}
	return h, true
}

// HueDistance is the shortest arc between two hues, in degrees [0,180].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// ClassifyHarmony labels a selection by the mean hue distance between
// consecutive chromatic swatches. Near-greys, near-blacks and near-whites
// do not count; with fewer than two chromatic swatches the palette is
// neutral-balanced.
func ClassifyHarmony(swatches []Swatch) Harmony {
	var hues []float64
	for _, s := range swatches {
		if h, ok := chromatic(s); ok {
			hues = append(hues, h)
		}
	}
	if len(hues) < 2 {
		return NeutralBalanced
	}

	var total float64
	for i := 1; i < len(hues); i++ {
		total += HueDistance(hues[i-1], hues[i])
	}
	mean := total / float64(len(hues)-1)

	switch {
	case mean < 60:
		return Analogous
	case mean >= 150:
		return Complementary
	case mean >= 90:
		return Triadic
	default:
		return Varied
	}
}

// ContrastRatio returns the WCAG 2.0 contrast ratio of two swatches, from 1
// (identical luminance) to 21 (black on white).
func ContrastRatio(a, b Swatch) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func luminance(s Swatch) float64 {
	c, err := colorful.Hex(s.Hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
