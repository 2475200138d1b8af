package colorimetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attributes is the raw description of a person, as supplied by a caller.
type Attributes struct {
	UserID          string `json:"user_id,omitempty"`
	Name            string `json:"name,omitempty"`
	SkinTone        string `json:"skin_tone"`
	EyeColor        string `json:"eye_color"`
	HairColor       string `json:"hair_color"`
	HairType        string `json:"hair_type,omitempty"`
	StylePreference string `json:"style_preference,omitempty"`
	ContrastLevel   string `json:"contrast_level,omitempty"`
	IndicatorInput
}

// Profile is a classified person.
type Profile struct {
	UserID          string      `json:"user_id"`
	Name            string      `json:"name,omitempty"`
	SkinTone        string      `json:"skin_tone"`
	SkinDepth       Depth       `json:"skin_depth"`
	Verdict         Verdict     `json:"verdict"`
	Indicators      []Indicator `json:"indicators"`
	EyeColor        string      `json:"eye_color"`
	HairColor       string      `json:"hair_color"`
	HairType        string      `json:"hair_type"`
	StylePreference string      `json:"style_preference"`
	Contrast        Contrast    `json:"contrast"`
	Season          Season      `json:"season"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Request asks for one palette. Either UserID names a stored profile or
// Overrides carries the attributes for a one-off palette.
type Request struct {
	UserID       string      `json:"user_id,omitempty"`
	Type         string      `json:"palette_type"`
	Event        string      `json:"event_type,omitempty"`
	SeasonOfYear string      `json:"season_of_year,omitempty"`
	Slots        int         `json:"slots,omitempty"`
	Overrides    *Attributes `json:"overrides,omitempty"`
}

// Entry is one role of a palette.
type Entry struct {
	Role      string `json:"role"`
	Swatch    Swatch `json:"swatch"`
	Rationale string `json:"rationale"`
}

// Palette is a generated recommendation. Entries never repeat a hex code.
type Palette struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id,omitempty"`
	Type          PaletteType `json:"palette_type"`
	Event         Event       `json:"event_type"`
	SeasonOfYear  YearSeason  `json:"season_of_year"`
	Season        Season      `json:"season"`
	Undertone     Warmth      `json:"undertone"`
	LowConfidence bool        `json:"low_confidence"`
	Entries       []Entry     `json:"entries"`
	Harmony       Harmony     `json:"harmony"`
	Contrast      float64     `json:"contrast"`
	Relaxed       bool        `json:"relaxed,omitempty"`
	Combinations  []string    `json:"combinations,omitempty"`
	Tips          []string    `json:"tips,omitempty"`
	Adjustments   []string    `json:"adjustments,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Hexes returns the entry hex codes in role order.
func (p *Palette) Hexes() []string {
	out := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Swatch.Hex
	}
	return out
}

var baseRoles = map[PaletteType][]string{
	Clothing:    {"primary", "secondary", "accent"},
	Makeup:      {"base", "eyes", "lips", "cheeks"},
	Accessories: {"jewelry", "bags", "shoes"},
}

// Roles returns the role names for a palette type. slots <= 0 yields the
// default roles; more slots than roles appends numbered copies of the last
// role ("accent 2", "accent 3"); fewer truncates.
func Roles(pt PaletteType, slots int) []string {
	base := baseRoles[pt]
	if slots <= 0 {
		return append([]string(nil), base...)
	}
	if slots <= len(base) {
		return append([]string(nil), base[:slots]...)
	}
	out := append([]string(nil), base...)
	last := base[len(base)-1]
	for n := 2; len(out) < slots; n++ {
		out = append(out, last+" "+strconv.Itoa(n))
	}
	return out
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// WithLowConfidenceThreshold overrides LowConfidenceThreshold.
func WithLowConfidenceThreshold(th float64) GeneratorOption {
	return func(g *Generator) { g.threshold = th }
}

// WithIDSource overrides the palette ID generator.
func WithIDSource(fn func() string) GeneratorOption {
	return func(g *Generator) { g.newID = fn }
}

// Generator turns profiles and requests into palettes. It holds no
// per-request state.
type Generator struct {
	engine    *Engine
	now       func() time.Time
	threshold float64
	newID     func() string
}

func NewGenerator(engine *Engine, opts ...GeneratorOption) *Generator {
	g := &Generator{
		engine:    engine,
		now:       time.Now,
		threshold: LowConfidenceThreshold,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Engine returns the harmony engine behind the generator.
func (g *Generator) Engine() *Engine { return g.engine }

// Profile classifies attributes into a profile stamped with the current
// time. It does not persist anything.
func (g *Generator) Profile(a Attributes) (*Profile, error) {
	p, err := BuildProfile(a, g.now().UTC())
	if err != nil {
		return nil, err
	}
	p.Verdict.LowConfidence = p.Verdict.Confidence < g.threshold
	return p, nil
}

// BuildProfile validates attributes and runs undertone and season
// classification.
func BuildProfile(a Attributes, now time.Time) (*Profile, error) {
	required := []struct{ field, value string }{
		{"skin_tone", a.SkinTone},
		{"eye_color", a.EyeColor},
		{"hair_color", a.HairColor},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, InvalidInput("%s is required", r.field)
		}
	}

	depth, err := ParseSkinTone(a.SkinTone)
	if err != nil {
		return nil, err
	}
	eye, err := ParseEyeColor(a.EyeColor)
	if err != nil {
		return nil, err
	}
	hair, err := ParseHairColor(a.HairColor)
	if err != nil {
		return nil, err
	}
	hairType, err := ParseHairType(a.HairType)
	if err != nil {
		return nil, err
	}
	style, err := ParseStyle(a.StylePreference)
	if err != nil {
		return nil, err
	}

	indicators, err := a.Indicators()
	if err != nil {
		return nil, err
	}
	verdict, err := ClassifyUndertone(indicators)
	if err != nil {
		return nil, err
	}

	var contrast Contrast
	if strings.TrimSpace(a.ContrastLevel) != "" {
		if contrast, err = ParseContrast(a.ContrastLevel); err != nil {
			return nil, err
		}
	} else {
		contrast = EstimateContrast(depth, hair, eye)
	}

	return &Profile{
		UserID:          strings.TrimSpace(a.UserID),
		Name:            strings.TrimSpace(a.Name),
		SkinTone:        normalizeToken(a.SkinTone),
		SkinDepth:       depth,
		Verdict:         verdict,
		Indicators:      indicators,
		EyeColor:        eye,
		HairColor:       hair,
		HairType:        hairType,
		StylePreference: style,
		Contrast:        contrast,
		Season:          ClassifySeason(verdict, depth, contrast),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Generate builds a palette for profile, or for req.Overrides when profile
// is nil. The result is not persisted. A palette built from Overrides has
// no UserID.
func (g *Generator) Generate(profile *Profile, req Request) (*Palette, error) {
	pt, err := ParsePaletteType(req.Type)
	if err != nil {
		return nil, err
	}
	event, err := ParseEvent(req.Event)
	if err != nil {
		return nil, err
	}
	ys, err := ParseYearSeason(req.SeasonOfYear)
	if err != nil {
		return nil, err
	}
	now := g.now().UTC()
	if ys == "" {
		ys = YearSeasonFor(now)
	}
	if req.Slots < 0 {
		return nil, InsufficientPalette("slots must be positive, got %d", req.Slots)
	}

	quick := profile == nil
	if quick {
		if req.Overrides == nil {
			return nil, InvalidInput("either user_id or quick-mode attributes are required")
		}
		if profile, err = g.Profile(*req.Overrides); err != nil {
			return nil, err
		}
	}

	// Roles allocates one name per slot, so bound slots by the catalogue
	// before building them.
	if n := g.engine.Taxonomy().Len(); req.Slots > n {
		return nil, InsufficientPalette("%d slots requested, the catalogue holds %d swatches", req.Slots, n)
	}

	roles := Roles(pt, req.Slots)
	sel, err := g.engine.Select(profile.Season, pt, len(roles), Modifier{Event: event, SeasonOfYear: ys})
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(roles))
	for i, role := range roles {
		sw := sel.Swatches[i]
		entries[i] = Entry{
			Role:   role,
			Swatch: sw,
			Rationale: fmt.Sprintf("%s: %s %s suits %s (%s undertone) for a %s occasion",
				role, sw.Name, sw.Hex, profile.Season.Name(), profile.Verdict.Undertone, event),
		}
	}

	contrast := 1.0
	if len(sel.Swatches) >= 2 {
		contrast = math.Round(ContrastRatio(sel.Swatches[0], sel.Swatches[1])*100) / 100
	}

	userID := profile.UserID
	if quick {
		userID = ""
	}

	return &Palette{
		ID:            g.newID(),
		UserID:        userID,
		Type:          pt,
		Event:         event,
		SeasonOfYear:  ys,
		Season:        profile.Season,
		Undertone:     profile.Verdict.Undertone,
		LowConfidence: profile.Verdict.LowConfidence,
		Entries:       entries,
		Harmony:       ClassifyHarmony(sel.Swatches),
		Contrast:      contrast,
		Relaxed:       sel.Relaxed,
		Combinations:  Combinations(pt, entries),
		Tips:          Tips(profile, pt, event),
		Adjustments:   Adjustments(ys),
		CreatedAt:     now,
	}, nil
}
