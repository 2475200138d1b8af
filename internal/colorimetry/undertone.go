package colorimetry

import (
	"fmt"
	"strings"
)

// IndicatorKind names one observable undertone signal.
type IndicatorKind string

const (
	IndicatorVein    IndicatorKind = "vein"
	IndicatorJewelry IndicatorKind = "jewelry"
	IndicatorSun     IndicatorKind = "sun"
	IndicatorLips    IndicatorKind = "lips"
	IndicatorStated  IndicatorKind = "stated"
)

const (
	// SingleIndicatorPenalty scales the confidence of a verdict backed by
	// a single indicator.
	SingleIndicatorPenalty = 0.5

	// LowConfidenceThreshold is the confidence below which a verdict is
	// flagged for callers to surface. It catches single indicators, ties and
	// three-way splits.
	LowConfidenceThreshold = 0.55

	// tieConfidence is reported when the top weight is shared.
	tieConfidence = 0.5
)

type indicatorSpec struct {
	weight float64
	votes  map[string]Warmth
}

var indicatorSpecs = map[IndicatorKind]indicatorSpec{
	IndicatorVein: {1.0, map[string]Warmth{
		"azul": Cool, "blue": Cool, "purple": Cool, "morado": Cool, "violeta": Cool,
		"verde": Warm, "green": Warm, "olive": Warm,
		"mixto": Neutral, "mixed": Neutral, "blue_green": Neutral, "azul_verde": Neutral, "ambos": Neutral, "both": Neutral,
	}},
	IndicatorJewelry: {1.0, map[string]Warmth{
		"plata": Cool, "silver": Cool, "platino": Cool, "platinum": Cool, "oro_blanco": Cool, "white_gold": Cool,
		"oro": Warm, "gold": Warm, "cobre": Warm, "copper": Warm, "bronce": Warm, "bronze": Warm,
		"oro_rosa": Neutral, "rose_gold": Neutral, "ambos": Neutral, "both": Neutral, "mixto": Neutral, "mixed": Neutral,
	}},
	IndicatorSun: {0.75, map[string]Warmth{
		"se_quema": Cool, "burns": Cool, "quema": Cool, "burn": Cool,
		"broncea_facil": Warm, "se_broncea": Warm, "tans": Warm, "tan": Warm, "broncea": Warm,
		"a_veces": Neutral, "sometimes": Neutral, "quema_y_broncea": Neutral, "burns_then_tans": Neutral,
	}},
	IndicatorLips: {0.5, map[string]Warmth{
		"rosado": Cool, "rosa": Cool, "pink": Cool, "berry": Cool,
		"durazno": Warm, "peach": Warm, "coral": Warm, "melocoton": Warm,
		"neutro": Neutral, "nude": Neutral, "neutral": Neutral,
	}},
	IndicatorStated: {1.0, map[string]Warmth{
		"frio": Cool, "cool": Cool,
		"calido": Warm, "warm": Warm,
		"neutro": Neutral, "neutral": Neutral,
	}},
}

// Indicator is one observed undertone signal with its vote and weight.
type Indicator struct {
	Kind   IndicatorKind `json:"kind"`
	Value  string        `json:"value"`
	Vote   Warmth        `json:"vote"`
	Weight float64       `json:"weight"`
}

func (i Indicator) String() string {
	return fmt.Sprintf("%s:%s(%s,w=%g)", i.Kind, i.Value, i.Vote, i.Weight)
}

// NewIndicator resolves a raw observation to its vote and fixed weight.
func NewIndicator(kind IndicatorKind, value string) (Indicator, error) {
	spec, ok := indicatorSpecs[kind]
	if !ok {
		return Indicator{}, InvalidInput("unknown indicator kind %q", kind)
	}
	key := normalizeToken(value)
	vote, ok := spec.votes[key]
	if !ok {
		return Indicator{}, InvalidInput("unknown %s value %q", kind, value)
	}
	return Indicator{Kind: kind, Value: key, Vote: vote, Weight: spec.weight}, nil
}

// IndicatorInput is the raw set of observations a caller may supply. Empty
// fields are skipped.
type IndicatorInput struct {
	VeinColor         string `json:"vein_color,omitempty"`
	JewelryPreference string `json:"jewelry_preference,omitempty"`
	SunReaction       string `json:"sun_reaction,omitempty"`
	NaturalLipColor   string `json:"natural_lip_color,omitempty"`
	StatedUndertone   string `json:"undertone,omitempty"`
}

// Indicators converts the non-empty observations into indicators. Unknown
// values fail with InvalidInput; an all-empty input returns no indicators
// and no error.
func (in IndicatorInput) Indicators() ([]Indicator, error) {
	fields := []struct {
		kind  IndicatorKind
		value string
	}{
		{IndicatorVein, in.VeinColor},
		{IndicatorJewelry, in.JewelryPreference},
		{IndicatorSun, in.SunReaction},
		{IndicatorLips, in.NaturalLipColor},
		{IndicatorStated, in.StatedUndertone},
	}

	var out []Indicator
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		ind, err := NewIndicator(f.kind, f.value)
		if err != nil {
			return nil, err
		}
		out = append(out, ind)
	}
	return out, nil
}

// Verdict is the outcome of undertone classification.
type Verdict struct {
	Undertone     Warmth  `json:"undertone"`
	Confidence    float64 `json:"confidence"`
	Indicators    int     `json:"indicators"`
	LowConfidence bool    `json:"low_confidence"`
}

// ClassifyUndertone tallies weighted votes and returns the majority warmth.
//
// Confidence is the winning weight over the total weight. A shared top
// weight resolves to neutral at 0.5. A single indicator has its confidence
// scaled by SingleIndicatorPenalty.
func ClassifyUndertone(indicators []Indicator) (Verdict, error) {
	if len(indicators) == 0 {
		return Verdict{}, InvalidInput("at least one undertone indicator is required")
	}

	tally := map[Warmth]float64{}
	var total float64
	for _, ind := range indicators {
		if ind.Weight <= 0 {
			return Verdict{}, InvalidInput("indicator %s has non-positive weight", ind.Kind)
		}
		if _, ok := warmthAliases[string(ind.Vote)]; !ok {
			return Verdict{}, InvalidInput("indicator %s has unknown vote %q", ind.Kind, ind.Vote)
		}
		tally[ind.Vote] += ind.Weight
		total += ind.Weight
	}

	var (
		best     Warmth
		bestW    float64
		tiedBest bool
	)
	for _, w := range []Warmth{Neutral, Cool, Warm} {
		switch {
		case tally[w] > bestW:
			best, bestW, tiedBest = w, tally[w], false
		case tally[w] == bestW && bestW > 0:
			tiedBest = true
		}
	}

	v := Verdict{Undertone: best, Confidence: bestW / total, Indicators: len(indicators)}
	if tiedBest {
		v.Undertone = Neutral
		v.Confidence = tieConfidence
	}
	if len(indicators) < 2 {
		v.Confidence *= SingleIndicatorPenalty
	}
	v.LowConfidence = v.Confidence < LowConfidenceThreshold
	return v, nil
}
