package colorimetry_test

import (
	"errors"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

func mustIndicators(t *testing.T, in colorimetry.IndicatorInput) []colorimetry.Indicator {
	t.Helper()
	inds, err := in.Indicators()
	if err != nil {
		t.Fatalf("Indicators() error = %v", err)
	}
	return inds
}

func TestClassifyUndertone(t *testing.T) {
	convey.Convey("Given undertone indicators", t, func() {
		convey.Convey("When vein is blue and jewelry is silver", func() {
			v, err := colorimetry.ClassifyUndertone(mustIndicators(t, colorimetry.IndicatorInput{
				VeinColor: "blue", JewelryPreference: "silver",
			}))

			convey.Convey("Then the verdict is cool with full confidence", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v.Undertone, convey.ShouldEqual, colorimetry.Cool)
				convey.So(v.Confidence, convey.ShouldEqual, 1.0)
				convey.So(v.Indicators, convey.ShouldEqual, 2)
				convey.So(v.LowConfidence, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When a single indicator is given", func() {
			v, err := colorimetry.ClassifyUndertone(mustIndicators(t, colorimetry.IndicatorInput{VeinColor: "verde"}))

			convey.Convey("Then confidence is halved and flagged low", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v.Undertone, convey.ShouldEqual, colorimetry.Warm)
				convey.So(v.Confidence, convey.ShouldEqual, 0.5)
				convey.So(v.LowConfidence, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When cool and warm carry equal weight", func() {
			v, err := colorimetry.ClassifyUndertone(mustIndicators(t, colorimetry.IndicatorInput{
				VeinColor: "azul", JewelryPreference: "oro",
			}))

			convey.Convey("Then neutral wins the tie at 0.5", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v.Undertone, convey.ShouldEqual, colorimetry.Neutral)
				convey.So(v.Confidence, convey.ShouldEqual, 0.5)
			})
		})

		convey.Convey("When weights disagree unevenly", func() {
			v, err := colorimetry.ClassifyUndertone(mustIndicators(t, colorimetry.IndicatorInput{
				VeinColor: "blue", SunReaction: "tans",
			}))

			convey.Convey("Then the heavier side wins with its weight share", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v.Undertone, convey.ShouldEqual, colorimetry.Cool)
				convey.So(v.Confidence, convey.ShouldAlmostEqual, 1.0/1.75, 1e-9)
				convey.So(v.LowConfidence, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When all five indicators split three ways", func() {
			v, err := colorimetry.ClassifyUndertone(mustIndicators(t, colorimetry.IndicatorInput{
				VeinColor:         "azul",
				NaturalLipColor:   "rosado",
				JewelryPreference: "oro",
				SunReaction:       "broncea_facil",
				StatedUndertone:   "neutro",
			}))

			convey.Convey("Then warm wins with low confidence", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(v.Undertone, convey.ShouldEqual, colorimetry.Warm)
				convey.So(v.Confidence, convey.ShouldAlmostEqual, 1.75/4.25, 1e-9)
				convey.So(v.LowConfidence, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When no indicator is given", func() {
			_, err := colorimetry.ClassifyUndertone(nil)

			convey.Convey("Then it is invalid input", func() {
				convey.So(errors.Is(err, colorimetry.ErrInvalidInput), convey.ShouldBeTrue)
			})
		})
	})
}

func TestClassifyUndertone_Properties(t *testing.T) {
	values := map[colorimetry.IndicatorKind][]string{
		colorimetry.IndicatorVein:    {"azul", "verde", "mixto"},
		colorimetry.IndicatorJewelry: {"plata", "oro", "ambos"},
		colorimetry.IndicatorSun:     {"se_quema", "broncea_facil", "a_veces"},
		colorimetry.IndicatorLips:    {"rosado", "durazno", "nude"},
	}

	convey.Convey("Given every combination of vein and jewelry plus one more kind", t, func() {
		for _, vein := range values[colorimetry.IndicatorVein] {
			for _, jewelry := range values[colorimetry.IndicatorJewelry] {
				for _, kind := range []colorimetry.IndicatorKind{colorimetry.IndicatorSun, colorimetry.IndicatorLips} {
					for _, extra := range values[kind] {
						var inds []colorimetry.Indicator
						for _, p := range [][2]string{{string(colorimetry.IndicatorVein), vein}, {string(colorimetry.IndicatorJewelry), jewelry}, {string(kind), extra}} {
							ind, err := colorimetry.NewIndicator(colorimetry.IndicatorKind(p[0]), p[1])
							convey.So(err, convey.ShouldBeNil)
							inds = append(inds, ind)
						}
						v, err := colorimetry.ClassifyUndertone(inds)
						convey.So(err, convey.ShouldBeNil)
						convey.So(v.Confidence, convey.ShouldBeBetweenOrEqual, 0.0, 1.0)
						convey.So(v.Undertone, convey.ShouldBeIn, colorimetry.Cool, colorimetry.Warm, colorimetry.Neutral)

						if inds[0].Vote == inds[1].Vote && inds[1].Vote == inds[2].Vote {
							convey.So(v.Confidence, convey.ShouldEqual, 1.0)
						}
					}
				}
			}
		}
	})
}

func TestNewIndicator(t *testing.T) {
	tests := []struct {
		name    string
		kind    colorimetry.IndicatorKind
		value   string
		vote    colorimetry.Warmth
		weight  float64
		wantErr bool
	}{
		{"spanish vein", colorimetry.IndicatorVein, "Azul", colorimetry.Cool, 1.0, false},
		{"hyphenated", colorimetry.IndicatorJewelry, "rose-gold", colorimetry.Neutral, 1.0, false},
		{"spaced", colorimetry.IndicatorSun, "se quema", colorimetry.Cool, 0.75, false},
		{"lips", colorimetry.IndicatorLips, "durazno", colorimetry.Warm, 0.5, false},
		{"accented stated", colorimetry.IndicatorStated, "cálido", colorimetry.Warm, 1.0, false},
		{"unknown value", colorimetry.IndicatorVein, "orange", "", 0, true},
		{"unknown kind", colorimetry.IndicatorKind("freckles"), "many", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := colorimetry.NewIndicator(tt.kind, tt.value)
			if tt.wantErr {
				if !errors.Is(err, colorimetry.ErrInvalidInput) {
					t.Errorf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Vote != tt.vote || got.Weight != tt.weight {
				t.Errorf("got vote %s weight %g, want %s %g", got.Vote, got.Weight, tt.vote, tt.weight)
			}
		})
	}
}
