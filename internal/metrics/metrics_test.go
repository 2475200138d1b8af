package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.ProfileCreated(1)
	r.ProfileCreated(0.5)
	r.PaletteGenerated("clothing")
	r.PaletteGenerated("clothing")
	r.PaletteGenerated("makeup")
	r.PaletteError("insufficient_palette")
	r.HarmonyRelaxed("warm-spring", "accessories")

	if got := testutil.ToFloat64(r.profilesCreated); got != 2 {
		t.Errorf("profiles_created_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.palettesGenerated.WithLabelValues("clothing")); got != 2 {
		t.Errorf("palettes_generated_total{clothing} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.palettesGenerated.WithLabelValues("makeup")); got != 1 {
		t.Errorf("palettes_generated_total{makeup} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.paletteErrors.WithLabelValues("insufficient_palette")); got != 1 {
		t.Errorf("palette_errors_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.harmonyRelaxations.WithLabelValues("warm-spring", "accessories")); got != 1 {
		t.Errorf("harmony_relaxations_total = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(r.undertoneConf); n != 1 {
		t.Errorf("undertone_confidence collectors = %d, want 1", n)
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.ProfileCreated(1)
	r.PaletteGenerated("clothing")
	r.PaletteError("internal")
	r.HarmonyRelaxed("true-winter", "makeup")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 404 {
		t.Errorf("nil recorder handler status = %d, want 404", rec.Code)
	}
}

func TestRecorder_Handler(t *testing.T) {
	r := New(nil)
	r.PaletteGenerated("accessories")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `beauty_palettes_generated_total{type="accessories"} 1`) {
		t.Errorf("metrics output missing palette counter:\n%s", body)
	}
}
