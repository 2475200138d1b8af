package beauty_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
	"github.com/Maria-Villafuerte/MCP/internal/metrics"
	"github.com/Maria-Villafuerte/MCP/internal/profiles"
)

var march = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T, opts ...beauty.Option) (*beauty.Service, profiles.Store) {
	t.Helper()
	tax, err := colorimetry.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() error = %v", err)
	}
	n := 0
	var mu sync.Mutex
	gen := colorimetry.NewGenerator(colorimetry.NewEngine(tax),
		colorimetry.WithClock(func() time.Time { return march }),
		colorimetry.WithIDSource(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("pal-%d", n)
		}),
	)
	store := profiles.NewMemoryStore()
	return beauty.New(store, gen, opts...), store
}

func attrs(userID string) colorimetry.Attributes {
	return colorimetry.Attributes{
		UserID:        userID,
		Name:          "Ana",
		SkinTone:      "media",
		EyeColor:      "cafe",
		HairColor:     "castaño",
		ContrastLevel: "medio",
		IndicatorInput: colorimetry.IndicatorInput{
			VeinColor:         "verde",
			JewelryPreference: "oro",
		},
	}
}

func TestCreateProfile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	p, err := svc.CreateProfile(ctx, attrs("u1"))
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if p.Season != colorimetry.WarmSpring {
		t.Errorf("Season = %s, want warm-spring", p.Season)
	}

	got, err := svc.GetProfile(ctx, " u1 ")
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.UserID != "u1" || got.Verdict.Undertone != colorimetry.Warm {
		t.Errorf("GetProfile() = %+v", got)
	}
}

func TestCreateProfile_Invalid(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	noUser := attrs("")
	noSkin := attrs("u1")
	noSkin.SkinTone = ""
	noIndicators := attrs("u1")
	noIndicators.IndicatorInput = colorimetry.IndicatorInput{}
	badVein := attrs("u1")
	badVein.VeinColor = "plaid"

	for name, a := range map[string]colorimetry.Attributes{
		"no user":       noUser,
		"no skin":       noSkin,
		"no indicators": noIndicators,
		"bad vein":      badVein,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.CreateProfile(ctx, a); !errors.Is(err, colorimetry.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}

	list, _ := svc.ListProfiles(ctx)
	if len(list) != 0 {
		t.Errorf("failed creates stored %d profiles", len(list))
	}
}

func TestGeneratePalette_UnknownUser(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.GeneratePalette(context.Background(), colorimetry.Request{UserID: "u1", Type: "clothing"})
	if !errors.Is(err, colorimetry.ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestGeneratePalette_AppendsHistory(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	if _, err := svc.CreateProfile(ctx, attrs("u1")); err != nil {
		t.Fatal(err)
	}

	pal, err := svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "clothing", Event: "formal"})
	if err != nil {
		t.Fatalf("GeneratePalette() error = %v", err)
	}
	if len(pal.Entries) != 3 || pal.UserID != "u1" || pal.Season != colorimetry.WarmSpring {
		t.Errorf("palette = %+v", pal)
	}

	h, err := svc.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(h) != 1 || h[0].ID != pal.ID {
		t.Errorf("History() = %v, want the generated palette", h)
	}
}

func TestGeneratePalette_FailureDoesNotMutate(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, _ = svc.CreateProfile(ctx, attrs("u1"))
	_, _ = svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "makeup"})

	cases := []struct {
		name string
		req  colorimetry.Request
		want error
	}{
		{"too many slots", colorimetry.Request{UserID: "u1", Type: "clothing", Slots: 500}, colorimetry.ErrInsufficientPalette},
		{"bad type", colorimetry.Request{UserID: "u1", Type: "shoes"}, colorimetry.ErrInvalidInput},
		{"bad event", colorimetry.Request{UserID: "u1", Type: "clothing", Event: "funeral"}, colorimetry.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.GeneratePalette(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}

	h, _ := svc.History(ctx, "u1")
	if len(h) != 1 {
		t.Errorf("History() = %d palettes, want 1", len(h))
	}
}

func TestGeneratePalette_QuickMode(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	a := attrs("")

	pal, err := svc.GeneratePalette(ctx, colorimetry.Request{Type: "accessories", Overrides: &a})
	if err != nil {
		t.Fatalf("GeneratePalette() error = %v", err)
	}
	if pal.Season != colorimetry.WarmSpring || len(pal.Entries) != 3 {
		t.Errorf("palette = %+v", pal)
	}
	list, _ := store.List(ctx)
	if len(list) != 0 {
		t.Errorf("quick mode stored %d profiles", len(list))
	}

	if _, err := svc.GeneratePalette(ctx, colorimetry.Request{Type: "clothing"}); !errors.Is(err, colorimetry.ErrInvalidInput) {
		t.Errorf("no user and no overrides: err = %v, want ErrInvalidInput", err)
	}
}

func TestGeneratePalette_StoredProfileWinsOverOverrides(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, _ = svc.CreateProfile(ctx, attrs("u1"))

	cool := attrs("")
	cool.VeinColor = "azul"
	cool.JewelryPreference = "plata"
	pal, err := svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "clothing", Overrides: &cool})
	if err != nil {
		t.Fatal(err)
	}
	if pal.Undertone != colorimetry.Warm {
		t.Errorf("Undertone = %s, want the stored warm verdict", pal.Undertone)
	}
}

func TestReplaceKeepsHistory(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	first, _ := svc.CreateProfile(ctx, attrs("u1"))
	_, _ = svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "clothing"})

	cool := attrs("u1")
	cool.VeinColor = "azul"
	cool.JewelryPreference = "plata"
	second, err := svc.CreateProfile(ctx, cool)
	if err != nil {
		t.Fatal(err)
	}
	if second.Verdict.Undertone != colorimetry.Cool {
		t.Errorf("Undertone = %s, want cool", second.Verdict.Undertone)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt changed on replace")
	}
	h, _ := svc.History(ctx, "u1")
	if len(h) != 1 {
		t.Errorf("History() = %d, want 1 after replace", len(h))
	}
}

func TestDeleteProfile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, _ = svc.CreateProfile(ctx, attrs("u1"))
	_, _ = svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "clothing"})

	if err := svc.DeleteProfile(ctx, "u1"); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if _, err := svc.History(ctx, "u1"); !errors.Is(err, colorimetry.ErrProfileNotFound) {
		t.Errorf("History() after delete err = %v", err)
	}
	if err := svc.DeleteProfile(ctx, "u1"); !errors.Is(err, colorimetry.ErrProfileNotFound) {
		t.Errorf("second DeleteProfile() err = %v", err)
	}
}

func TestClassify_DoesNotStore(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	a := attrs("")
	a.IndicatorInput = colorimetry.IndicatorInput{VeinColor: "azul", JewelryPreference: "plata"}
	p, err := svc.Classify(a)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if p.Verdict.Undertone != colorimetry.Cool || p.Verdict.Confidence != 1 {
		t.Errorf("Verdict = %+v, want cool 1.0", p.Verdict)
	}
	list, _ := svc.ListProfiles(ctx)
	if len(list) != 0 {
		t.Errorf("Classify stored %d profiles", len(list))
	}
}

func TestMetricsRecorded(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc, _ := newService(t, beauty.WithMetrics(metrics.New(reg)))
	ctx := context.Background()

	_, _ = svc.CreateProfile(ctx, attrs("u1"))
	_, _ = svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "makeup"})
	_, _ = svc.GeneratePalette(ctx, colorimetry.Request{UserID: "ghost", Type: "makeup"})

	expected := `
# HELP beauty_palette_errors_total Failed palette requests by error kind
# TYPE beauty_palette_errors_total counter
beauty_palette_errors_total{kind="profile_not_found"} 1
# HELP beauty_palettes_generated_total Total number of palettes generated by palette type
# TYPE beauty_palettes_generated_total counter
beauty_palettes_generated_total{type="makeup"} 1
# HELP beauty_profiles_created_total Total number of profiles created or replaced
# TYPE beauty_profiles_created_total counter
beauty_profiles_created_total 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"beauty_palette_errors_total", "beauty_palettes_generated_total", "beauty_profiles_created_total"); err != nil {
		t.Error(err)
	}
}

func TestConcurrentPalettes(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, _ = svc.CreateProfile(ctx, attrs("u1"))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "clothing"}); err != nil {
				t.Errorf("GeneratePalette() error = %v", err)
			}
		}()
	}
	wg.Wait()

	h, _ := svc.History(ctx, "u1")
	if len(h) != n {
		t.Errorf("History() = %d palettes, want %d", len(h), n)
	}
}
