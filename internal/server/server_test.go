package server

import (
	"context"
	"strings"
	"testing"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
	"github.com/Maria-Villafuerte/MCP/internal/config"
	"github.com/Maria-Villafuerte/MCP/internal/metrics"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.StoreBackend = backend
	cfg.DataDir = t.TempDir()
	return cfg
}

func TestNew(t *testing.T) {
	s, cleanup, err := New(testConfig(t, "memory"), nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer cleanup()
	if s == nil {
		t.Fatal("New() returned a nil server")
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	_, cleanup, err := New(testConfig(t, "redis"), nil, nil)
	if err == nil {
		t.Fatal("New() should fail for an unknown backend")
	}
	cleanup()
}

func TestNewService_SQLiteRoundTrip(t *testing.T) {
	cfg := testConfig(t, "sqlite")
	svc, cleanup, err := NewService(cfg, nil, metrics.New(nil))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	ctx := context.Background()

	_, err = svc.CreateProfile(ctx, colorimetry.Attributes{
		UserID:    "u1",
		SkinTone:  "clara",
		EyeColor:  "azul",
		HairColor: "rubio",
		IndicatorInput: colorimetry.IndicatorInput{
			VeinColor:         "azul",
			JewelryPreference: "plata",
		},
	})
	if err != nil {
		t.Fatalf("CreateProfile() error = %v", err)
	}
	if _, err := svc.GeneratePalette(ctx, colorimetry.Request{UserID: "u1", Type: "clothing"}); err != nil {
		t.Fatalf("GeneratePalette() error = %v", err)
	}
	cleanup()

	// A second service on the same directory sees the stored data.
	svc, cleanup, err = NewService(cfg, nil, nil)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer cleanup()
	h, err := svc.History(ctx, "u1")
	if err != nil || len(h) != 1 {
		t.Errorf("History() after reopen = %d, %v; want 1", len(h), err)
	}
}

func TestServerInstructions(t *testing.T) {
	text := serverInstructions()
	for _, tool := range []string{"beauty_create_profile", "beauty_generate_palette", "beauty_history", "beauty_delete_profile", "beauty_classify"} {
		if !strings.Contains(text, tool) {
			t.Errorf("instructions should mention %s", tool)
		}
	}
}
