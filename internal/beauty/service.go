// Package beauty is the facade the MCP tools and the CLI call into. It
// classifies attributes, persists profiles, and generates palettes against
// a profile store.
package beauty

import (
	"context"
	"strings"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
	"github.com/Maria-Villafuerte/MCP/internal/logger"
	"github.com/Maria-Villafuerte/MCP/internal/metrics"
	"github.com/Maria-Villafuerte/MCP/internal/profiles"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithMetrics sets the metrics recorder. A nil recorder is allowed.
func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = m }
}

// Service holds the store and the palette generator.
type Service struct {
	store   profiles.Store
	gen     *colorimetry.Generator
	log     *logger.Logger
	metrics *metrics.Recorder
}

// New creates a Service. The store is owned by the caller.
func New(store profiles.Store, gen *colorimetry.Generator, opts ...Option) *Service {
	s := &Service{store: store, gen: gen, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Taxonomy returns the swatch catalogue used for selection.
func (s *Service) Taxonomy() *colorimetry.Taxonomy {
	return s.gen.Engine().Taxonomy()
}

// CreateProfile classifies a and stores the result, replacing any profile
// with the same user ID. Palette history of a replaced profile is kept.
func (s *Service) CreateProfile(ctx context.Context, a colorimetry.Attributes) (*colorimetry.Profile, error) {
	a.UserID = strings.TrimSpace(a.UserID)
	if err := profiles.ValidateUserID(a.UserID); err != nil {
		return nil, err
	}
	p, err := s.gen.Profile(a)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(ctx, p); err != nil {
		s.log.Error("store profile failed", "user_id", a.UserID, "error", err)
		return nil, err
	}

	s.metrics.ProfileCreated(p.Verdict.Confidence)
	s.log.Info("profile saved",
		"user_id", p.UserID,
		"season", p.Season,
		"undertone", p.Verdict.Undertone,
		"confidence", p.Verdict.Confidence,
	)
	return p, nil
}

// GetProfile returns the stored profile for userID.
func (s *Service) GetProfile(ctx context.Context, userID string) (*colorimetry.Profile, error) {
	return s.store.Get(ctx, strings.TrimSpace(userID))
}

// ListProfiles returns every stored profile in creation order.
func (s *Service) ListProfiles(ctx context.Context) ([]colorimetry.Profile, error) {
	return s.store.List(ctx)
}

// DeleteProfile removes a profile together with its palette history.
func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	userID = strings.TrimSpace(userID)
	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info("profile deleted", "user_id", userID)
	return nil
}

// History returns the palettes generated for userID, oldest first.
func (s *Service) History(ctx context.Context, userID string) ([]colorimetry.Palette, error) {
	return s.store.History(ctx, strings.TrimSpace(userID))
}

// Classify runs the classifiers on a without storing anything.
func (s *Service) Classify(a colorimetry.Attributes) (*colorimetry.Profile, error) {
	return s.gen.Profile(a)
}

// GeneratePalette builds a palette. With a UserID the stored profile is used
// and the palette is appended to that user's history; Overrides are ignored.
// Without one the palette is built from Overrides and not stored.
func (s *Service) GeneratePalette(ctx context.Context, req colorimetry.Request) (*colorimetry.Palette, error) {
	pal, err := s.generate(ctx, req)
	if err != nil {
		s.metrics.PaletteError(colorimetry.KindOf(err))
		s.log.Debug("palette request failed", "user_id", req.UserID, "kind", colorimetry.KindOf(err), "error", err)
		return nil, err
	}
	s.metrics.PaletteGenerated(string(pal.Type))
	s.log.Info("palette generated",
		"user_id", pal.UserID,
		"palette_id", pal.ID,
		"type", pal.Type,
		"season", pal.Season,
		"harmony", pal.Harmony,
	)
	return pal, nil
}

func (s *Service) generate(ctx context.Context, req colorimetry.Request) (*colorimetry.Palette, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" {
		return s.gen.Generate(nil, req)
	}

	profile, err := s.store.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	req.Overrides = nil
	pal, err := s.gen.Generate(profile, req)
	if err != nil {
		return nil, err
	}
	if err := s.store.AppendPalette(ctx, req.UserID, pal); err != nil {
		return nil, err
	}
	return pal, nil
}
