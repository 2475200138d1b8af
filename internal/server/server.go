// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools, prompts and resources that depend on them.
// No business logic lives here, only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Maria-Villafuerte/MCP/internal/beauty"
	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
	"github.com/Maria-Villafuerte/MCP/internal/config"
	"github.com/Maria-Villafuerte/MCP/internal/logger"
	"github.com/Maria-Villafuerte/MCP/internal/metrics"
	"github.com/Maria-Villafuerte/MCP/internal/profiles"
	"github.com/Maria-Villafuerte/MCP/internal/prompts"
	"github.com/Maria-Villafuerte/MCP/internal/resources"
	"github.com/Maria-Villafuerte/MCP/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewService loads the taxonomy, opens the configured profile store and
// builds the service on top of them. rec may be nil.
//
// The returned cleanup function closes the store and must be called on
// shutdown. It is always non-nil.
func NewService(cfg *config.Config, log *logger.Logger, rec *metrics.Recorder) (*beauty.Service, func(), error) {
	if log == nil {
		log = logger.Nop()
	}

	tax, err := colorimetry.LoadDefault()
	if err != nil {
		return nil, noop, fmt.Errorf("loading color taxonomy: %w", err)
	}

	store, err := profiles.Open(cfg.Store())
	if err != nil {
		return nil, noop, fmt.Errorf("opening %s profile store: %w", cfg.StoreBackend, err)
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Warn("profile store close failed", "error", err)
		}
	}

	engine := colorimetry.NewEngine(tax,
		colorimetry.WithLogger(log),
		colorimetry.WithRelaxationHook(func(s colorimetry.Season, pt colorimetry.PaletteType) {
			rec.HarmonyRelaxed(string(s), string(pt))
		}),
	)
	gen := colorimetry.NewGenerator(engine,
		colorimetry.WithLowConfidenceThreshold(cfg.LowConfidenceThreshold),
	)

	log.Info("service ready",
		"swatches", tax.Len(),
		"store", cfg.StoreBackend,
		"low_confidence_threshold", cfg.LowConfidenceThreshold,
	)
	return beauty.New(store, gen, beauty.WithLogger(log), beauty.WithMetrics(rec)), cleanup, nil
}

// New creates and configures the MCP server with all tools, prompts, and
// resources registered. This is the single place where all dependencies are
// resolved.
//
// The returned cleanup function closes the profile store and must be called
// on shutdown (typically via defer). It is always non-nil.
func New(cfg *config.Config, log *logger.Logger, rec *metrics.Recorder) (*server.MCPServer, func(), error) {
	svc, cleanup, err := NewService(cfg, log, rec)
	if err != nil {
		return nil, noop, err
	}

	s := server.NewMCPServer(
		"beauty-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register profile tools ---

	createProfile := tools.NewCreateProfileTool(svc)
	s.AddTool(createProfile.Definition(), createProfile.Handle)

	getProfile := tools.NewGetProfileTool(svc)
	s.AddTool(getProfile.Definition(), getProfile.Handle)

	listProfiles := tools.NewListProfilesTool(svc)
	s.AddTool(listProfiles.Definition(), listProfiles.Handle)

	deleteProfile := tools.NewDeleteProfileTool(svc)
	s.AddTool(deleteProfile.Definition(), deleteProfile.Handle)

	classify := tools.NewClassifyTool(svc)
	s.AddTool(classify.Definition(), classify.Handle)

	// --- Register palette tools ---

	generatePalette := tools.NewGeneratePaletteTool(svc)
	s.AddTool(generatePalette.Definition(), generatePalette.Handle)

	history := tools.NewHistoryTool(svc)
	s.AddTool(history.Definition(), history.Handle)

	// --- Register prompts ---

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	palettePrompt := prompts.NewPalettePrompt()
	s.AddPrompt(palettePrompt.Definition(), palettePrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(svc.Taxonomy())
	s.AddResource(resourceHandler.TaxonomyResource(), resourceHandler.HandleTaxonomy)
	s.AddResource(resourceHandler.SeasonsResource(), resourceHandler.HandleSeasons)

	return s, cleanup, nil
}

func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the server.
func serverInstructions() string {
	return `You have access to a personal color analysis server.

## WHAT IT DOES

It classifies a person's skin undertone (cool, warm, neutral) from simple
observations, assigns one of eight color seasons (Light Spring, Warm Spring,
Soft Autumn, Deep Autumn, Light Summer, Soft Summer, Cool Winter, Deep Winter),
and generates deterministic clothing, makeup and accessories palettes with
hex codes and a short rationale for every color.

## TYPICAL FLOW

1. Collect skin tone, eye color, natural hair color and at least two undertone
   signals: vein color, preferred jewelry metal, sun reaction, natural lip color.
   One signal works but yields a low-confidence verdict.
2. Call beauty_create_profile with a user_id. Calling it again for the same
   user_id replaces the profile and keeps its palette history.
3. Call beauty_generate_palette with the user_id, a palette_type and, when
   relevant, an event_type (casual, formal, fiesta, trabajo, cita, deporte, viaje)
   and season_of_year. Saved palettes appear in beauty_history.
4. For a quick answer without saving anything, call beauty_generate_palette
   without user_id and pass the traits directly, or use beauty_classify.

## RULES

- Palettes are deterministic: the same profile and request give the same colors.
- When the verdict is low-confidence, say so and suggest the neutrals first.
- beauty_delete_profile removes the profile AND its history. Ask before calling it.
- Reference data is available as resources: beauty://taxonomy and beauty://seasons.
`
}
