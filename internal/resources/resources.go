// Package resources implements MCP resource handlers for the beauty server.
//
// Resources provide read-only reference data the host can pull into
// context. They use URI-based addressing (beauty://...) following MCP
// conventions.
package resources

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

// Resource URIs.
const (
	TaxonomyURI = "beauty://taxonomy"
	SeasonsURI  = "beauty://seasons"
)

// Handler serves the swatch catalogue and the season table.
type Handler struct {
	taxonomy *colorimetry.Taxonomy
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(taxonomy *colorimetry.Taxonomy) *Handler {
	return &Handler{taxonomy: taxonomy}
}

// TaxonomyResource returns the MCP resource definition for the swatch catalogue.
func (h *Handler) TaxonomyResource() mcp.Resource {
	return mcp.NewResource(
		TaxonomyURI,
		"Color Taxonomy",
		mcp.WithResourceDescription("Every named swatch with its hex code, warmth, season tags and allowed palette types"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleTaxonomy returns the swatch catalogue as JSON, in catalogue order.
func (h *Handler) HandleTaxonomy(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.taxonomy == nil {
		return errorResource(req.Params.URI, "taxonomy not loaded"), nil
	}
	return jsonResource(req.Params.URI, struct {
		Count    int                  `json:"count"`
		Swatches []colorimetry.Swatch `json:"swatches"`
	}{
		Count:    h.taxonomy.Len(),
		Swatches: h.taxonomy.Swatches(),
	})
}

// SeasonsResource returns the MCP resource definition for the season table.
func (h *Handler) SeasonsResource() mcp.Resource {
	return mcp.NewResource(
		SeasonsURI,
		"Season Archetypes",
		mcp.WithResourceDescription("The eight season archetypes and the 27-cell undertone x depth x contrast classification table"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleSeasons returns the archetypes and the classification table as JSON.
func (h *Handler) HandleSeasons(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, struct {
		Archetypes []colorimetry.Archetype  `json:"archetypes"`
		Table      []colorimetry.TableEntry `json:"table"`
	}{
		Archetypes: colorimetry.Seasons(),
		Table:      colorimetry.SeasonTable(),
	})
}
