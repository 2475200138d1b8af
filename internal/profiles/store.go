// Package profiles persists beauty profiles and their palette history.
//
// Three backends implement Store: an in-process map, JSON files on disk,
// and SQLite. All of them serialise operations per user, so a replace or an
// append for one user never interleaves with another operation on the same
// user, while different users proceed in parallel.
package profiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

// Store defines the persistence interface for profiles and palette history.
type Store interface {
	// Put replaces the whole profile for p.UserID. When a profile already
	// exists its CreatedAt is kept (and written back into p) and its palette
	// history survives.
	Put(ctx context.Context, p *colorimetry.Profile) error
	Get(ctx context.Context, userID string) (*colorimetry.Profile, error)
	// List returns every profile in creation order.
	List(ctx context.Context) ([]colorimetry.Profile, error)
	// Delete removes the profile and its history.
	Delete(ctx context.Context, userID string) error
	// AppendPalette adds a palette to the end of the user's history.
	AppendPalette(ctx context.Context, userID string, p *colorimetry.Palette) error
	// History returns the user's palettes oldest first.
	History(ctx context.Context, userID string) ([]colorimetry.Palette, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// BackendValues returns the supported backend names.
func BackendValues() []string {
	return []string{BackendMemory, BackendFile, BackendSQLite}
}

// Config selects and configures a backend.
type Config struct {
	Backend string
	DataDir string
}

// DefaultConfig returns the SQLite backend under ~/.beauty-mcp.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Backend: BackendSQLite,
		DataDir: filepath.Join(home, ".beauty-mcp"),
	}
}

// Open builds the configured backend.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(cfg.DataDir)
	case BackendSQLite, "":
		return NewSQLiteStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("profiles: unknown backend %q (want one of %v)", cfg.Backend, BackendValues())
	}
}

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._@-]{0,127}$`)

// ValidateUserID checks that id is usable as a key by every backend,
// including as a file name.
func ValidateUserID(id string) error {
	if id == "" {
		return colorimetry.InvalidInput("user_id is required")
	}
	if !userIDPattern.MatchString(id) {
		return colorimetry.InvalidInput("user_id %q must be 1-128 letters, digits, '.', '_', '@' or '-' and start with a letter or digit", id)
	}
	return nil
}

func cloneProfile(p *colorimetry.Profile) *colorimetry.Profile {
	c := *p
	c.Indicators = slices.Clone(p.Indicators)
	return &c
}

func clonePalette(p *colorimetry.Palette) colorimetry.Palette {
	c := *p
	c.Entries = slices.Clone(p.Entries)
	c.Tips = slices.Clone(p.Tips)
	c.Adjustments = slices.Clone(p.Adjustments)
	c.Combinations = slices.Clone(p.Combinations)
	return c
}
