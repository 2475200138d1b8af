package profiles

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

const (
	// ProfilesDir holds one <user_id>.json per profile.
	ProfilesDir = "profiles"
	// PalettesDir holds one <user_id>.jsonl history per profile, one palette
	// per line.
	PalettesDir = "palettes"
)

// FileStore implements Store with JSON files under a data directory.
type FileStore struct {
	root string
	keys *keyLock
}

// NewFileStore creates a filesystem-backed store rooted at dataDir.
func NewFileStore(dataDir string) (*FileStore, error) {
	for _, dir := range []string{ProfilesDir, PalettesDir} {
		if err := os.MkdirAll(filepath.Join(dataDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("profiles: create %s directory: %w", dir, err)
		}
	}
	return &FileStore{root: dataDir, keys: newKeyLock()}, nil
}

// ProfilePath returns the file holding userID's profile.
func (fs *FileStore) ProfilePath(userID string) string {
	return filepath.Join(fs.root, ProfilesDir, userID+".json")
}

// HistoryPath returns the file holding userID's palette history.
func (fs *FileStore) HistoryPath(userID string) string {
	return filepath.Join(fs.root, PalettesDir, userID+".jsonl")
}

func (fs *FileStore) Put(_ context.Context, p *colorimetry.Profile) error {
	if err := ValidateUserID(p.UserID); err != nil {
		return err
	}
	unlock := fs.keys.Lock(p.UserID)
	defer unlock()

	existing, err := fs.load(p.UserID)
	switch {
	case err == nil:
		p.CreatedAt = existing.CreatedAt
	case !errors.Is(err, colorimetry.ErrProfileNotFound):
		return err
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("profiles: marshal profile: %w", err)
	}
	return writeFileAtomic(fs.ProfilePath(p.UserID), data)
}

func (fs *FileStore) Get(_ context.Context, userID string) (*colorimetry.Profile, error) {
	if ValidateUserID(userID) != nil {
		return nil, colorimetry.ProfileNotFound(userID)
	}
	unlock := fs.keys.Lock(userID)
	defer unlock()
	return fs.load(userID)
}

func (fs *FileStore) load(userID string) (*colorimetry.Profile, error) {
	data, err := os.ReadFile(fs.ProfilePath(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, colorimetry.ProfileNotFound(userID)
		}
		return nil, fmt.Errorf("profiles: read profile: %w", err)
	}
	var p colorimetry.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profiles: parse profile %q: %w", userID, err)
	}
	return &p, nil
}

func (fs *FileStore) List(_ context.Context) ([]colorimetry.Profile, error) {
	entries, err := os.ReadDir(filepath.Join(fs.root, ProfilesDir))
	if err != nil {
		return nil, fmt.Errorf("profiles: read profiles directory: %w", err)
	}

	result := []colorimetry.Profile{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		p, err := fs.load(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue // skip unreadable or concurrently deleted profiles
		}
		result = append(result, *p)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].UserID < result[j].UserID
	})
	return result, nil
}

func (fs *FileStore) Delete(_ context.Context, userID string) error {
	if ValidateUserID(userID) != nil {
		return colorimetry.ProfileNotFound(userID)
	}
	unlock := fs.keys.Lock(userID)
	defer unlock()

	if err := os.Remove(fs.ProfilePath(userID)); err != nil {
		if os.IsNotExist(err) {
			return colorimetry.ProfileNotFound(userID)
		}
		return fmt.Errorf("profiles: delete profile: %w", err)
	}
	if err := os.Remove(fs.HistoryPath(userID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("profiles: delete history: %w", err)
	}
	return nil
}

func (fs *FileStore) AppendPalette(_ context.Context, userID string, p *colorimetry.Palette) error {
	if ValidateUserID(userID) != nil {
		return colorimetry.ProfileNotFound(userID)
	}
	unlock := fs.keys.Lock(userID)
	defer unlock()

	if _, err := os.Stat(fs.ProfilePath(userID)); err != nil {
		if os.IsNotExist(err) {
			return colorimetry.ProfileNotFound(userID)
		}
		return fmt.Errorf("profiles: stat profile: %w", err)
	}

	line, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profiles: marshal palette: %w", err)
	}
	f, err := os.OpenFile(fs.HistoryPath(userID), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("profiles: open history: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("profiles: append history: %w", err)
	}
	return f.Close()
}

func (fs *FileStore) History(_ context.Context, userID string) ([]colorimetry.Palette, error) {
	if ValidateUserID(userID) != nil {
		return nil, colorimetry.ProfileNotFound(userID)
	}
	unlock := fs.keys.Lock(userID)
	defer unlock()

	if _, err := os.Stat(fs.ProfilePath(userID)); err != nil {
		if os.IsNotExist(err) {
			return nil, colorimetry.ProfileNotFound(userID)
		}
		return nil, fmt.Errorf("profiles: stat profile: %w", err)
	}

	f, err := os.Open(fs.HistoryPath(userID))
	if err != nil {
		if os.IsNotExist(err) {
			return []colorimetry.Palette{}, nil
		}
		return nil, fmt.Errorf("profiles: open history: %w", err)
	}
	defer func() { _ = f.Close() }()

	result := []colorimetry.Palette{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var p colorimetry.Palette
		if err := json.Unmarshal(scanner.Bytes(), &p); err != nil {
			return nil, fmt.Errorf("profiles: parse history for %q: %w", userID, err)
		}
		result = append(result, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("profiles: read history: %w", err)
	}
	return result, nil
}

func (fs *FileStore) Close() error { return nil }

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over path, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("profiles: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("profiles: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("profiles: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("profiles: rename profile: %w", err)
	}
	return nil
}
