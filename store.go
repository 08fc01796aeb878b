package vibeeq

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const presetExt = ".json"

// PresetName derives the preset name from a source file path: the base
// name without extension, with spaces replaced by underscores.
func PresetName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ReplaceAll(base, " ", "_")
}

// Store is the EasyEffects preset directory. Dir is written to; SharedDirs
// are only scanned for presets installed by other means.
type Store struct {
	Dir        string
	SharedDirs []string
}

// NewStore returns a store writing to dir and also listing shared
func NewStore(dir string, shared ...string) *Store {
	return &Store{Dir: dir, SharedDirs: shared}
}

// Path returns the file a preset name is written to
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name+presetExt)
}

// Write replaces the preset file for name with p
func (s *Store) Write(name string, p *Preset) (string, error) {
	data, err := p.MarshalIndent()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create preset directory: %w", err)
	}
	path := s.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write preset: %w", err)
	}
	return path, nil
}

// ReadRaw returns the file contents of an installed preset, looking in Dir
// first and then in the shared directories. It returns os.ErrNotExist when
// no directory has it.
func (s *Store) ReadRaw(name string) ([]byte, string, error) {
	for _, dir := range s.dirs() {
		path := filepath.Join(dir, name+presetExt)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to read preset: %w", err)
		}
	}
	return nil, "", fmt.Errorf("preset %q: %w", name, os.ErrNotExist)
}

// Read decodes an installed preset
func (s *Store) Read(name string) (*Preset, string, error) {
	data, path, err := s.ReadRaw(name)
	if err != nil {
		return nil, "", err
	}
	p, err := DecodePreset(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return p, path, nil
}

// List returns the sorted, de-duplicated names of all installed presets.
// Missing directories are skipped.
func (s *Store) List() ([]string, error) {
	seen := map[string]struct{}{}
	for _, dir := range s.dirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != presetExt {
				continue
			}
			seen[strings.TrimSuffix(e.Name(), presetExt)] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	slices.Sort(names)
	return names, nil
}

func (s *Store) dirs() []string {
	return append([]string{s.Dir}, s.SharedDirs...)
}
