package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Preset describes a YAML roster file in a preset directory.
type Preset struct {
	ID          string
	Name        string
	Description string
	File        string
	Players     int
}

// ListPresets lists *.yaml/*.yml files in dir, sorted by ID. Files that fail
// to parse are reported in skipped rather than failing the listing.
func ListPresets(dir string) (presets []Preset, skipped map[string]error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	skipped = map[string]error{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, ok := presetID(e.Name())
		if !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		f, err := LoadYAML(path)
		if err != nil {
			skipped[e.Name()] = err
			continue
		}
		name := f.Name
		if name == "" {
			name = id
		}
		presets = append(presets, Preset{
			ID:          id,
			Name:        name,
			Description: f.Description,
			File:        path,
			Players:     len(f.Players),
		})
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, skipped, nil
}

// LoadPreset loads the preset with the given ID from dir.
func LoadPreset(dir, id string) (*File, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, fmt.Errorf("invalid roster id %q", id)
	}
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadYAML(path)
		}
	}
	return nil, fmt.Errorf("roster %q not found in %s: %w", id, dir, os.ErrNotExist)
}

func presetID(filename string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		if strings.HasSuffix(filename, ext) {
			return strings.TrimSuffix(filename, ext), true
		}
	}
	return "", false
}
