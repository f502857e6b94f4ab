package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"season-sim/internal/model"
)

// File is the on-disk shape of a YAML roster preset.
type File struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Players     []Record `yaml:"players"`
}

func LoadYAML(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &f, nil
}

// Build validates the preset's records.
func (f *File) Build() ([]*model.Player, error) {
	return FromRecords(f.Players)
}

// SaveYAML writes a roster preset.
func SaveYAML(path string, f *File) error {
	raw, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}
