package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/docseg/internal/log"
)

// Profile is a set of abbreviation changes kept in its own YAML file, so
// the same list can be shared between projects:
//
//	abbreviations: [approx., dept.]
//	non_abbreviations: [fig.]
type Profile struct {
	Abbreviations    []string `yaml:"abbreviations"`
	NonAbbreviations []string `yaml:"non_abbreviations,omitempty"`
}

// LoadProfile reads an abbreviation profile.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the user's config
	if err != nil {
		return Profile{}, fmt.Errorf("reading abbreviation profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to parse abbreviation profile", err, "path", path)
		return Profile{}, fmt.Errorf("parsing abbreviation profile %s: %w", path, err)
	}
	if err := validateWords("abbreviations", p.Abbreviations); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := validateWords("non_abbreviations", p.NonAbbreviations); err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug(log.CatConfig, "Loaded abbreviation profile", "path", path,
		"abbreviations", len(p.Abbreviations), "non_abbreviations", len(p.NonAbbreviations))
	return p, nil
}

// SaveProfile writes p to path with its lists sorted.
func SaveProfile(path string, p Profile) error {
	p.Abbreviations = sortedCopy(p.Abbreviations)
	p.NonAbbreviations = sortedCopy(p.NonAbbreviations)

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding abbreviation profile: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write abbreviation profile", err, "path", path)
		return fmt.Errorf("writing abbreviation profile: %w", err)
	}
	return nil
}

func sortedCopy(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}
