// Package config provides configuration types and defaults for docseg.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scalecode-solutions/docseg"
	"github.com/scalecode-solutions/docseg/internal/log"
	"github.com/scalecode-solutions/docseg/internal/spelling"
)

// Output formats.
const (
	FormatTable   = "table"
	FormatYAML    = "yaml"
	FormatSummary = "summary"
)

// Config holds all configuration options for docseg.
type Config struct {
	Segmentation  SegmentationConfig  `mapstructure:"segmentation"`
	Abbreviations AbbreviationsConfig `mapstructure:"abbreviations"`
	Spelling      SpellingConfig      `mapstructure:"spelling"`
	Output        OutputConfig        `mapstructure:"output"`
	Log           LogConfig           `mapstructure:"log"`
}

// SegmentationConfig holds the paragraph and sentence rules.
type SegmentationConfig struct {
	EOLIsParagraph         bool `mapstructure:"eol_is_paragraph"`         // Every line break starts a paragraph
	IgnoreBlankLines       bool `mapstructure:"ignore_blank_lines"`       // Blank lines alone don't start a paragraph
	IgnoreIndentation      bool `mapstructure:"ignore_indentation"`       // Indented lines don't start a paragraph
	UppercaseSentenceStart bool `mapstructure:"uppercase_sentence_start"` // Sentences must start with an uppercase letter
}

// AbbreviationsConfig adjusts the built-in abbreviation list.
type AbbreviationsConfig struct {
	Add     []string `mapstructure:"add"`     // Extra abbreviations, e.g. "approx."
	Exclude []string `mapstructure:"exclude"` // Words never read as abbreviations
	File    string   `mapstructure:"file"`    // YAML abbreviation profile (see Profile)
}

// SpellingConfig configures the known spellings: a word list, an external
// spell checker, or both.
type SpellingConfig struct {
	File     string        `mapstructure:"file"`      // One word per line
	Command  []string      `mapstructure:"command"`   // Spell checker printing the unknown words of its stdin
	CacheTTL time.Duration `mapstructure:"cache_ttl"` // Lifetime of cached spell checker answers
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format       string `mapstructure:"format"`         // "table" (default), "yaml" or "summary"
	MaxWordWidth int    `mapstructure:"max_word_width"` // Truncate words in tables (0 = no limit)
}

// LogConfig controls the debug log.
type LogConfig struct {
	File  string `mapstructure:"file"`  // Log file; logging is off when empty
	Level string `mapstructure:"level"` // debug, info, warn or error
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Segmentation: SegmentationConfig{
			UppercaseSentenceStart: true,
		},
		Spelling: SpellingConfig{
			CacheTTL: spelling.DefaultTTL,
		},
		Output: OutputConfig{
			Format:       FormatTable,
			MaxWordWidth: 24,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values docseg cannot use.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatYAML, FormatSummary:
	default:
		return fmt.Errorf("output.format: unknown format %q (want %s, %s or %s)",
			c.Output.Format, FormatTable, FormatYAML, FormatSummary)
	}
	if c.Output.MaxWordWidth < 0 {
		return fmt.Errorf("output.max_word_width: must not be negative, got %d", c.Output.MaxWordWidth)
	}
	if c.Spelling.CacheTTL < 0 {
		return fmt.Errorf("spelling.cache_ttl: must not be negative, got %s", c.Spelling.CacheTTL)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	if err := validateWords("abbreviations.add", c.Abbreviations.Add); err != nil {
		return err
	}
	return validateWords("abbreviations.exclude", c.Abbreviations.Exclude)
}

func validateWords(key string, words []string) error {
	for i, w := range words {
		w = strings.TrimSpace(w)
		if w == "" || w == "." {
			return fmt.Errorf("%s %d: word is required", key, i)
		}
		if strings.ContainsAny(w, " \t\r\n") {
			return fmt.Errorf("%s %d: %q contains whitespace", key, i, w)
		}
	}
	return nil
}

// ToSegmentation builds the engine configuration. Abbreviation changes are
// made to a private copy of the built-in table, and the word list is loaded
// from disk.
func (c Config) ToSegmentation() (docseg.Config, error) {
	seg := docseg.Config{
		EOLIsParagraph:         c.Segmentation.EOLIsParagraph,
		IgnoreBlankLines:       c.Segmentation.IgnoreBlankLines,
		IgnoreIndentation:      c.Segmentation.IgnoreIndentation,
		UppercaseSentenceStart: c.Segmentation.UppercaseSentenceStart,
	}

	add, exclude := c.Abbreviations.Add, c.Abbreviations.Exclude
	if c.Abbreviations.File != "" {
		p, err := LoadProfile(c.Abbreviations.File)
		if err != nil {
			return docseg.Config{}, err
		}
		add = append(append([]string(nil), add...), p.Abbreviations...)
		exclude = append(append([]string(nil), exclude...), p.NonAbbreviations...)
	}
	if len(add) > 0 || len(exclude) > 0 {
		table := docseg.DefaultAbbreviations().Clone()
		table.Add(add...)
		table.AddNonAbbreviations(exclude...)
		seg.Abbreviations = table
		log.Debug(log.CatConfig, "Extended abbreviation table", "added", len(add), "excluded", len(exclude))
	}

	var checkers []docseg.KnownSpellings
	if c.Spelling.File != "" {
		words, err := spelling.Load(c.Spelling.File)
		if err != nil {
			return docseg.Config{}, err
		}
		checkers = append(checkers, words)
	}
	if len(c.Spelling.Command) > 0 {
		cmd, err := spelling.NewCommand(c.Spelling.Command...)
		if err != nil {
			return docseg.Config{}, fmt.Errorf("spelling.command: %w", err)
		}
		// The word list is a map already; only the process-per-word checker
		// is worth caching.
		checkers = append(checkers, spelling.Cached(cmd, c.Spelling.CacheTTL))
	}
	switch len(checkers) {
	case 1:
		seg.Spellings = checkers[0]
	case 2:
		seg.Spellings = spelling.Any(checkers...)
	}
	return seg, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# docseg configuration

segmentation:
  eol_is_paragraph: false          # Every line break starts a new paragraph
  ignore_blank_lines: false        # Blank lines alone don't start a new paragraph
  ignore_indentation: false        # Indented lines don't start a new paragraph
  uppercase_sentence_start: true   # Sentences must start with an uppercase letter

abbreviations:
  add: []        # Extra abbreviations, e.g. ["approx.", "dept."]
  exclude: []    # Words never read as abbreviations
  # file: abbreviations.yaml   # Profile with abbreviations: and non_abbreviations: lists

spelling:
  # file: words.txt              # Known spellings, one per line ("somethin'")
  # command: ["aspell", "list"]   # Spell checker printing the unknown words of its stdin
  cache_ttl: 10m                  # Lifetime of cached spell checker answers

output:
  format: table        # table, yaml or summary
  max_word_width: 24   # Truncate words in tables (0 = no limit)

log:
  # file: docseg.log
  level: info
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
