package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/scalecode-solutions/docseg"
	"github.com/scalecode-solutions/docseg/internal/spelling"
)

func TestDefaults_Valid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate_UnknownFormat(t *testing.T) {
	cfg := Defaults()
	cfg.Output.Format = "csv"
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "output.format")
}

func TestValidate_NegativeWidth(t *testing.T) {
	cfg := Defaults()
	cfg.Output.MaxWordWidth = -1
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_word_width")
}

func TestValidate_NegativeTTL(t *testing.T) {
	cfg := Defaults()
	cfg.Spelling.CacheTTL = -time.Second
	require.Error(t, cfg.Validate())
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.Log.Level = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "log.level")
}

func TestValidate_AbbreviationWords(t *testing.T) {
	cfg := Defaults()
	cfg.Abbreviations.Add = []string{"approx.", ""}
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "abbreviations.add 1: word is required")

	cfg = Defaults()
	cfg.Abbreviations.Exclude = []string{"two words."}
	err = cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "contains whitespace")
}

func TestToSegmentation_Flags(t *testing.T) {
	cfg := Defaults()
	cfg.Segmentation.EOLIsParagraph = true
	cfg.Segmentation.IgnoreIndentation = true

	seg, err := cfg.ToSegmentation()
	require.NoError(t, err)
	require.True(t, seg.EOLIsParagraph)
	require.True(t, seg.IgnoreIndentation)
	require.False(t, seg.IgnoreBlankLines)
	require.True(t, seg.UppercaseSentenceStart)
	require.Nil(t, seg.Abbreviations, "unchanged abbreviations use the shared table")
	require.Nil(t, seg.Spellings)
}

func TestToSegmentation_AbbreviationsArePrivate(t *testing.T) {
	cfg := Defaults()
	cfg.Abbreviations.Add = []string{"zzq"}
	cfg.Abbreviations.Exclude = []string{"mr."}

	seg, err := cfg.ToSegmentation()
	require.NoError(t, err)
	require.NotNil(t, seg.Abbreviations)
	require.True(t, seg.Abbreviations.IsAbbreviation([]rune("zzq.")))
	require.False(t, seg.Abbreviations.IsAbbreviation([]rune("Mr.")))

	// The shared table is untouched.
	require.False(t, docseg.IsAbbreviation([]rune("zzq.")))
	require.True(t, docseg.IsAbbreviation([]rune("Mr.")))
}

func TestToSegmentation_ProfileAndSpelling(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "abbrev.yaml")
	require.NoError(t, SaveProfile(profile, Profile{Abbreviations: []string{"zzr."}}))
	words := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("ol'\n"), 0o600))

	cfg := Defaults()
	cfg.Abbreviations.File = profile
	cfg.Spelling.File = words
	cfg.Spelling.CacheTTL = time.Minute

	seg, err := cfg.ToSegmentation()
	require.NoError(t, err)
	require.True(t, seg.Abbreviations.IsAbbreviation([]rune("zzr.")))
	require.True(t, seg.Spellings.Contains("OL'"))
	require.IsType(t, &spelling.WordList{}, seg.Spellings, "word lists are not cached")
}

func TestToSegmentation_SpellingCommand(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	cfg := Defaults()
	cfg.Spelling.Command = []string{"sh", "-c", `grep -v -x -i "ol'" || true`}

	seg, err := cfg.ToSegmentation()
	require.NoError(t, err)
	require.IsType(t, &spelling.Cache{}, seg.Spellings)
	require.True(t, seg.Spellings.Contains("ol'"))
	require.False(t, seg.Spellings.Contains("boys'"))

	words := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(words, []byte("somethin'\n"), 0o600))
	cfg.Spelling.File = words

	seg, err = cfg.ToSegmentation()
	require.NoError(t, err)
	require.True(t, seg.Spellings.Contains("somethin'"))
	require.True(t, seg.Spellings.Contains("ol'"))
	require.False(t, seg.Spellings.Contains("boys'"))
}

func TestToSegmentation_EmptySpellingCommand(t *testing.T) {
	cfg := Defaults()
	cfg.Spelling.Command = []string{""}
	_, err := cfg.ToSegmentation()
	require.Error(t, err)
	require.Contains(t, err.Error(), "spelling.command")
}

func TestToSegmentation_MissingFiles(t *testing.T) {
	cfg := Defaults()
	cfg.Abbreviations.File = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := cfg.ToSegmentation()
	require.Error(t, err)

	cfg = Defaults()
	cfg.Spelling.File = filepath.Join(t.TempDir(), "missing.txt")
	_, err = cfg.ToSegmentation()
	require.Error(t, err)
}

func TestProfile_RoundTripSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.yaml")
	require.NoError(t, SaveProfile(path, Profile{
		Abbreviations:    []string{"dept.", "approx."},
		NonAbbreviations: []string{"fig."},
	}))

	p, err := LoadProfile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"approx.", "dept."}, p.Abbreviations)
	require.Equal(t, []string{"fig."}, p.NonAbbreviations)
}

func TestLoadProfile_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("abbreviations: [\n"), 0o600))
	_, err := LoadProfile(bad)
	require.Error(t, err)

	blank := filepath.Join(dir, "blank.yaml")
	require.NoError(t, os.WriteFile(blank, []byte("abbreviations: [\"\"]\n"), 0o600))
	_, err = LoadProfile(blank)
	require.Error(t, err)
	require.Contains(t, err.Error(), "word is required")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".docseg", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Contains(t, parsed, "segmentation")
	require.Contains(t, parsed, "output")

	output, ok := parsed["output"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, FormatTable, output["format"])
}
