// Package cmd implements the docseg command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scalecode-solutions/docseg"
	"github.com/scalecode-solutions/docseg/internal/config"
	"github.com/scalecode-solutions/docseg/internal/log"
	"github.com/scalecode-solutions/docseg/internal/report"
)

// localConfigPath is looked up before the user config.
const localConfigPath = ".docseg/config.yaml"

var version = "dev"

// app holds the state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	cfgFile    string
	cfg        config.Config
	seg        docseg.Config
	closeLog   func()
	configUsed string
}

// NewRootCmd returns the docseg command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "docseg",
		Short: "Split text into words, sentences and paragraphs",
		Long: `docseg segments natural-language text. It finds sentence boundaries around
abbreviations, initials, ellipses and quotes, and paragraph boundaries at
blank lines, indentation and list items.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closeLog != nil {
				a.closeLog()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./.docseg/config.yaml or ~/.config/docseg/config.yaml)")
	flags.Bool("eol-paragraph", false, "start a new paragraph at every line break")
	flags.Bool("ignore-blank-lines", false, "don't start paragraphs at blank lines")
	flags.Bool("ignore-indentation", false, "don't start paragraphs at indented lines")
	flags.Bool("uppercase-start", true, "require sentences to start with an uppercase letter")
	flags.StringP("format", "f", config.FormatTable, "output format: table, yaml or summary")
	flags.Int("max-width", 24, "truncate words and sentences in tables (0 = no limit)")
	flags.String("log-file", "", "write a debug log to this file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")

	// Bind flags to viper
	for key, flag := range map[string]string{
		"segmentation.eol_is_paragraph":         "eol-paragraph",
		"segmentation.ignore_blank_lines":       "ignore-blank-lines",
		"segmentation.ignore_indentation":       "ignore-indentation",
		"segmentation.uppercase_sentence_start": "uppercase-start",
		"output.format":                         "format",
		"output.max_word_width":                 "max-width",
		"log.file":                              "log-file",
		"log.level":                             "log-level",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newSegmentCmd(a),
		newWordsCmd(a),
		newSentencesCmd(a),
		newAbbrevCmd(a),
		newDiffCmd(a),
		newWatchCmd(a),
		newInitCmd(a),
	)
	return root
}

func (a *app) initConfig() error {
	v := a.v
	defaults := config.Defaults()
	v.SetDefault("segmentation.eol_is_paragraph", defaults.Segmentation.EOLIsParagraph)
	v.SetDefault("segmentation.ignore_blank_lines", defaults.Segmentation.IgnoreBlankLines)
	v.SetDefault("segmentation.ignore_indentation", defaults.Segmentation.IgnoreIndentation)
	v.SetDefault("segmentation.uppercase_sentence_start", defaults.Segmentation.UppercaseSentenceStart)
	v.SetDefault("abbreviations.file", defaults.Abbreviations.File)
	v.SetDefault("spelling.file", defaults.Spelling.File)
	v.SetDefault("spelling.command", defaults.Spelling.Command)
	v.SetDefault("spelling.cache_ttl", defaults.Spelling.CacheTTL)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.max_word_width", defaults.Output.MaxWordWidth)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix("DOCSEG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		// Config lookup order:
		// 1. .docseg/config.yaml (current directory)
		// 2. ~/.config/docseg/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			v.SetConfigFile(localConfigPath)
		} else {
			if home, err := os.UserHomeDir(); err == nil {
				v.AddConfigPath(filepath.Join(home, ".config", "docseg"))
			}
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	a.configUsed = v.ConfigFileUsed()

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := a.initLog(); err != nil {
		return err
	}
	log.Debug(log.CatConfig, "Loaded configuration", "file", a.configUsed)

	seg, err := a.cfg.ToSegmentation()
	if err != nil {
		return err
	}
	a.seg = seg
	return nil
}

func (a *app) initLog() error {
	if a.cfg.Log.File == "" {
		return nil
	}
	closeLog, err := log.Init(a.cfg.Log.File)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	a.closeLog = closeLog
	level, err := log.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}
	log.SetMinLevel(level)
	return nil
}

// segment reads the input named by args and segments it.
func (a *app) segment(cmd *cobra.Command, args []string) (*docseg.Document, error) {
	text, name, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	doc := docseg.Segment([]rune(text), a.seg)
	st := doc.Stats()
	log.Info(log.CatSegment, "Segmented document", "input", name,
		"words", st.Words, "sentences", st.Sentences, "paragraphs", st.Paragraphs)
	return doc, nil
}

// render writes doc in the configured format. Tables show sentences.
func (a *app) render(w io.Writer, doc *docseg.Document) error {
	opts := a.reportOptions(w)
	switch a.cfg.Output.Format {
	case config.FormatYAML:
		return report.YAML(w, doc)
	case config.FormatSummary:
		return report.Summary(w, doc, opts)
	default:
		return report.Sentences(w, doc, opts)
	}
}

func (a *app) reportOptions(w io.Writer) report.Options {
	return report.Options{
		MaxWordWidth: a.cfg.Output.MaxWordWidth,
		Styled:       w == os.Stdout,
	}
}

// readInput returns the contents of the file named by args[0], or standard
// input if there is no argument or it is "-".
func readInput(cmd *cobra.Command, args []string) (text, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), "<stdin>", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), args[0], nil
}

// Execute runs the root command. Long-running commands stop when ctx is
// cancelled.
func Execute(ctx context.Context) error {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		log.ErrorErr(log.CatCLI, "Command failed", err)
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
}
