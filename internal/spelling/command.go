package spelling

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/scalecode-solutions/docseg"
	"github.com/scalecode-solutions/docseg/internal/log"
)

// ErrNoCommand is returned when a spell checker command is empty.
var ErrNoCommand = errors.New("spell checker command is empty")

// DefaultCommandTimeout bounds a single spell checker lookup.
const DefaultCommandTimeout = 5 * time.Second

// Command asks an external spell checker about each word. The program reads
// words on stdin and prints the ones it does not know, as "aspell list" and
// "hunspell -l" do. Every lookup starts a process; wrap it with Cached.
type Command struct {
	argv    []string
	timeout time.Duration
}

var _ docseg.KnownSpellings = (*Command)(nil)

// NewCommand returns a checker running argv.
func NewCommand(argv ...string) (*Command, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, ErrNoCommand
	}
	return &Command{argv: argv, timeout: DefaultCommandTimeout}, nil
}

// Contains reports whether the spell checker accepts word. A checker that
// fails or times out knows nothing.
func (c *Command) Contains(word string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...) //nolint:gosec // G204: the command comes from the user's config
	cmd.Stdin = strings.NewReader(word + "\n")
	out, err := cmd.Output()
	if err != nil {
		log.ErrorErr(log.CatSpelling, "Spell checker failed", err, "command", c.argv[0], "word", word)
		return false
	}
	return len(bytes.TrimSpace(out)) == 0
}

// Any combines checkers: a word is known if one of them knows it. Checkers
// are asked in order.
func Any(checkers ...docseg.KnownSpellings) docseg.KnownSpellings {
	return docseg.KnownSpellingsFunc(func(word string) bool {
		for _, c := range checkers {
			if c.Contains(word) {
				return true
			}
		}
		return false
	})
}
