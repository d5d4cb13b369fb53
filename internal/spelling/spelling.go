// Package spelling provides known-spelling word lists for the tokenizer.
//
// The tokenizer asks whether a word ending in an apostrophe ("somethin'",
// "rock 'n' roll") is spelled that way or whether the apostrophe is a
// closing quote. A word list answers that from a file of known spellings,
// one word per line.
package spelling

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/scalecode-solutions/docseg"
	"github.com/scalecode-solutions/docseg/internal/log"
)

// ErrEmptyWordList is returned when a word list holds no words.
var ErrEmptyWordList = errors.New("word list is empty")

// Default lifetimes of cached lookups.
const (
	DefaultTTL             = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// WordList is a set of known spellings. Lookups ignore case.
type WordList struct {
	words map[string]struct{}
}

var _ docseg.KnownSpellings = (*WordList)(nil)

// FromWords returns a word list holding words. Blank entries are ignored.
func FromWords(words ...string) (*WordList, error) {
	l := &WordList{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		l.add(w)
	}
	if l.Len() == 0 {
		return nil, ErrEmptyWordList
	}
	return l, nil
}

// Load reads a word list from the file at path.
func Load(path string) (*WordList, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is a user-supplied word list
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer func() { _ = f.Close() }()

	l, err := Read(f)
	if err != nil {
		log.ErrorErr(log.CatSpelling, "Failed to load word list", err, "path", path)
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	log.Info(log.CatSpelling, "Loaded word list", "path", path, "words", l.Len())
	return l, nil
}

// Read reads a word list from r: one word per line, lines starting with "#"
// are comments.
func Read(r io.Reader) (*WordList, error) {
	l := &WordList{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.add(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if l.Len() == 0 {
		return nil, ErrEmptyWordList
	}
	return l, nil
}

func (l *WordList) add(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	l.words[strings.ToLower(word)] = struct{}{}
}

// Contains reports whether word is in the list.
func (l *WordList) Contains(word string) bool {
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of words in the list.
func (l *WordList) Len() int {
	return len(l.words)
}

// Cache memoizes the answers of a slow known-spellings checker, such as one
// backed by a spell-checking service.
type Cache struct {
	next  docseg.KnownSpellings
	cache *gocache.Cache
}

var _ docseg.KnownSpellings = (*Cache)(nil)

// Cached wraps next so each word is looked up at most once per ttl.
func Cached(next docseg.KnownSpellings, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		next:  next,
		cache: gocache.New(ttl, DefaultCleanupInterval),
	}
}

// Contains reports whether next knows word, consulting the cache first.
func (c *Cache) Contains(word string) bool {
	key := strings.ToLower(word)
	if v, found := c.cache.Get(key); found {
		if known, ok := v.(bool); ok {
			log.Debug(log.CatSpelling, "cache hit", "word", key)
			return known
		}
		log.Error(log.CatSpelling, "wrong type assertion when getting value", "word", key)
	}
	known := c.next.Contains(word)
	c.cache.SetDefault(key, known)
	return known
}

// Len returns the number of cached answers.
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Flush drops all cached answers.
func (c *Cache) Flush() {
	c.cache.Flush()
}
