// Package words holds the static word list hangman draws its secret
// words from, and a concurrency-safe uniform picker over it.
package words

import (
	_ "embed"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode"

	"github.com/samber/lo"

	hmerr "hangman/internal/errors"
)

//go:embed words.txt
var embedded string

// commentPrefix marks header lines in a word list.
const commentPrefix = "#"

// List is an immutable, non-empty set of candidate words.
type List struct {
	words []string
}

// Parse splits a newline-separated word list.  Entries are trimmed;
// blank lines, lines starting with "#" and entries with inner spaces
// are dropped, as are repeats.
// A list with nothing left is rejected with [hmerr.ErrEmptyWordList].
func Parse(raw string) (*List, error) {
	entries := lo.Map(strings.Split(raw, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	entries = lo.Filter(entries, func(w string, _ int) bool {
		return w != "" && !strings.HasPrefix(w, commentPrefix) && !strings.ContainsFunc(w, unicode.IsSpace)
	})
	entries = lo.Uniq(entries)
	if len(entries) == 0 {
		return nil, hmerr.ErrEmptyWordList
	}
	return &List{words: entries}, nil
}

var loadDefault = sync.OnceValues(func() (*List, error) {
	return Parse(embedded)
})

// Default returns the word list compiled into the binary.  It is
// parsed on first use and shared for the life of the process.
func Default() (*List, error) {
	return loadDefault()
}

// Len returns the number of words.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the words in file order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Contains reports whether w is in the list.
func (l *List) Contains(w string) bool {
	return lo.Contains(l.words, w)
}

// Source picks words uniformly at random from a List.  It is safe for
// concurrent use.
type Source struct {
	list *List

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source over list.  A zero seed draws one from the
// runtime's random source; any other value makes the sequence of picks
// reproducible.
func NewSource(list *List, seed uint64) *Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Source{
		list: list,
		rng:  rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// RandomWord returns one word chosen uniformly from the list.
func (s *Source) RandomWord() string {
	s.mu.Lock()
	i := s.rng.IntN(len(s.list.words))
	s.mu.Unlock()
	return s.list.words[i]
}
