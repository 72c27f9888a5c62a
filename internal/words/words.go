// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the vocabulary from a file or fall back to the embedded default.
//   - Keep a lookup set next to the ordered list.
//   - Act as a WordSource: PickWord returns a uniformly random word.
//
// Loading behavior (Load):
//   1. If path is set (WORDS_FILE), read one word per line from it.
//   2. Otherwise use assets/wordlist.txt.
//
// Constraints:
//   • Words must be non-empty and alphabetic a–z after lowercasing.
//   • Duplicates are dropped, first occurrence wins.
//   • The list is resident in memory; PickWord does no I/O.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmpty is returned when no usable word survives loading.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable vocabulary.
type List struct {
	words []string
	set   map[string]struct{}
}

// Load reads the vocabulary from path, or the embedded default when path is "".
func Load(path string) (*List, error) {
	var raw []string
	if path == "" {
		var err error
		raw, err = assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("read embedded word list: %w", err)
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		raw, err = readWords(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return New(raw...)
}

// New builds a List from words, normalizing and filtering them.
func New(words ...string) (*List, error) {
	l := &List{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if len(l.words) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// readWords loads one word per line, skipping blanks and '#' comments.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// PickWord returns a cryptographically random word from the list.
func (l *List) PickWord() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[nBig.Int64()]
}

// Words returns a copy of the vocabulary in load order.
func (l *List) Words() []string { return append([]string(nil), l.words...) }

// Len is the number of words.
func (l *List) Len() int { return len(l.words) }

// IsWord reports whether w is in the vocabulary.
func (l *List) IsWord(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Stats returns the word count and the shortest/longest word lengths.
func (l *List) Stats() (count, shortest, longest int) {
	shortest = len(l.words[0])
	for _, w := range l.words {
		if len(w) < shortest {
			shortest = len(w)
		}
		if len(w) > longest {
			longest = len(w)
		}
	}
	return len(l.words), shortest, longest
}

// Cycle is a deterministic source that hands out words in order, wrapping around.
type Cycle struct {
	words []string
	next  int
}

// Fixed returns a Cycle over words. It panics on an empty list.
func Fixed(words ...string) *Cycle {
	if len(words) == 0 {
		panic("words: Fixed needs at least one word")
	}
	return &Cycle{words: words}
}

// PickWord returns the next word.
func (c *Cycle) PickWord() string {
	w := c.words[c.next%len(c.words)]
	c.next++
	return w
}
