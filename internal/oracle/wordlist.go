package oracle

import (
	"bufio"
	"context"
	_ "embed"
	"io"
	"strings"
	"sync"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// Wordlist is an offline Oracle backed by a set of lowercased passwords.
// Matching is case-insensitive exact equality; there is no fuzzy matching.
type Wordlist struct {
	words map[string]struct{}
}

var (
	defaultWordlist     *Wordlist
	defaultWordlistOnce sync.Once
)

// DefaultWordlist returns the list embedded in the binary. It is parsed on
// first use and shared afterwards.
func DefaultWordlist() *Wordlist {
	defaultWordlistOnce.Do(func() {
		defaultWordlist, _ = ReadWordlist(strings.NewReader(commonPasswordsRaw))
	})
	return defaultWordlist
}

// NewWordlist builds a Wordlist from the given passwords. Blank entries are skipped.
func NewWordlist(words ...string) *Wordlist {
	w := &Wordlist{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		w.add(word)
	}
	return w
}

// ReadWordlist reads one password per line from r.
func ReadWordlist(r io.Reader) (*Wordlist, error) {
	w := &Wordlist{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Wordlist) add(word string) {
	word = strings.TrimRight(word, "\r\n")
	if strings.TrimSpace(word) == "" {
		return
	}
	w.words[strings.ToLower(word)] = struct{}{}
}

// Len returns the number of distinct entries.
func (w *Wordlist) Len() int {
	return len(w.words)
}

// Contains reports whether password is in the list, ignoring case.
func (w *Wordlist) Contains(password string) bool {
	_, ok := w.words[strings.ToLower(password)]
	return ok
}

func (w *Wordlist) IsCompromised(_ context.Context, password string) bool {
	return w.Contains(password)
}
