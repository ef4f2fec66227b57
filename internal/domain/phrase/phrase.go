// Package phrase provides the immutable phrase rotation shown by the typing animator.
package phrase

import (
	"github.com/cockroachdb/errors"
)

// Errors
var (
	ErrNoPhrases   = errors.New("phrase list is empty")
	ErrEmptyPhrase = errors.New("phrase is empty")
)

// List is an ordered, non-empty rotation of phrases.
// The zero value is an empty list and is rejected by the animator.
type List struct {
	items []string
	runes [][]rune
}

// New creates a phrase list. The input slice is copied.
func New(phrases ...string) (List, error) {
	if len(phrases) == 0 {
		return List{}, ErrNoPhrases
	}

	l := List{
		items: make([]string, len(phrases)),
		runes: make([][]rune, len(phrases)),
	}
	for i, p := range phrases {
		if p == "" {
			return List{}, errors.Wrapf(ErrEmptyPhrase, "phrase index %d", i)
		}
		l.items[i] = p
		l.runes[i] = []rune(p)
	}
	return l, nil
}

// MustNew is like New but panics on error.
func MustNew(phrases ...string) List {
	l, err := New(phrases...)
	if err != nil {
		panic(err)
	}
	return l
}

// Len returns the number of phrases.
func (l List) Len() int {
	return len(l.items)
}

// Empty reports whether the list holds no phrases.
func (l List) Empty() bool {
	return len(l.items) == 0
}

// At returns the phrase at index i.
func (l List) At(i int) string {
	return l.items[i]
}

// RuneLen returns the length of phrase i in runes.
func (l List) RuneLen(i int) int {
	return len(l.runes[i])
}

// Prefix returns the first n runes of phrase i.
// n is clamped to [0, RuneLen(i)].
func (l List) Prefix(i, n int) string {
	r := l.runes[i]
	switch {
	case n <= 0:
		return ""
	case n >= len(r):
		return l.items[i]
	}
	return string(r[:n])
}

// Next returns the index following i, wrapping to 0.
func (l List) Next(i int) int {
	return (i + 1) % len(l.items)
}

// Strings returns a copy of the phrases.
func (l List) Strings() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// CycleSteps returns the number of steps needed to type and delete every
// phrase once.
func (l List) CycleSteps() int {
	var total int
	for _, r := range l.runes {
		total += 2 * len(r)
	}
	return total
}
