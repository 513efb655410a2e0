package moderation

import (
	"log/slog"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator masks censored words in chat text. A Moderator built from an
// empty word list leaves every text untouched.
type Moderator struct {
	log         *slog.Logger
	matcher     *goahocorasick.Machine
	replacement rune
}

// folded is text reduced to comparable runes, with the position each rune
// had in the original text.
type folded struct {
	runes  []rune
	origin []int
}

func NewModerator(words []string, replacement rune, log *slog.Logger) (*Moderator, error) {
	patterns := lo.FilterMap(words, func(w string, _ int) ([]rune, bool) {
		p := fold([]rune(strings.TrimSpace(w))).runes
		return p, len(p) > 0
	})
	m := &Moderator{log: log, replacement: replacement}
	if len(patterns) == 0 {
		return m, nil
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	m.matcher = machine
	return m, nil
}

// Censor replaces every rune of a matched word, including the noise between
// its letters, and keeps everything else in place.
func (m *Moderator) Censor(text string) string {
	if m == nil || m.matcher == nil || text == "" {
		return text
	}
	original := []rune(text)
	f := fold(original)
	if len(f.runes) == 0 {
		return text
	}

	terms := m.matcher.MultiPatternSearch(f.runes, false)
	for _, term := range terms {
		start, end := term.Pos, term.Pos+len(term.Word)
		if start < 0 || end > len(f.origin) {
			continue
		}
		for i := f.origin[start]; i <= f.origin[end-1]; i++ {
			original[i] = m.replacement
		}
	}
	if len(terms) > 0 && m.log != nil {
		m.log.Debug("Censored chat text", "matches", len(terms))
	}
	return string(original)
}

func fold(input []rune) folded {
	out := folded{runes: make([]rune, 0, len(input)), origin: make([]int, 0, len(input))}
	for i, r := range input {
		r = unleet(r)
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		out.runes = append(out.runes, unicode.ToLower(r))
		out.origin = append(out.origin, i)
	}
	return out
}

func unleet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
