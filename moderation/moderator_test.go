package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := NewModerator([]string{"cheat", "plagiarism"}, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Clean text", "Ready for the quiz?", "Ready for the quiz?"},
		{"Single word", "Do not cheat on the quiz", "Do not ***** on the quiz"},
		{"Upper case", "CHEAT sheet", "***** sheet"},
		{"Leet speak and punctuation", "ch.3.4.t!", "********!"},
		{"Several words", "cheat and plagiarism", "***** and **********"},
		{"Accents untouched", "Un été sans cheat", "Un été sans *****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, mod.Censor(tt.input))
		})
	}
}

func TestModerator_EmptyDictionaryIsNoop(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator([]string{"", "  "}, replacementChar, slog.Default())
	req.NoError(err)
	req.Equal("anything goes", mod.Censor("anything goes"))

	var nilMod *Moderator
	req.Equal("still fine", nilMod.Censor("still fine"))
}
