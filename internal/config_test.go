package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("SESSION_SIGNING_KEY", "secret")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.Equal("iub.edu.bd", config.EmailDomain)
	req.Equal(time.Second, config.LoginDelay)
	req.Equal(1500*time.Millisecond, config.ListingDelay)
	req.Equal(24*time.Hour, config.SessionTokenDuration)
	req.Nil(config.LimitMessages)
	req.Equal(DefaultUniversityName, config.University())
	req.Equal("IUB", config.UniversityShortName)
}

func TestConfig_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("SESSION_SIGNING_KEY", "secret")
	t.Setenv("LIMIT_MESSAGES", "20")
	t.Setenv("LOGIN_DELAY", "10ms")
	t.Setenv("UNIVERSITY_NAME", "North Campus")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)

	req.NoError(err)
	req.NotNil(config.LimitMessages)
	req.Equal(20, *config.LimitMessages)
	req.Equal(10*time.Millisecond, config.LoginDelay)
	req.Equal("North Campus", config.University())
}

func TestCharacterRune(t *testing.T) {
	testCases := []struct {
		input    string
		expected rune
		fails    bool
	}{
		{"*", '*', false},
		{"#", '#', false},
		{"", 0, true},
		{"**", 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			req := require.New(t)
			r, err := CharacterRune(tc.input)
			if tc.fails {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tc.expected, r)
		})
	}
}

func TestWords(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"cheat", "spam"}, Words(" cheat, ,spam ,"))
	req.Empty(Words(""))
}
