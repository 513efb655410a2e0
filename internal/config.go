package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DefaultUniversityName holds a comma, which go-env tag defaults cannot.
const DefaultUniversityName = "Independent University, Bangladesh"

// Config is read from the environment, after an optional .env file.
type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	EmailDomain          string        `env:"EMAIL_DOMAIN,default=iub.edu.bd"`
	UniversityName       string        `env:"UNIVERSITY_NAME"`
	UniversityShortName  string        `env:"UNIVERSITY_SHORT_NAME,default=IUB"`
	LoginDelay           time.Duration `env:"LOGIN_DELAY,default=1s"`
	ListingDelay         time.Duration `env:"LISTING_DELAY,default=1500ms"`
	SessionTokenDuration time.Duration `env:"SESSION_TOKEN_DURATION,default=24h"`
	SessionSigningKey    string        `env:"SESSION_SIGNING_KEY,required=true"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
}

func (c Config) University() string {
	if strings.TrimSpace(c.UniversityName) == "" {
		return DefaultUniversityName
	}
	return c.UniversityName
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// Words splits a comma separated list, dropping blank entries.
func Words(list string) []string {
	return lo.FilterMap(strings.Split(list, ","), func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(w)
		return w, w != ""
	})
}
