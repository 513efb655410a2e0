package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_OUTPUT dumps the shell output of every step
	DebugOutput bool `envconfig:"E2E_DEBUG_OUTPUT" default:"false"`
	// E2E_COLOURS enables colorized step headers
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_VERBOSE logs the portal at debug level
	Verbose     bool   `envconfig:"E2E_VERBOSE" default:"false"`
	EmailDomain string `envconfig:"E2E_EMAIL_DOMAIN" default:"iub.edu.bd"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
