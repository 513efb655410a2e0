package e2e

import (
	"bytes"
	"campus-hub/internal"
	"campus-hub/portal"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BasePortalSuite drives an in-process portal through its shell, one
// command line at a time.
type BasePortalSuite struct {
	suite.Suite
	Config Config

	portal      *portal.Portal
	out         bytes.Buffer
	colourWas   bool
	loginDomain string
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePortalSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.loginDomain = s.Config.EmailDomain
	// Assertions read plain text.
	s.colourWas = color.Disable()
}

func (s *BasePortalSuite) TearDownSuite() {
	color.Enable = s.colourWas
}

func (s *BasePortalSuite) SetupTest() {
	level := slog.LevelError
	if s.Config.Verbose {
		level = slog.LevelDebug
	}
	s.out.Reset()
	p, err := portal.New(context.Background(), logs.GetLoggerFromLevel(level), internal.Config{
		EmailDomain:          s.loginDomain,
		UniversityName:       "Test University",
		UniversityShortName:  "TU",
		SessionTokenDuration: time.Hour,
		SessionSigningKey:    "e2e-signing-key",
		CensoredWords:        "cheat,plagiarism",
		CharReplacement:      "*",
	}, &s.out)
	s.Require().NoError(err)
	s.portal = p
}

func (s *BasePortalSuite) TearDownTest() {
	s.portal.Close()
}

// Exec runs one command line and returns what the shell printed for it.
func (s *BasePortalSuite) Exec(line string) string {
	s.out.Reset()
	s.portal.Shell.Execute(context.Background(), line)
	output := s.out.String()
	if s.Config.DebugOutput {
		s.T().Logf("> %s\n%s", line, output)
	}
	return output
}

// Step prints a header for a scenario step and runs it as a subtest.
func (s *BasePortalSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
	s.Run(name, fn)
}

func (s *BasePortalSuite) Login() {
	output := s.Exec(fmt.Sprintf("login 1234567 1234567@%s A B", s.loginDomain))
	s.Require().Contains(output, "Welcome, A B!")
}
