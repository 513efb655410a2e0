//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session.go -package=mocks
package services

import (
	"campus-hub/auth"
	"campus-hub/contract"
	"campus-hub/domain"
	"campus-hub/domain/event"
	"campus-hub/errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type SessionState int

const (
	StateAnonymous SessionState = iota
	StateAuthenticating
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// ISession is the handle every other service is built with. Require is the
// gate: it returns the current identity or ErrNotAuthenticated.
type ISession interface {
	Require() (domain.Identity, error)
	OnLogout(hook func())
}

type SessionConfig struct {
	EmailDomain string
	LoginDelay  time.Duration
}

// Session holds the authenticated identity, if any.
//
// anonymous -> authenticating on Login, then authenticated on success or
// back to anonymous with LastError set. authenticated -> anonymous on Logout.
type Session struct {
	log    *slog.Logger
	clock  contract.Clock
	sink   contract.EventSink
	tokens auth.TokenIssuer
	config SessionConfig
	sleep  func(time.Duration)

	mu       sync.Mutex
	state    SessionState
	identity domain.Identity
	token    string
	lastErr  error
	hooks    []func()
}

func NewSession(log *slog.Logger, clock contract.Clock, sink contract.EventSink, tokens auth.TokenIssuer, config SessionConfig) *Session {
	return &Session{
		log:    log,
		clock:  clock,
		sink:   sink,
		tokens: tokens,
		config: config,
		sleep:  time.Sleep,
	}
}

// Login waits the simulated round trip, validates the credentials and
// opens the session. The wait cannot be interrupted.
func (s *Session) Login(studentID, email, name string) (domain.Identity, error) {
	s.mu.Lock()
	switch s.state {
	case StateAuthenticating:
		s.mu.Unlock()
		return domain.Identity{}, errors.ErrLoginInProgress
	case StateAuthenticated:
		s.mu.Unlock()
		return domain.Identity{}, errors.ErrAlreadyAuthenticated
	}
	s.state = StateAuthenticating
	s.lastErr = nil
	s.mu.Unlock()

	s.sleep(s.config.LoginDelay)

	identity, token, err := s.authenticate(studentID, email, name)

	s.mu.Lock()
	if err != nil {
		s.state = StateAnonymous
		s.lastErr = err
		s.mu.Unlock()
		s.log.Info("Login rejected", "student_id", studentID, "error", err)
		return domain.Identity{}, err
	}
	s.state = StateAuthenticated
	s.identity = identity
	s.token = token
	s.mu.Unlock()

	s.log.Info("Login succeeded", "student_id", identity.StudentID)
	publish(s.log, s.sink, event.LoggedIn{Identity: identity, At: s.clock.Now()})
	return identity, nil
}

func (s *Session) authenticate(studentID, email, name string) (domain.Identity, string, error) {
	req := auth.LoginRequest{StudentID: studentID, Email: email, Name: name}
	if err := auth.ValidateLogin(req, s.config.EmailDomain); err != nil {
		return domain.Identity{}, "", err
	}
	identity := domain.NewIdentity(studentID, email, name)
	token, err := s.tokens.GenerateToken(identity, s.clock.Now())
	if err != nil {
		return domain.Identity{}, "", fmt.Errorf("issue session token: %w", err)
	}
	return identity, token, nil
}

// Logout closes the session and runs the teardown hooks. Calling it
// without a session does nothing.
func (s *Session) Logout() {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return
	}
	studentID := s.identity.StudentID
	s.state = StateAnonymous
	s.identity = domain.Identity{}
	s.token = ""
	hooks := append([]func(){}, s.hooks...)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
	s.log.Info("Logged out", "student_id", studentID)
	publish(s.log, s.sink, event.LoggedOut{StudentID: studentID, At: s.clock.Now()})
}

// Require returns the identity carried by a valid session token. An expired
// token ends the session.
func (s *Session) Require() (domain.Identity, error) {
	s.mu.Lock()
	state, token := s.state, s.token
	s.mu.Unlock()

	if state != StateAuthenticated {
		return domain.Identity{}, errors.ErrNotAuthenticated
	}
	identity, err := s.tokens.ValidateToken(token, s.clock.Now())
	if err != nil {
		s.log.Warn("Session token rejected", "error", err)
		s.Logout()
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrNotAuthenticated, err)
	}
	return identity, nil
}

// OnLogout registers state that must die with the session.
func (s *Session) OnLogout(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns the current identity without checking the token.
func (s *Session) Identity() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.state == StateAuthenticated
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// LastError is the error of the last failed login, cleared by the next attempt.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
