package services

import (
	"campus-hub/auth"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const testDomain = "iub.edu.bd"

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

// newTestSession returns a session whose login delay is skipped.
func newTestSession(clock *fakeClock) *Session {
	session := NewSession(testLogger(), clock, nil,
		auth.NewTokenIssuer("test-signing-key", time.Hour),
		SessionConfig{EmailDomain: testDomain, LoginDelay: 800 * time.Millisecond})
	session.sleep = func(time.Duration) {}
	return session
}

func loggedInSession(t *testing.T, clock *fakeClock) *Session {
	t.Helper()
	session := newTestSession(clock)
	_, err := session.Login("1234567", "1234567@"+testDomain, "A B")
	require.NoError(t, err)
	return session
}
