package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionBusy means another command held the dispatch gate for the whole
// wait, and the caller's context gave up first.
var ErrSessionBusy = errors.New("another command is dispatching")

// Session holds per-command state: the lock token identifying the command
// and the last successfully resolved coordinate, which reference-action
// steps ("click it") are resolved against. A session lives for exactly one
// command; nothing here is global.
type Session struct {
	ID string

	mu        sync.Mutex
	lastCoord [2]int
	hasCoord  bool
}

// NewSession creates a session with a fresh lock token.
func NewSession() *Session {
	return &Session{ID: uuid.NewString()}
}

// LastCoordinate returns the most recently resolved coordinate, if any.
func (s *Session) LastCoordinate() ([2]int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCoord, s.hasCoord
}

// setLastCoordinate records a successful resolution. Failed resolutions
// never overwrite it.
func (s *Session) setLastCoordinate(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCoord = [2]int{x, y}
	s.hasCoord = true
}

// Gate serializes action-primitive dispatch: the screen and input devices
// are one shared resource, so a second command must not interleave its
// clicks with an in-flight sequence.
type Gate struct {
	sem chan struct{}

	mu     sync.Mutex
	holder string
}

// NewGate creates an unheld gate.
func NewGate() *Gate {
	return &Gate{sem: make(chan struct{}, 1)}
}

// Acquire blocks until the gate is free or ctx is done. The returned
// release function must be called exactly once.
func (g *Gate) Acquire(ctx context.Context, token string) (func(), error) {
	select {
	case g.sem <- struct{}{}:
	default:
		select {
		case g.sem <- struct{}{}:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrSessionBusy, ctx.Err())
		}
	}
	g.mu.Lock()
	g.holder = token
	g.mu.Unlock()
	return func() {
		g.mu.Lock()
		g.holder = ""
		g.mu.Unlock()
		<-g.sem
	}, nil
}

// Holder returns the token of the command currently dispatching, if any.
func (g *Gate) Holder() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.holder
}
