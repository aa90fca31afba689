package service

import "sync"

const (
	maxFreeAttempts     = 5
	initialPenaltyUnits = 20
	penaltyStepUnits    = 10
)

// loginGuard tracks consecutive failures for one login session. After
// maxFreeAttempts failures every further failure blocks the caller for an
// escalating penalty (20, 30, 40, ... units) before control returns.
type loginGuard struct {
	attempts     int
	penaltyUnits int
}

// RecordFailure bumps the counter and returns the penalty to serve in time
// units, zero while the session still has free attempts left.
func (g *loginGuard) RecordFailure() int {
	g.attempts++
	if g.attempts < maxFreeAttempts {
		return 0
	}
	if g.penaltyUnits == 0 {
		g.penaltyUnits = initialPenaltyUnits
	} else {
		g.penaltyUnits += penaltyStepUnits
	}
	return g.penaltyUnits
}

// guardRegistry holds the per-session guards. State is in-process only: it
// does not survive a restart, and it is a throttle against a single client,
// not a security boundary against distributed attackers.
type guardRegistry struct {
	mu     sync.Mutex
	guards map[string]*loginGuard
}

func newGuardRegistry() *guardRegistry {
	return &guardRegistry{guards: make(map[string]*loginGuard)}
}

// fail records a failed attempt for the session and returns the penalty
// owed in time units
func (r *guardRegistry) fail(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.guards[sessionID]
	if !ok {
		g = &loginGuard{}
		r.guards[sessionID] = g
	}
	return g.RecordFailure()
}

// succeed resets the session's guard
func (r *guardRegistry) succeed(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guards, sessionID)
}
