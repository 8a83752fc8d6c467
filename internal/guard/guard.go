// Package guard decides whether access to a protected view may proceed. It
// exists to enforce one ordering rule: identity must never be evaluated
// before the session store has finished initializing, otherwise a reload
// briefly looks logged-out and triggers a spurious redirect.
package guard

import "daybook/internal/models"

// SessionState is the slice of the session store the guard consults.
type SessionState interface {
	IsReady() bool
	CurrentIdentity() *models.Identity
}

// State is the access decision for one navigation attempt.
type State int

const (
	// Pending: the session store is not ready yet; show a neutral loading
	// indicator and take no redirect action.
	Pending State = iota
	// Denied: store ready, no identity; send the user to the login entry.
	Denied
	// Allowed: store ready, identity present; render the requested view.
	Allowed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Denied:
		return "denied"
	case Allowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// Guard tracks the decision for a single navigation attempt. Once it leaves
// Pending it never goes back; re-evaluations return the resolved state.
type Guard struct {
	session  SessionState
	state    State
	resolved bool
}

func New(session SessionState) *Guard {
	return &Guard{session: session, state: Pending}
}

// Evaluate resolves the guard against the session store. Readiness is
// checked strictly before identity.
func (g *Guard) Evaluate() State {
	if g.resolved {
		return g.state
	}
	if !g.session.IsReady() {
		return Pending
	}
	if g.session.CurrentIdentity() == nil {
		g.state = Denied
	} else {
		g.state = Allowed
	}
	g.resolved = true
	return g.state
}

// Check resolves a fresh navigation attempt against the session store.
func Check(session SessionState) State {
	return New(session).Evaluate()
}
