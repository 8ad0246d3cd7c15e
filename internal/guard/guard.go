// Package guard gates access to protected operations based on the current
// session. It mirrors the access rules the server enforces so the client can
// fail fast with a useful message instead of a round trip.
package guard

import (
	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/session"
)

// Decision is the outcome of evaluating a session against an allow-list.
type Decision int

const (
	// DecisionPending means the session is still being restored and no
	// verdict can be given yet.
	DecisionPending Decision = iota
	// DecisionAllow grants access.
	DecisionAllow
	// DecisionRedirectLogin means there is no authenticated user.
	DecisionRedirectLogin
	// DecisionRedirectDashboard means the user is authenticated but their
	// role is not on the allow-list.
	DecisionRedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectDashboard:
		return "redirect-dashboard"
	default:
		return "unknown"
	}
}

// Guard evaluates role allow-lists against a session controller.
type Guard struct {
	controller *session.Controller
	navigator  session.Navigator
}

// New returns a Guard. The navigator receives redirect side effects; pass nil
// to evaluate decisions without navigation.
func New(controller *session.Controller, navigator session.Navigator) *Guard {
	return &Guard{controller: controller, navigator: navigator}
}

// Evaluate returns the verdict for a snapshot against an allow-list without
// side effects. An empty allow-list admits any authenticated user.
func Evaluate(snap session.Snapshot, allowed ...hr.Role) Decision {
	if snap.IsLoading() {
		return DecisionPending
	}
	if !snap.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if len(allowed) == 0 {
		return DecisionAllow
	}
	if snap.User.Role.In(allowed...) {
		return DecisionAllow
	}
	return DecisionRedirectDashboard
}

// Require evaluates the current session and performs the redirect a
// non-allow verdict calls for.
func (g *Guard) Require(allowed ...hr.Role) Decision {
	decision := Evaluate(g.controller.Snapshot(), allowed...)
	g.redirect(decision)
	return decision
}

// RequireSuperAdmin admits only users carrying the platform super-admin
// flag. The flag is independent of the role string: an "admin" with the flag
// passes, a "superadmin" role without it does not.
func (g *Guard) RequireSuperAdmin() Decision {
	snap := g.controller.Snapshot()
	decision := Evaluate(snap)
	if decision == DecisionAllow && !snap.User.IsSuperAdmin {
		decision = DecisionRedirectDashboard
	}
	g.redirect(decision)
	return decision
}

// Check is the command-facing form of Require: it returns nil on allow and a
// coded error otherwise, so callers can surface it through the usual error
// path instead of branching on decisions.
func (g *Guard) Check(allowed ...hr.Role) error {
	return decisionError(g.Require(allowed...))
}

// CheckSuperAdmin is Check for the super-admin flag gate.
func (g *Guard) CheckSuperAdmin() error {
	return decisionError(g.RequireSuperAdmin())
}

// Watch re-evaluates the allow-list whenever the session changes and fires
// onChange with each new verdict. Redirects happen at most once per verdict
// change. The returned function stops watching.
func (g *Guard) Watch(onChange func(Decision), allowed ...hr.Role) func() {
	last := Evaluate(g.controller.Snapshot(), allowed...)
	g.redirect(last)
	if onChange != nil {
		onChange(last)
	}
	return g.controller.Subscribe(func(snap session.Snapshot) {
		decision := Evaluate(snap, allowed...)
		if decision == last {
			return
		}
		last = decision
		g.redirect(decision)
		if onChange != nil {
			onChange(decision)
		}
	})
}

func (g *Guard) redirect(decision Decision) {
	if g.navigator == nil {
		return
	}
	switch decision {
	case DecisionRedirectLogin:
		g.navigator.NavigateToLogin()
	case DecisionRedirectDashboard:
		g.navigator.NavigateToDashboard()
	}
}

func decisionError(decision Decision) error {
	switch decision {
	case DecisionAllow:
		return nil
	case DecisionRedirectLogin:
		return wzerrors.New(wzerrors.CodeSessionExpired, "you are not logged in").
			WithSuggestion("Run 'workzen login' to authenticate")
	case DecisionRedirectDashboard:
		return wzerrors.New(wzerrors.CodeRequestFailed, "your role does not have access to this resource")
	default:
		return wzerrors.New(wzerrors.CodeRequestFailed, "session state is still loading")
	}
}
