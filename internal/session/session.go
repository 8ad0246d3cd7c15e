// Package session owns the in-memory authentication state: who is logged
// in, which company they belong to, and where the state machine currently
// sits. Everything else asks this package instead of touching credentials.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/workzen/workzen-cli/internal/api"
	"github.com/workzen/workzen-cli/internal/credstore"
	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/log"
	"github.com/workzen/workzen-cli/internal/ux"
)

// State is the session lifecycle position.
type State int

const (
	// StateUninitialized is the state before Restore has run.
	StateUninitialized State = iota
	// StateRestoring is the transient state while a persisted token is
	// being turned back into a populated session.
	StateRestoring
	// StateAuthenticated means a user and a valid token are present.
	StateAuthenticated
	// StateAnonymous means no session exists.
	StateAnonymous
	// StateSubmitting is the transient state during login, signup, or
	// password change.
	StateSubmitting
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Navigator receives the navigation side effects the session layer decides
// on. The CLI maps these onto user guidance; tests record them.
type Navigator interface {
	NavigateToLogin()
	NavigateToDashboard()
}

// Snapshot is an immutable view of the session at one instant.
type Snapshot struct {
	State   State
	User    *hr.User
	Company *hr.Company
}

// IsAuthenticated reports whether a user is present in an authenticated
// state. Token absence always forces false: populated in-memory state
// without a token never counts.
func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateAuthenticated && s.User != nil
}

// IsLoading reports whether the session is in a transient state.
func (s Snapshot) IsLoading() bool {
	return s.State == StateRestoring || s.State == StateSubmitting ||
		s.State == StateUninitialized
}

// Controller orchestrates login, signup, logout, password change, and
// session restore, and answers role queries. It is constructed once at
// startup and shared; all methods are safe for concurrent use.
type Controller struct {
	client    *api.Client
	store     credstore.Store
	notifier  ux.Notifier
	navigator Navigator
	logger    *log.Logger

	mu      sync.Mutex
	state   State
	user    *hr.User
	company *hr.Company

	subsMu sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// NewController wires the controller to its collaborators and subscribes to
// the client's unauthorized event, so a 401 anywhere tears the session down
// here rather than inside the transport.
func NewController(client *api.Client, store credstore.Store, notifier ux.Notifier, navigator Navigator, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	c := &Controller{
		client:    client,
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
		state:     StateUninitialized,
		subs:      make(map[int]func(Snapshot)),
	}
	client.OnUnauthorized(c.handleUnauthorized)
	return c
}

// Snapshot returns the current session view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{State: c.state}
	if c.user != nil {
		u := *c.user
		snap.User = &u
	}
	if c.company != nil {
		co := *c.company
		snap.Company = &co
	}
	// A missing token invalidates any in-memory user state.
	if snap.State == StateAuthenticated {
		if _, ok := c.store.Token(); !ok {
			snap.State = StateAnonymous
			snap.User = nil
			snap.Company = nil
		}
	}
	return snap
}

// Subscribe registers fn to run on every session change and returns an
// unsubscribe function. The guard uses this to re-evaluate reactively.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.subsMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subsMu.Unlock()
	return func() {
		c.subsMu.Lock()
		delete(c.subs, id)
		c.subsMu.Unlock()
	}
}

func (c *Controller) setState(state State) {
	c.mu.Lock()
	c.state = state
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap)
}

func (c *Controller) setSession(state State, user *hr.User, company *hr.Company) {
	c.mu.Lock()
	c.state = state
	c.user = user
	c.company = company
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap)
}

// publish runs outside the state lock so subscribers can call back into the
// controller.
func (c *Controller) publish(snap Snapshot) {
	c.subsMu.Lock()
	fns := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.Unlock()
	for _, fn := range fns {
		fn(snap)
	}
}

// Restore turns a persisted token back into a populated session. With no
// token it settles straight to anonymous. A stale token is purged and the
// visitor is sent to login.
func (c *Controller) Restore(ctx context.Context) error {
	if _, ok := c.store.Token(); !ok {
		c.setSession(StateAnonymous, nil, nil)
		return nil
	}

	c.setState(StateRestoring)

	user, err := c.client.Me(ctx)
	if err != nil {
		c.logger.WithError(err).Debug("session restore failed")
		c.store.ClearAll()
		c.setSession(StateAnonymous, nil, nil)
		// A 401 already navigated via the unauthorized event; don't
		// double up.
		if !wzerrors.IsSessionExpired(err) {
			c.navigator.NavigateToLogin()
		}
		return err
	}

	var company *hr.Company
	if cached, ok := c.store.Company(); ok {
		company = &cached
	}
	c.setSession(StateAuthenticated, user, company)
	c.logger.Debug("session restored", "username", user.Username, "role", string(user.Role))
	return nil
}

// Login authenticates and, on success, populates the session and navigates
// to the dashboard. On failure the user is notified and the error returned,
// so the caller can keep its own submitting state in sync.
func (c *Controller) Login(ctx context.Context, req hr.LoginRequest) error {
	c.setState(StateSubmitting)

	resp, err := c.client.Login(ctx, req)
	if err != nil {
		c.setSession(StateAnonymous, nil, nil)
		c.notifyError(err, "Login failed")
		return err
	}

	user := resp.User
	c.setSession(StateAuthenticated, &user, resp.Company)
	c.notifier.Success("Login successful!")
	c.navigator.NavigateToDashboard()
	return nil
}

// Signup registers a company and admin account. The caller stays
// anonymous; on success they are pointed at login.
func (c *Controller) Signup(ctx context.Context, req hr.SignupRequest) error {
	prev := c.Snapshot()
	c.setState(StateSubmitting)

	_, err := c.client.Signup(ctx, req)
	if err != nil {
		c.setState(prev.State)
		c.notifyError(err, "Signup failed")
		return err
	}

	c.setSession(StateAnonymous, nil, nil)
	c.notifier.Success("Signup successful! Please check your email for verification.")
	c.navigator.NavigateToLogin()
	return nil
}

// Logout purges credentials, clears the in-memory session, and navigates to
// login. Nothing of the old session survives.
func (c *Controller) Logout() {
	c.store.ClearAll()
	c.setSession(StateAnonymous, nil, nil)
	c.notifier.Info("Logged out successfully")
	c.navigator.NavigateToLogin()
}

// ChangePassword changes the caller's password without touching session
// identity.
func (c *Controller) ChangePassword(ctx context.Context, req hr.ChangePasswordRequest) error {
	prev := c.Snapshot()
	c.setState(StateSubmitting)

	err := c.client.ChangePassword(ctx, req)
	if err != nil {
		c.setState(prev.State)
		c.notifyError(err, "Failed to change password")
		return err
	}

	c.setState(prev.State)
	c.notifier.Success("Password changed successfully!")
	return nil
}

// RefreshUser re-fetches the current user from the backend.
func (c *Controller) RefreshUser(ctx context.Context) error {
	return c.Restore(ctx)
}

// HasRole reports whether the current user's role is a member of the given
// set. No user means no role.
func (c *Controller) HasRole(roles ...hr.Role) bool {
	snap := c.Snapshot()
	if snap.User == nil {
		return false
	}
	return snap.User.Role.In(roles...)
}

// IsSuperAdmin reports the explicit platform flag. This is a separate axis
// from the role string: a user whose role reads "superadmin" but whose flag
// is unset is NOT a super-admin here, and a role of "admin" with the flag
// set IS. The two are not reconciled on the client.
func (c *Controller) IsSuperAdmin() bool {
	snap := c.Snapshot()
	return snap.User != nil && snap.User.IsSuperAdmin
}

// handleUnauthorized is the subscriber side of the 401 event: the client
// has already purged the store, exactly once per authenticated period.
func (c *Controller) handleUnauthorized() {
	c.setSession(StateAnonymous, nil, nil)
	c.notifier.Error("Session expired. Please login again.")
	c.navigator.NavigateToLogin()
}

// notifyError surfaces a failure unless the session-expiry path already
// told the user what happened.
func (c *Controller) notifyError(err error, fallbackMsg string) {
	if wzerrors.IsSessionExpired(err) {
		return
	}
	var wz *wzerrors.WorkZenError
	if errors.As(err, &wz) && wz.Message != "" {
		c.notifier.Error(wz.Message)
		return
	}
	c.notifier.Error(fallbackMsg)
}
