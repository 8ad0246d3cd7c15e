package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workzen/workzen-cli/internal/api"
	"github.com/workzen/workzen-cli/internal/credstore"
	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/ux"
)

// navRecorder counts navigation side effects.
type navRecorder struct {
	toLogin     atomic.Int32
	toDashboard atomic.Int32
}

func (n *navRecorder) NavigateToLogin()     { n.toLogin.Add(1) }
func (n *navRecorder) NavigateToDashboard() { n.toDashboard.Add(1) }

type fixture struct {
	controller *Controller
	store      *credstore.FileStore
	notifier   *ux.Recorder
	nav        *navRecorder
}

func newFixture(t *testing.T, handler http.Handler) *fixture {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := credstore.NewFileStore(t.TempDir())
	client := api.NewClient(server.URL, store, nil)
	notifier := &ux.Recorder{}
	nav := &navRecorder{}
	controller := NewController(client, store, notifier, nav, nil)
	return &fixture{controller: controller, store: store, notifier: notifier, nav: nav}
}

func ok(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func status(w http.ResponseWriter, code int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func adminUser() map[string]any {
	return map[string]any{
		"id": "u1", "username": "demoadmin", "role": "admin", "status": "active",
	}
}

func TestRestoreWithoutToken(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without a token")
	}))

	require.NoError(t, f.controller.Restore(context.Background()))

	snap := f.controller.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)
	assert.False(t, snap.IsAuthenticated())
	assert.Equal(t, int32(0), f.nav.toLogin.Load())
}

func TestRestoreSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		ok(w, adminUser())
	})
	f := newFixture(t, mux)

	f.store.SaveToken("tok")
	f.store.SaveCompany(hr.Company{ID: "c1", Name: "Acme", IsActive: true})

	require.NoError(t, f.controller.Restore(context.Background()))

	snap := f.controller.Snapshot()
	assert.True(t, snap.IsAuthenticated())
	require.NotNil(t, snap.User)
	assert.Equal(t, "demoadmin", snap.User.Username)
	require.NotNil(t, snap.Company, "cached company must be rehydrated")
	assert.Equal(t, "Acme", snap.Company.Name)
}

func TestRestoreStaleTokenNavigatesOnce(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		status(w, http.StatusUnauthorized, map[string]any{"message": "token expired"})
	})
	f := newFixture(t, mux)
	f.store.SaveToken("stale")
	f.store.SaveUser(hr.User{Username: "demoadmin"})

	err := f.controller.Restore(context.Background())
	require.Error(t, err)
	assert.True(t, wzerrors.IsSessionExpired(err))

	snap := f.controller.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)

	_, ok := f.store.Token()
	assert.False(t, ok, "credentials must be purged")

	// The unauthorized event navigates; restore must not add a second one.
	assert.Equal(t, int32(1), f.nav.toLogin.Load())
	assert.Len(t, f.notifier.Errors, 1, "session expiry must toast exactly once")
}

func TestRestoreServerFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		status(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
	})
	f := newFixture(t, mux)
	f.store.SaveToken("tok")

	err := f.controller.Restore(context.Background())
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, f.controller.Snapshot().State)
	_, ok := f.store.Token()
	assert.False(t, ok)
	assert.Equal(t, int32(1), f.nav.toLogin.Load())
}

func TestLoginRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]any{"token": "abc", "user": adminUser()})
	})
	f := newFixture(t, mux)

	err := f.controller.Login(context.Background(), hr.LoginRequest{
		Username: "demoadmin", Password: "Admin@123",
	})
	require.NoError(t, err)

	snap := f.controller.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.True(t, snap.IsAuthenticated())
	assert.True(t, f.controller.HasRole(hr.RoleAdmin))

	token, ok := f.store.Token()
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	assert.Equal(t, []string{"Login successful!"}, f.notifier.Successes)
	assert.Equal(t, int32(1), f.nav.toDashboard.Load())
}

func TestLoginFailureNotifiesAndReturns(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid credentials"})
	})
	f := newFixture(t, mux)

	err := f.controller.Login(context.Background(), hr.LoginRequest{Username: "x", Password: "y"})
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, f.controller.Snapshot().State)
	require.Len(t, f.notifier.Errors, 1)
	assert.Contains(t, f.notifier.Errors[0], "invalid credentials")
	assert.Equal(t, int32(0), f.nav.toDashboard.Load())
}

func TestSignupLeavesCallerAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "registered"})
	})
	f := newFixture(t, mux)

	err := f.controller.Signup(context.Background(), hr.SignupRequest{
		CompanyName: "Acme", Email: "a@acme.test", Phone: "1",
		FirstName: "A", LastName: "R", Password: "Secret@12",
	})
	require.NoError(t, err)

	assert.Equal(t, StateAnonymous, f.controller.Snapshot().State)
	assert.Equal(t, int32(1), f.nav.toLogin.Load())
	require.Len(t, f.notifier.Successes, 1)
	assert.Contains(t, f.notifier.Successes[0], "verification")
}

func TestLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]any{"token": "abc", "user": adminUser()})
	})
	f := newFixture(t, mux)
	require.NoError(t, f.controller.Login(context.Background(), hr.LoginRequest{Username: "demoadmin", Password: "Admin@123"}))

	f.controller.Logout()

	snap := f.controller.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Nil(t, snap.User)

	_, ok := f.store.Token()
	assert.False(t, ok)
	assert.Equal(t, int32(1), f.nav.toLogin.Load())
	assert.Equal(t, []string{"Logged out successfully"}, f.notifier.Infos)
}

func TestChangePasswordKeepsSessionIdentity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]any{"token": "abc", "user": adminUser()})
	})
	mux.HandleFunc("/auth/change-password", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	f := newFixture(t, mux)
	require.NoError(t, f.controller.Login(context.Background(), hr.LoginRequest{Username: "demoadmin", Password: "Admin@123"}))

	err := f.controller.ChangePassword(context.Background(), hr.ChangePasswordRequest{
		OldPassword: "Admin@123", NewPassword: "Newpass@123",
	})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, f.controller.Snapshot().State)
	assert.Contains(t, f.notifier.Successes, "Password changed successfully!")
}

func TestHasRole(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	f.store.SaveToken("tok")
	f.controller.setSession(StateAuthenticated, &hr.User{Username: "h", Role: hr.RoleHR}, nil)

	assert.False(t, f.controller.HasRole(hr.RoleAdmin))
	assert.True(t, f.controller.HasRole(hr.RoleHR, hr.RoleAdmin))
	assert.True(t, f.controller.HasRole(hr.RoleHR))
}

func TestHasRoleWithoutUser(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	assert.False(t, f.controller.HasRole(hr.RoleEmployee))
}

// The role string and the platform flag are independent axes. A textual
// "superadmin" role without the flag is not a super-admin, and an "admin"
// role with the flag is. HasRole(superadmin) and IsSuperAdmin can therefore
// disagree; that mirrors the backend contract and is asserted here so
// nobody "fixes" it casually.
func TestIsSuperAdminReflectsOnlyTheFlag(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	f.store.SaveToken("tok")

	f.controller.setSession(StateAuthenticated,
		&hr.User{Username: "a", Role: hr.RoleAdmin, IsSuperAdmin: true}, nil)
	assert.True(t, f.controller.IsSuperAdmin())
	assert.False(t, f.controller.HasRole(hr.RoleSuperAdmin))

	f.controller.setSession(StateAuthenticated,
		&hr.User{Username: "s", Role: hr.RoleSuperAdmin, IsSuperAdmin: false}, nil)
	assert.False(t, f.controller.IsSuperAdmin())
	assert.True(t, f.controller.HasRole(hr.RoleSuperAdmin))
}

func TestSubscribersSeeChanges(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	f.store.SaveToken("tok")
	f.controller.setSession(StateAuthenticated, &hr.User{Username: "x", Role: hr.RoleHR}, nil)

	var states []State
	unsubscribe := f.controller.Subscribe(func(snap Snapshot) {
		states = append(states, snap.State)
	})

	f.controller.Logout()
	assert.Contains(t, states, StateAnonymous)

	seen := len(states)
	unsubscribe()
	f.controller.setState(StateAnonymous)
	assert.Len(t, states, seen, "unsubscribed callback must not fire")
}

func TestTokenAbsenceForcesUnauthenticated(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	f.store.SaveToken("tok")
	f.controller.setSession(StateAuthenticated, &hr.User{Username: "x", Role: hr.RoleHR}, nil)
	require.True(t, f.controller.Snapshot().IsAuthenticated())

	// Another process purges the credential files.
	f.store.ClearAll()

	snap := f.controller.Snapshot()
	assert.False(t, snap.IsAuthenticated())
	assert.Nil(t, snap.User)
}
