package guard_test

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
	"github.com/workzen/workzen-cli/internal/guard"
	"github.com/workzen/workzen-cli/internal/hr"
	"github.com/workzen/workzen-cli/internal/session"
	"github.com/workzen/workzen-cli/internal/ux"
)

type navRecorder struct {
	toLogin     atomic.Int32
	toDashboard atomic.Int32
}

func (n *navRecorder) NavigateToLogin()     { n.toLogin.Add(1) }
func (n *navRecorder) NavigateToDashboard() { n.toDashboard.Add(1) }

// newSession builds a controller authenticated as the given user, or left
// anonymous when user is nil. The guard under test gets its own navigator so
// login-flow navigation does not leak into assertions.
func newSession(t *testing.T, user *hr.User) (*session.Controller, *guard.Guard, *navRecorder) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"token": "tok", "user": user},
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := credstore.NewFileStore(t.TempDir())
	client := api.NewClient(server.URL, store, nil)
	controller := session.NewController(client, store, &ux.Recorder{}, &navRecorder{}, nil)

	if user == nil {
		require.NoError(t, controller.Restore(context.Background()))
	} else {
		require.NoError(t, controller.Login(context.Background(), hr.LoginRequest{
			Username: user.Username, Password: "Secret@12",
		}))
	}

	nav := &navRecorder{}
	return controller, guard.New(controller, nav), nav
}

func TestAnonymousRedirectsToLogin(t *testing.T) {
	_, g, nav := newSession(t, nil)

	decision := g.Require(hr.RoleHR)

	assert.Equal(t, guard.DecisionRedirectLogin, decision)
	assert.Equal(t, int32(1), nav.toLogin.Load())
	assert.Equal(t, int32(0), nav.toDashboard.Load())
}

func TestDisallowedRoleRedirectsToDashboard(t *testing.T) {
	_, g, nav := newSession(t, &hr.User{Username: "emp", Role: hr.RoleEmployee, Status: hr.UserActive})

	decision := g.Require(hr.RoleHR, hr.RoleAdmin)

	assert.Equal(t, guard.DecisionRedirectDashboard, decision)
	assert.Equal(t, int32(0), nav.toLogin.Load())
	assert.Equal(t, int32(1), nav.toDashboard.Load())
}

func TestAllowedRolePasses(t *testing.T) {
	_, g, nav := newSession(t, &hr.User{Username: "hrm", Role: hr.RoleHR, Status: hr.UserActive})

	assert.Equal(t, guard.DecisionAllow, g.Require(hr.RoleHR, hr.RoleAdmin))
	assert.Equal(t, int32(0), nav.toLogin.Load())
	assert.Equal(t, int32(0), nav.toDashboard.Load())
}

func TestEmptyAllowListAdmitsAnyAuthenticatedUser(t *testing.T) {
	_, g, _ := newSession(t, &hr.User{Username: "emp", Role: hr.RoleEmployee, Status: hr.UserActive})
	assert.Equal(t, guard.DecisionAllow, g.Require())
}

func TestUninitializedSessionIsPending(t *testing.T) {
	store := credstore.NewFileStore(t.TempDir())
	client := api.NewClient("http://127.0.0.1:0", store, nil)
	controller := session.NewController(client, store, &ux.Recorder{}, &navRecorder{}, nil)

	nav := &navRecorder{}
	g := guard.New(controller, nav)

	assert.Equal(t, guard.DecisionPending, g.Require(hr.RoleAdmin))
	assert.Equal(t, int32(0), nav.toLogin.Load())
	assert.Equal(t, int32(0), nav.toDashboard.Load())
}

func TestSuperAdminGateIgnoresRoleString(t *testing.T) {
	t.Run("admin role with flag passes", func(t *testing.T) {
		_, g, _ := newSession(t, &hr.User{
			Username: "root", Role: hr.RoleAdmin, IsSuperAdmin: true, Status: hr.UserActive,
		})
		assert.Equal(t, guard.DecisionAllow, g.RequireSuperAdmin())
	})

	t.Run("superadmin role without flag is refused", func(t *testing.T) {
		_, g, nav := newSession(t, &hr.User{
			Username: "named", Role: hr.RoleSuperAdmin, IsSuperAdmin: false, Status: hr.UserActive,
		})
		assert.Equal(t, guard.DecisionRedirectDashboard, g.RequireSuperAdmin())
		assert.Equal(t, int32(1), nav.toDashboard.Load())
	})
}

func TestCheckMapsDecisionsToErrors(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		_, g, _ := newSession(t, nil)
		err := g.Check(hr.RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, wzerrors.CodeSessionExpired, wzerrors.CodeOf(err))
	})

	t.Run("wrong role", func(t *testing.T) {
		_, g, _ := newSession(t, &hr.User{Username: "emp", Role: hr.RoleEmployee, Status: hr.UserActive})
		err := g.Check(hr.RoleAdmin)
		require.Error(t, err)
		assert.Equal(t, wzerrors.CodeRequestFailed, wzerrors.CodeOf(err))
	})

	t.Run("allowed", func(t *testing.T) {
		_, g, _ := newSession(t, &hr.User{Username: "adm", Role: hr.RoleAdmin, Status: hr.UserActive})
		assert.NoError(t, g.Check(hr.RoleAdmin))
	})
}

func TestWatchReactsToSessionChanges(t *testing.T) {
	controller, g, nav := newSession(t, &hr.User{Username: "hrm", Role: hr.RoleHR, Status: hr.UserActive})

	var decisions []guard.Decision
	stop := g.Watch(func(d guard.Decision) { decisions = append(decisions, d) }, hr.RoleHR)
	defer stop()

	require.Equal(t, []guard.Decision{guard.DecisionAllow}, decisions)

	controller.Logout()

	require.Len(t, decisions, 2)
	assert.Equal(t, guard.DecisionRedirectLogin, decisions[1])
	assert.Equal(t, int32(1), nav.toLogin.Load(), "one verdict change, one redirect")

	// A second anonymous-state publish must not redirect again.
	controller.Logout()
	assert.Len(t, decisions, 2)
	assert.Equal(t, int32(1), nav.toLogin.Load())
}

func TestWatchStops(t *testing.T) {
	controller, g, _ := newSession(t, &hr.User{Username: "hrm", Role: hr.RoleHR, Status: hr.UserActive})

	calls := 0
	stop := g.Watch(func(guard.Decision) { calls++ }, hr.RoleHR)
	stop()

	controller.Logout()
	assert.Equal(t, 1, calls, "only the initial verdict should have been delivered")
}
