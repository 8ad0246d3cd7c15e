package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wzerrors "github.com/workzen/workzen-cli/internal/errors"
	"github.com/workzen/workzen-cli/internal/hr"
)

func TestNonEmpty(t *testing.T) {
	check := NonEmpty("username")
	assert.NoError(t, check("demoadmin"))
	assert.Error(t, check(""))
	assert.Error(t, check("   "), "whitespace-only input counts as empty")
}

func TestMinLength(t *testing.T) {
	check := MinLength("password", MinPasswordLength)
	assert.Error(t, check("short"))
	assert.NoError(t, check("longenough"))
}

func TestEmail(t *testing.T) {
	check := Email("email")
	assert.NoError(t, check("hr@acme.test"))
	assert.Error(t, check(""))
	assert.Error(t, check("not-an-address"))
}

func TestMatches(t *testing.T) {
	password := "Secret@12"
	check := Matches("password confirmation", &password)
	assert.NoError(t, check("Secret@12"))
	assert.Error(t, check("Different"))

	// The target is read at validation time, not at construction.
	password = "Changed@12"
	assert.NoError(t, check("Changed@12"))
}

func TestLogin(t *testing.T) {
	assert.NoError(t, Login(hr.LoginRequest{Username: "u", Password: "p"}))

	err := Login(hr.LoginRequest{Password: "p"})
	require.Error(t, err)
	assert.Equal(t, wzerrors.CodeValidation, wzerrors.CodeOf(err))
	assert.Contains(t, err.Error(), "username")

	err = Login(hr.LoginRequest{Username: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestSignup(t *testing.T) {
	valid := hr.SignupRequest{
		CompanyName: "Acme",
		Email:       "owner@acme.test",
		Phone:       "555-0100",
		FirstName:   "Ada",
		LastName:    "Root",
		Password:    "Secret@12",
	}
	assert.NoError(t, Signup(valid, "Secret@12"))

	tests := []struct {
		name    string
		mutate  func(*hr.SignupRequest)
		confirm string
		wantMsg string
	}{
		{"missing company", func(r *hr.SignupRequest) { r.CompanyName = "" }, "Secret@12", "company name"},
		{"bad email", func(r *hr.SignupRequest) { r.Email = "nope" }, "Secret@12", "email"},
		{"short password", func(r *hr.SignupRequest) { r.Password = "abc" }, "abc", "at least"},
		{"confirmation mismatch", func(r *hr.SignupRequest) {}, "Other@123", "does not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := Signup(req, tt.confirm)
			require.Error(t, err)
			assert.Equal(t, wzerrors.CodeValidation, wzerrors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestPasswordChange(t *testing.T) {
	valid := hr.ChangePasswordRequest{OldPassword: "Old@12345", NewPassword: "New@12345"}
	assert.NoError(t, PasswordChange(valid, "New@12345"))

	err := PasswordChange(hr.ChangePasswordRequest{NewPassword: "New@12345"}, "New@12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current password")

	err = PasswordChange(hr.ChangePasswordRequest{OldPassword: "Old@12345", NewPassword: "short"}, "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least")

	err = PasswordChange(hr.ChangePasswordRequest{OldPassword: "Same@1234", NewPassword: "Same@1234"}, "Same@1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differ")

	err = PasswordChange(valid, "Typo@12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}
