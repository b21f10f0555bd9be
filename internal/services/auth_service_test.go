package services

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pepine/internal/apperrors"
	"github.com/example/pepine/internal/models"
	"github.com/example/pepine/internal/utils"
)

func newAuthService(t *testing.T) (*AuthService, *fakeMailer) {
	t.Helper()

	mailer := &fakeMailer{}
	return NewAuthService(newTestDB(t), testConfig(), mailer), mailer
}

func register(t *testing.T, svc *AuthService, email, password string) *models.User {
	t.Helper()

	user, token, err := svc.Register(RegisterInput{
		FirstName: "Claire",
		LastName:  "Martin",
		Email:     email,
		Password:  password,
		Phone:     "+33 6 12 34 56 78",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user := register(t, svc, "Claire@Example.com", "secret-1")

	// email normalized, password stored hashed, role defaulted
	assert.Equal(t, "claire@example.com", user.Email)
	assert.NotEqual(t, "secret-1", user.Password)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	logged, token, err := svc.Login("claire@example.com", "secret-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims, err := utils.ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "claire@example.com", claims.Email)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	svc, _ := newAuthService(t)

	register(t, svc, "claire@example.com", "secret-1")

	_, _, err := svc.Register(RegisterInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "claire@example.com",
		Password:  "secret-2",
		Phone:     "+33 6 98 76 54 32",
	})
	requireKind(t, err, apperrors.Conflict)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	register(t, svc, "claire@example.com", "secret-1")

	_, _, err := svc.Login("claire@example.com", "wrong")
	requireKind(t, err, apperrors.Unauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login("nobody@example.com", "secret")
	requireKind(t, err, apperrors.Unauthorized)
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	svc, mailer := newAuthService(t)

	user := register(t, svc, "claire@example.com", "secret-1")

	require.NoError(t, svc.ForgotPassword("Claire@Example.com"))

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, user.Email, mailer.to)
	assert.Contains(t, mailer.body, "http://localhost:3000/reset-password/")
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, mailer := newAuthService(t)

	err := svc.ForgotPassword("nobody@example.com")
	requireKind(t, err, apperrors.NotFound)
	assert.Zero(t, mailer.sent)
}

func TestForgotPasswordMailFailureClassified(t *testing.T) {
	svc, mailer := newAuthService(t)
	mailer.err = &net.DNSError{Name: "smtp.example.com", IsNotFound: true}

	register(t, svc, "claire@example.com", "secret-1")

	err := svc.ForgotPassword("claire@example.com")
	requireKind(t, err, apperrors.ServiceUnavailable)
}

func TestResetPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	user := register(t, svc, "claire@example.com", "old-secret")

	token, err := utils.GenerateToken("test-secret", user.ID, user.Email, user.Role, time.Hour)
	require.NoError(t, err)

	_, err = svc.ResetPassword(token, "new-secret")
	require.NoError(t, err)

	_, _, err = svc.Login("claire@example.com", "old-secret")
	requireKind(t, err, apperrors.Unauthorized)

	_, _, err = svc.Login("claire@example.com", "new-secret")
	require.NoError(t, err)
}

func TestResetPasswordInvalidToken(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.ResetPassword("garbage", "new-secret")
	requireKind(t, err, apperrors.BadRequest)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, _ := newAuthService(t)

	user := register(t, svc, "claire@example.com", "old-secret")

	token, err := utils.GenerateToken("test-secret", user.ID, user.Email, user.Role, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ResetPassword(token, "new-secret")
	requireKind(t, err, apperrors.BadRequest)
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := newAuthService(t)

	user := register(t, svc, "claire@example.com", "old-secret")

	err := svc.UpdatePassword(user, "wrong", "new-secret")
	requireKind(t, err, apperrors.Unauthorized)

	require.NoError(t, svc.UpdatePassword(user, "old-secret", "new-secret"))

	_, _, err = svc.Login("claire@example.com", "new-secret")
	require.NoError(t, err)
}
