package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/infra/db/dbtest"
	"github.com/finanzas-pareja/ledger/internal/integration/adapters"
	"github.com/finanzas-pareja/ledger/internal/integration/persistence"
)

type fixture struct {
	userRepo adapter.UserRepository
	tokens   adapter.TokenService
	register *RegisterUserUseCase
	login    *LoginUserUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	userRepo := persistence.NewUserRepository(dbtest.New(t))
	passwords := adapters.NewPasswordService(4)
	tokens := adapters.NewTokenService("test-secret", time.Hour)

	return &fixture{
		userRepo: userRepo,
		tokens:   tokens,
		register: NewRegisterUserUseCase(userRepo, passwords, tokens),
		login:    NewLoginUserUseCase(userRepo, passwords, tokens),
	}
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Code
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, RegisterUserInput{Email: " Ana@Example.COM ", Name: "Ana", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.True(t, out.User.RecurringReminders)
	assert.NotEqual(t, "s3cret-pass", out.User.PasswordHash)

	claims, err := f.tokens.ValidateAccessToken(ctx, out.AccessToken.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)

	loggedIn, err := f.login.Execute(ctx, LoginUserInput{Email: "ANA@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, loggedIn.User.ID)

	_, err = f.login.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "wrong-pass"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	_, err = f.login.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "s3cret-pass"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		input RegisterUserInput
		code  domainerror.AuthErrorCode
	}{
		{"duplicate email", RegisterUserInput{Email: "ANA@example.com", Name: "Ana", Password: "s3cret-pass"}, domainerror.ErrCodeEmailExists},
		{"bad email", RegisterUserInput{Email: "ana-at-example", Name: "Ana", Password: "s3cret-pass"}, domainerror.ErrCodeInvalidEmail},
		{"short password", RegisterUserInput{Email: "leo@example.com", Name: "Leo", Password: "short"}, domainerror.ErrCodeWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register.Execute(ctx, tt.input)
			assert.Equal(t, tt.code, authCode(t, err))
		})
	}
}

func TestProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ana, err := f.register.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "s3cret-pass"})
	require.NoError(t, err)
	_, err = f.register.Execute(ctx, RegisterUserInput{Email: "leo@example.com", Name: "Leo", Password: "s3cret-pass"})
	require.NoError(t, err)

	get := NewGetProfileUseCase(f.userRepo)
	update := NewUpdateProfileUseCase(f.userRepo)

	off := false
	name := "Ana María"
	out, err := update.Execute(ctx, UpdateProfileInput{UserID: ana.User.ID, Name: &name, RecurringReminders: &off})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.User.Name)
	assert.False(t, out.User.RecurringReminders)

	profile, err := get.Execute(ctx, GetProfileInput{UserID: ana.User.ID})
	require.NoError(t, err)
	assert.False(t, profile.User.RecurringReminders)
	assert.Equal(t, "Ana María", profile.User.Name)

	taken := "leo@example.com"
	_, err = update.Execute(ctx, UpdateProfileInput{UserID: ana.User.ID, Email: &taken})
	assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))

	_, err = get.Execute(ctx, GetProfileInput{UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeUserNotFound, authCode(t, err))
}
