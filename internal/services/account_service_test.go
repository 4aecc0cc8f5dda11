package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gymfit/internal/models/request_models"
	"gymfit/internal/repositories"
	"gymfit/internal/testutil"
	mem "gymfit/pkg/memcache"
	"gymfit/pkg/utils"
)

type fakeMail struct {
	resetTo    string
	resetToken string
	fail       bool
}

func (f *fakeMail) SendMailToResetPassword(to, token string) error {
	if f.fail {
		return errors.New("smtp down")
	}
	f.resetTo, f.resetToken = to, token
	return nil
}

func (f *fakeMail) SendContactReply(string, string, string, string) error { return nil }

func newTestAccountService(db *gorm.DB, mail IMailService) AccountServiceInterface {
	return NewAccountService(
		repositories.NewAccountRepository(db),
		utils.NewJWTManager("test-secret", time.Hour),
		mail,
		mem.NewResetTokens(),
		time.Hour,
	)
}

func signUp(username, email string) request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Username:    username,
		Email:       email,
		Password:    "s3cret-pass",
		FirstName:   "Sam",
		LastName:    "Lifter",
		Gender:      "other",
		DateOfBirth: "1990-04-02",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := newTestAccountService(db, &fakeMail{})

	acc, err := svc.Register(ctx, signUp("sam", " Sam@Example.com "))
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", acc.Email)
	assert.True(t, acc.IsActive)

	_, err = svc.Register(ctx, signUp("sam", "other@example.com"))
	assert.ErrorIs(t, err, utils.ErrUsernameAlreadyExists)
	_, err = svc.Register(ctx, signUp("sammy", "sam@example.com"))
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	profile, err := svc.GetProfile(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "other", profile.Gender)
	assert.Equal(t, "1990-04-02", profile.DateOfBirth)

	_, err = svc.Login(ctx, request_models.LoginRequest{Login: "sam", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	login, err := svc.Login(ctx, request_models.LoginRequest{Login: "sam", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.EqualValues(t, 3600, login.ExpiresIn)
	assert.NotEmpty(t, login.Account.LastLoginAt)

	claims, err := utils.NewJWTManager("test-secret", time.Hour).ValidateToken(login.Token)
	require.NoError(t, err)
	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, acc.ID, id)
}

func TestPasswordResetFlow(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	mail := &fakeMail{}
	svc := newTestAccountService(db, mail)

	_, err := svc.Register(ctx, signUp("sam", "sam@example.com"))
	require.NoError(t, err)

	// unknown addresses are not revealed
	require.NoError(t, svc.RequestPasswordReset(ctx, "nobody@example.com"))
	assert.Empty(t, mail.resetToken)

	require.NoError(t, svc.RequestPasswordReset(ctx, "sam@example.com"))
	assert.Equal(t, "sam@example.com", mail.resetTo)
	require.NotEmpty(t, mail.resetToken)

	err = svc.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: mail.resetToken, NewPassword: "brand-new"})
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: mail.resetToken, NewPassword: "again!!"})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)

	_, err = svc.Login(ctx, request_models.LoginRequest{Login: "sam@example.com", Password: "brand-new"})
	require.NoError(t, err)
}

func TestPasswordResetWithoutMail(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := newTestAccountService(db, nil)

	_, err := svc.Register(ctx, signUp("sam", "sam@example.com"))
	require.NoError(t, err)
	assert.ErrorIs(t, svc.RequestPasswordReset(ctx, "sam@example.com"), utils.ErrMailUnavailable)

	failing := newTestAccountService(db, &fakeMail{fail: true})
	assert.ErrorIs(t, failing.RequestPasswordReset(ctx, "sam@example.com"), utils.ErrMailUnavailable)
}

func TestChangePassword(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := newTestAccountService(db, nil)

	acc, err := svc.Register(ctx, signUp("sam", "sam@example.com"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, acc.ID, request_models.ChangePasswordRequest{OldPassword: "nope", NewPassword: "another"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, acc.ID, request_models.ChangePasswordRequest{OldPassword: "s3cret-pass", NewPassword: "another"}))
	_, err = svc.Login(ctx, request_models.LoginRequest{Login: "sam", Password: "another"})
	require.NoError(t, err)
}
