package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
	"gymfit/internal/models/request_models"
	"gymfit/internal/models/response_models"
	"gymfit/internal/repositories"
	mem "gymfit/pkg/memcache"
	"gymfit/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
	ChangePassword(ctx context.Context, accountID uuid.UUID, request request_models.ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	mail        IMailService
	tokens      mem.ResetTokenStore
	jwtTTL      time.Duration
	now         func() time.Time
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	jwt *utils.JWTManager,
	mail IMailService,
	tokens mem.ResetTokenStore,
	jwtTTL time.Duration,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
		mail:        mail,
		tokens:      tokens,
		jwtTTL:      jwtTTL,
		now:         time.Now,
	}
}

func optionalDate(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return nil, err
	}
	v := t.Unix()
	return &v, nil
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.accountRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameAlreadyExists
	}

	existing, err = a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	dob, err := optionalDate(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", utils.ErrDatabaseError, err)
	}

	account := &db_models.Account{
		Username:     request.Username,
		Email:        email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
		IsActive:     true,
	}
	profile := &db_models.Profile{
		Mobile:      request.Mobile,
		Address:     request.Address,
		Gender:      db_models.Gender(request.Gender),
		DateOfBirth: dob,
	}

	if err := a.accountRepo.CreateWithProfile(ctx, account, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrUsernameAlreadyExists
		}
		log.Printf("Failed to create account %s: %v", request.Username, err)
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByLogin(ctx, strings.TrimSpace(request.Login))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, utils.ErrAccountInactive
	}

	token, err := a.jwt.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: sign token: %v", utils.ErrDatabaseError, err)
	}

	now := a.now().Unix()
	if err := a.accountRepo.TouchLastLogin(ctx, account.ID, now); err != nil {
		log.Printf("Failed to stamp last login for %s: %v", account.ID, err)
	} else {
		account.LastLoginAt = &now
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresIn: int64(a.jwtTTL / time.Second),
		Account:   toAccountResponse(account),
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindWithProfile(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toProfileResponse(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	account, err := a.accountRepo.FindWithProfile(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email != account.Email {
		other, err := a.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil && other.ID != account.ID {
			return nil, utils.ErrEmailAlreadyExists
		}
	}

	dob, err := optionalDate(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	account.Email = email
	account.FirstName = request.FirstName
	account.LastName = request.LastName

	profile := account.Profile
	profile.Mobile = request.Mobile
	profile.Address = request.Address
	profile.Gender = db_models.Gender(request.Gender)
	profile.DateOfBirth = dob

	if err := a.accountRepo.UpdateAccountAndProfile(ctx, account, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}
	return toProfileResponse(account), nil
}

func (a *AccountService) ChangePassword(ctx context.Context, accountID uuid.UUID, request request_models.ChangePasswordRequest) error {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.OldPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// RequestPasswordReset mails a reset link. Unknown emails succeed silently.
func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		log.Printf("Password reset requested for unknown email %q", email)
		return nil
	}
	if a.mail == nil {
		return utils.ErrMailUnavailable
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return fmt.Errorf("%w: reset token: %v", utils.ErrDatabaseError, err)
	}
	a.tokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mail.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("Failed to send reset email to %s: %v", account.Email, err)
		return utils.ErrMailUnavailable
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.tokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrInvalidResetToken
	}

	hash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
