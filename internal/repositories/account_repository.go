package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymfit/internal/models/db_models"
)

type AccountRepository interface {
	// CreateWithProfile inserts the account and its profile in one transaction.
	CreateWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.Profile) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Account, error)
	// FindByLogin matches either the username or the email.
	FindByLogin(ctx context.Context, login string) (*db_models.Account, error)
	FindWithProfile(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	UpdateAccountAndProfile(ctx context.Context, account *db_models.Account, profile *db_models.Profile) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at int64) error
	// DeleteCascade removes the account and every row it owns.
	DeleteCascade(ctx context.Context, id uuid.UUID) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Where(query, args...).First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) CreateWithProfile(ctx context.Context, account *db_models.Account, profile *db_models.Profile) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		if profile == nil {
			profile = &db_models.Profile{}
		}
		profile.AccountID = account.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		account.Profile = profile
		return nil
	})
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	return a.first(ctx, "id = ?", id)
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return a.first(ctx, "LOWER(email) = ?", strings.ToLower(email))
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	return a.first(ctx, "username = ?", username)
}

func (a *accountRepository) FindByLogin(ctx context.Context, login string) (*db_models.Account, error) {
	return a.first(ctx, "username = ? OR LOWER(email) = ?", login, strings.ToLower(login))
}

func (a *accountRepository) FindWithProfile(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).Preload("Profile").First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if account.Profile == nil {
		account.Profile = &db_models.Profile{AccountID: account.ID}
	}
	return &account, nil
}

func (a *accountRepository) UpdateAccountAndProfile(ctx context.Context, account *db_models.Account, profile *db_models.Profile) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(account).Select("email", "first_name", "last_name").Updates(account).Error; err != nil {
			return err
		}
		profile.AccountID = account.ID
		if profile.ID == uuid.Nil {
			return tx.Create(profile).Error
		}
		return tx.Model(profile).Select("mobile", "address", "gender", "date_of_birth").Updates(profile).Error
	})
}

func (a *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (a *accountRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at int64) error {
	return a.db.WithContext(ctx).Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

func (a *accountRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Unscoped().Session(&gorm.Session{})

		orderIDs := tx.Model(&db_models.Order{}).Select("id").Where("account_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&db_models.OrderItem{}).Error; err != nil {
			return err
		}
		cartIDs := tx.Model(&db_models.Cart{}).Select("id").Where("account_id = ?", id)
		if err := tx.Where("cart_id IN (?)", cartIDs).Delete(&db_models.CartItem{}).Error; err != nil {
			return err
		}
		owned := []interface{}{
			&db_models.Order{},
			&db_models.Cart{},
			&db_models.ClassBooking{},
			&db_models.Workout{},
			&db_models.PlanSubscription{},
			&db_models.ProductReview{},
			&db_models.Profile{},
		}
		for _, m := range owned {
			if err := tx.Where("account_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&db_models.Account{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
