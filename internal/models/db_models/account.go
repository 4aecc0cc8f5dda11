package db_models

import (
	"strings"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Account struct {
	BaseModel
	Username     string   `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string   `gorm:"size:150" json:"first_name"`
	LastName     string   `gorm:"size:150" json:"last_name"`
	PasswordHash string   `json:"-"`
	Role         string   `gorm:"size:20;not null" json:"role"`
	IsActive     bool     `json:"is_active"`
	LastLoginAt  *int64   `json:"last_login_at,omitempty"`
	Profile      *Profile `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

func (a Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a Account) IsStaff() bool {
	return a.Role == RoleStaff
}

// Profile is created together with its account during registration.
type Profile struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"account_id"`
	Mobile      string    `gorm:"size:15" json:"mobile"`
	Address     string    `json:"address"`
	Gender      Gender    `gorm:"size:10" json:"gender"`
	DateOfBirth *int64    `json:"date_of_birth,omitempty"`
}
