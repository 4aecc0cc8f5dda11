package response_models

import "github.com/google/uuid"

type AccountLoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int64           `json:"expires_in"` // seconds
	Account   AccountResponse `json:"account"`
}

type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	DateJoined  string    `json:"date_joined"`
	LastLoginAt string    `json:"last_login_at,omitempty"`
}

type ProfileResponse struct {
	Account     AccountResponse `json:"account"`
	Mobile      string          `json:"mobile"`
	Address     string          `json:"address"`
	Gender      string          `json:"gender"`
	DateOfBirth string          `json:"date_of_birth,omitempty"`
}
