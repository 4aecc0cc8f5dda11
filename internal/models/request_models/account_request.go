package request_models

type SignUpRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=150"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"first_name" binding:"max=150"`
	LastName    string `json:"last_name" binding:"max=150"`
	Mobile      string `json:"mobile" binding:"max=15"`
	Address     string `json:"address"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
}

// LoginRequest accepts either the username or the email in Login.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name" binding:"max=150"`
	LastName    string `json:"last_name" binding:"max=150"`
	Email       string `json:"email" binding:"required,email"`
	Mobile      string `json:"mobile" binding:"max=15"`
	Address     string `json:"address"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	DateOfBirth string `json:"date_of_birth"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
