package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymfit/internal/models/request_models"
	"gymfit/internal/services"
	"gymfit/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user account together with its profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate by username or email and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a reset token to the provided email if it exists
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Forgot password payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/forgot-password [post]
func (a *AccountController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Reset a password
// @Description Consumes a reset token and sets the new password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordRequest true "Password reset payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/reset-password [post]
func (a *AccountController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}

// GetProfile godoc
// @Summary Current profile
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /accounts/profile [get]
func (a *AccountController) GetProfile(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), id.AccountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile retrieved successfully")
}

// UpdateProfile godoc
// @Summary Update the current profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/profile [put]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.accountService.UpdateProfile(c.Request.Context(), id.AccountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Change the current password
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/change-password [post]
func (a *AccountController) ChangePassword(c *gin.Context) {
	id, ok := currentAccount(c)
	if !ok {
		return
	}
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ChangePassword(c.Request.Context(), id.AccountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password changed successfully")
}
