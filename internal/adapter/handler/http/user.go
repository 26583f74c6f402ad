package http

import (
	"net/http"

	"github.com/MikeRez0/techxchange/internal/core/domain"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.UserService
}

type registerRequest struct {
	FullName    string `json:"fullName" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,min=5,max=20"`
	Password    string `json:"password" binding:"required,min=6,max=72"`
	Role        string `json:"role" binding:"omitempty,oneof=buyer seller"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user,omitempty"`
}

func NewUserHandler(service port.UserService, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// RegisterUser godoc
//
//	@Summary	Register a buyer or seller account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		user	body	registerRequest	true	"Account details"
//	@Success	201	{object}	successResponse
//	@Failure	400,409	{object}	errorResponse
//	@Router		/api/auth/register [post]
func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	user, err := uh.service.RegisterUser(ctx, &domain.User{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        domain.Role(req.Role),
	})
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	// Token return
	token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, "User registered successfully",
		tokenResponse{Token: token, User: newUserResponse(user)}, http.StatusCreated)
}

// LoginUser godoc
//
//	@Summary	Exchange credentials for an access token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body	loginRequest	true	"Email and password"
//	@Success	200	{object}	successResponse
//	@Failure	400,401	{object}	errorResponse
//	@Router		/api/auth/login [post]
func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, "Login successful", tokenResponse{Token: token}, http.StatusOK)
}

// Profile godoc
//
//	@Summary	Show the caller's profile
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	successResponse
//	@Failure	401	{object}	errorResponse
//	@Router		/api/auth/me [get]
func (uh *UserHandler) Profile(ctx *gin.Context) {
	user, err := uh.service.GetUser(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, newUserResponse(user))
}
