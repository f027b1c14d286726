package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/auth"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/dto"
)

// UserController handles the authenticated user's profile.
type UserController struct {
	getProfileUseCase    *auth.GetProfileUseCase
	updateProfileUseCase *auth.UpdateProfileUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *auth.GetProfileUseCase,
	updateProfileUseCase *auth.UpdateProfileUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), auth.GetProfileInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateProfile handles PATCH /users/me requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingFields))
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), auth.UpdateProfileInput{
		UserID:             userID,
		Name:               req.Name,
		Email:              req.Email,
		RecurringReminders: req.RecurringReminders,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
