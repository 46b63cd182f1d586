package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/interfaces/http/middleware"
	"rr-exchange.backend/internal/interfaces/http/response"
)

type AccountService interface {
	UpdateProfile(ctx context.Context, accountID uuid.UUID, input *entities.UpdateProfileInput) (*entities.ProfileResponse, error)
	GetPublicProfile(ctx context.Context, accountID uuid.UUID) (*entities.PublicProfile, error)
}

// AccountHandler handles profile endpoints
type AccountHandler struct {
	accountUsecase AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountUsecase AccountService) *AccountHandler {
	return &AccountHandler{accountUsecase: accountUsecase}
}

// UpdateProfile edits the caller's display name, game profile link and
// contact handle
// PUT /api/v1/account/profile
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var input entities.UpdateProfileInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	profile, err := h.accountUsecase.UpdateProfile(c.Request.Context(), accountID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidInput) {
			response.Error(c, domainerrors.BadRequest("Invalid profile fields"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// GetPublicProfile returns the public projection of an account
// GET /api/v1/profiles/:id
func (h *AccountHandler) GetPublicProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid account ID"))
		return
	}

	profile, err := h.accountUsecase.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Account not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
