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

type VerificationService interface {
	CreateRequest(ctx context.Context, accountID uuid.UUID) (*entities.VerificationRequest, error)
	ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entities.VerificationRequest, error)
}

// VerificationHandler handles verification request endpoints for regular accounts
type VerificationHandler struct {
	verificationUsecase VerificationService
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationUsecase VerificationService) *VerificationHandler {
	return &VerificationHandler{verificationUsecase: verificationUsecase}
}

// CreateRequest submits the caller's profile for verification
// POST /api/v1/verifications
func (h *VerificationHandler) CreateRequest(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	request, err := h.verificationUsecase.CreateRequest(c.Request.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrProfileIncomplete):
			response.Error(c, domainerrors.BadRequest("Profile must be complete before requesting verification"))
		case errors.Is(err, domainerrors.ErrRequestPending):
			response.Error(c, domainerrors.Conflict("A verification request is already pending"))
		case errors.Is(err, domainerrors.ErrCooldownActive):
			response.Error(c, domainerrors.Conflict("Please wait before resubmitting a verification request"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// ListOwn returns the caller's verification submissions, newest first
// GET /api/v1/verifications
func (h *VerificationHandler) ListOwn(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	requests, err := h.verificationUsecase.ListOwn(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}
