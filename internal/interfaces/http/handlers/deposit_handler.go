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

type DepositService interface {
	CreateRequest(ctx context.Context, accountID uuid.UUID, input *entities.CreateDepositInput) (*entities.DepositRequest, error)
	ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entities.DepositRequest, error)
}

// DepositHandler handles deposit request endpoints for regular accounts
type DepositHandler struct {
	depositUsecase DepositService
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(depositUsecase DepositService) *DepositHandler {
	return &DepositHandler{depositUsecase: depositUsecase}
}

// CreateRequest queues a deposit for moderator review
// POST /api/v1/deposits
func (h *DepositHandler) CreateRequest(c *gin.Context) {
	var input entities.CreateDepositInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	request, err := h.depositUsecase.CreateRequest(c.Request.Context(), accountID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidAmount) {
			response.Error(c, domainerrors.BadRequest("Amount must be positive"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, request)
}

// ListOwn returns the caller's deposit requests, newest first
// GET /api/v1/deposits
func (h *DepositHandler) ListOwn(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	requests, err := h.depositUsecase.ListOwn(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}
