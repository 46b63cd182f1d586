package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/interfaces/http/middleware"
	"rr-exchange.backend/internal/interfaces/http/response"
	"rr-exchange.backend/pkg/utils"
)

type TradeService interface {
	History(ctx context.Context, accountID uuid.UUID, params utils.PaginationParams) ([]*entities.TradeView, utils.PaginationMeta, error)
	Receipt(ctx context.Context, accountID, tradeID uuid.UUID) (*entities.TradeView, error)
}

// TradeHandler handles trade history endpoints
type TradeHandler struct {
	tradeUsecase TradeService
}

// NewTradeHandler creates a new trade handler
func NewTradeHandler(tradeUsecase TradeService) *TradeHandler {
	return &TradeHandler{tradeUsecase: tradeUsecase}
}

// History returns the caller's trades, newest first, with the side the
// caller was on
// GET /api/v1/trades
func (h *TradeHandler) History(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	params := utils.GetPaginationParams(page, limit)

	trades, meta, err := h.tradeUsecase.History(c.Request.Context(), accountID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"trades": trades, "pagination": meta})
}

// Receipt returns a single trade; only the buyer or seller may read it
// GET /api/v1/trades/:id
func (h *TradeHandler) Receipt(c *gin.Context) {
	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid trade ID"))
		return
	}

	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	trade, err := h.tradeUsecase.Receipt(c.Request.Context(), accountID, tradeID)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Trade not found"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("Only a trade party may view the receipt"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, trade)
}
