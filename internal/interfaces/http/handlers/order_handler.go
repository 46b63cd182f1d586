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

type OrderService interface {
	CreateOrder(ctx context.Context, sellerID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error)
	CancelOrder(ctx context.Context, accountID, orderID uuid.UUID) error
	ListOrderBook(ctx context.Context, resource entities.Resource) ([]*entities.Order, error)
	ListOwnOrders(ctx context.Context, accountID uuid.UUID) ([]*entities.Order, error)
}

type SettlementService interface {
	Buy(ctx context.Context, buyerID, orderID uuid.UUID, quantity int64) (*entities.SettlementResponse, error)
}

// OrderHandler handles order book and settlement endpoints
type OrderHandler struct {
	orderUsecase      OrderService
	settlementUsecase SettlementService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase OrderService, settlementUsecase SettlementService) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, settlementUsecase: settlementUsecase}
}

// ListResources returns the fixed tradeable symbol list
// GET /api/v1/resources
func (h *OrderHandler) ListResources(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"resources": entities.Resources})
}

// ListOrderBook returns open orders for one resource, cheapest first
// GET /api/v1/orders?resource=X
func (h *OrderHandler) ListOrderBook(c *gin.Context) {
	resource := entities.Resource(c.Query("resource"))

	orders, err := h.orderUsecase.ListOrderBook(c.Request.Context(), resource)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidResource) {
			response.Error(c, domainerrors.BadRequest("Unknown resource symbol"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// ListOwnOrders returns the caller's open sell orders
// GET /api/v1/orders/mine
func (h *OrderHandler) ListOwnOrders(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	orders, err := h.orderUsecase.ListOwnOrders(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// CreateOrder lists a new sell order
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input entities.CreateOrderInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), accountID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidResource):
			response.Error(c, domainerrors.BadRequest("Unknown resource symbol"))
		case errors.Is(err, domainerrors.ErrInvalidQuantity):
			response.Error(c, domainerrors.BadRequest("Quantity must be a positive integer"))
		case errors.Is(err, domainerrors.ErrInvalidAmount):
			response.Error(c, domainerrors.BadRequest("Unit price must be positive"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated, order)
}

// CancelOrder removes an open order owned by the caller
// DELETE /api/v1/orders/:id
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	if err := h.orderUsecase.CancelOrder(c.Request.Context(), accountID, orderID); err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Order not found"))
		case errors.Is(err, domainerrors.ErrForbidden):
			response.Error(c, domainerrors.Forbidden("Only the seller may cancel an order"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "cancelled"})
}

// Buy settles a purchase against an open order
// POST /api/v1/orders/:id/buy
func (h *OrderHandler) Buy(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input entities.BuyOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	settlement, err := h.settlementUsecase.Buy(c.Request.Context(), accountID, orderID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Order not found"))
		case errors.Is(err, domainerrors.ErrInvalidQuantity):
			response.Error(c, domainerrors.BadRequest("Quantity must be a positive integer"))
		case errors.Is(err, domainerrors.ErrSelfTrade):
			response.Error(c, domainerrors.Conflict("Cannot buy from your own order"))
		case errors.Is(err, domainerrors.ErrOrderOversold):
			response.Error(c, domainerrors.Conflict("Requested quantity exceeds what the order has left"))
		case errors.Is(err, domainerrors.ErrInsufficientFunds):
			response.Error(c, domainerrors.Conflict("Insufficient balance"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, settlement)
}
