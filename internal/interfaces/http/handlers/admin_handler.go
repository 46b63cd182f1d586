package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/interfaces/http/middleware"
	"rr-exchange.backend/internal/interfaces/http/response"
)

type DepositModerationService interface {
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.DepositRequest, error)
	Approve(ctx context.Context, moderatorID, requestID uuid.UUID) (*entities.DepositRequest, error)
	Reject(ctx context.Context, moderatorID, requestID uuid.UUID, reason string) (*entities.DepositRequest, error)
}

type VerificationModerationService interface {
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.VerificationRequest, error)
	Approve(ctx context.Context, moderatorID, requestID uuid.UUID) (*entities.VerificationRequest, error)
	Reject(ctx context.Context, moderatorID, requestID uuid.UUID, reason string) (*entities.VerificationRequest, error)
}

type AdminService interface {
	ListAccounts(ctx context.Context, search string) ([]*entities.Account, error)
	OverrideBalance(ctx context.Context, moderatorID, accountID uuid.UUID, balance decimal.Decimal) (*entities.Account, error)
	Stats(ctx context.Context) (*entities.ExchangeStats, error)
}

// AdminHandler handles moderation and administration endpoints
type AdminHandler struct {
	adminUsecase        AdminService
	depositUsecase      DepositModerationService
	verificationUsecase VerificationModerationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	adminUsecase AdminService,
	depositUsecase DepositModerationService,
	verificationUsecase VerificationModerationService,
) *AdminHandler {
	return &AdminHandler{
		adminUsecase:        adminUsecase,
		depositUsecase:      depositUsecase,
		verificationUsecase: verificationUsecase,
	}
}

func parseStatus(c *gin.Context) (entities.RequestStatus, bool) {
	status := entities.RequestStatus(c.DefaultQuery("status", string(entities.RequestStatusPending)))
	switch status {
	case entities.RequestStatusPending, entities.RequestStatusApproved, entities.RequestStatusRejected:
		return status, true
	}
	response.Error(c, domainerrors.BadRequest("Unknown request status"))
	return "", false
}

// ListDeposits returns deposit requests filtered by status
// GET /api/v1/admin/deposits?status=
func (h *AdminHandler) ListDeposits(c *gin.Context) {
	status, ok := parseStatus(c)
	if !ok {
		return
	}

	requests, err := h.depositUsecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

// ApproveDeposit approves a pending deposit and credits the balance
// POST /api/v1/admin/deposits/:id/approve
func (h *AdminHandler) ApproveDeposit(c *gin.Context) {
	h.resolveDeposit(c, true)
}

// RejectDeposit rejects a pending deposit with a reason
// POST /api/v1/admin/deposits/:id/reject
func (h *AdminHandler) RejectDeposit(c *gin.Context) {
	h.resolveDeposit(c, false)
}

func (h *AdminHandler) resolveDeposit(c *gin.Context, approve bool) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request ID"))
		return
	}

	moderatorID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	var request *entities.DepositRequest
	if approve {
		request, err = h.depositUsecase.Approve(c.Request.Context(), moderatorID, requestID)
	} else {
		var input entities.RejectRequestInput
		if bindErr := c.ShouldBindJSON(&input); bindErr != nil {
			response.Error(c, domainerrors.BadRequest(bindErr.Error()))
			return
		}
		request, err = h.depositUsecase.Reject(c.Request.Context(), moderatorID, requestID, input.Reason)
	}
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Deposit request not found"))
		case errors.Is(err, domainerrors.ErrRequestResolved):
			response.Error(c, domainerrors.Conflict("Deposit request is already resolved"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, request)
}

// ListVerifications returns verification requests filtered by status
// GET /api/v1/admin/verifications?status=
func (h *AdminHandler) ListVerifications(c *gin.Context) {
	status, ok := parseStatus(c)
	if !ok {
		return
	}

	requests, err := h.verificationUsecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

// ApproveVerification approves a pending verification and marks the
// account verified
// POST /api/v1/admin/verifications/:id/approve
func (h *AdminHandler) ApproveVerification(c *gin.Context) {
	h.resolveVerification(c, true)
}

// RejectVerification rejects a pending verification with a reason
// POST /api/v1/admin/verifications/:id/reject
func (h *AdminHandler) RejectVerification(c *gin.Context) {
	h.resolveVerification(c, false)
}

func (h *AdminHandler) resolveVerification(c *gin.Context, approve bool) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request ID"))
		return
	}

	moderatorID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	var request *entities.VerificationRequest
	if approve {
		request, err = h.verificationUsecase.Approve(c.Request.Context(), moderatorID, requestID)
	} else {
		var input entities.RejectRequestInput
		if bindErr := c.ShouldBindJSON(&input); bindErr != nil {
			response.Error(c, domainerrors.BadRequest(bindErr.Error()))
			return
		}
		request, err = h.verificationUsecase.Reject(c.Request.Context(), moderatorID, requestID, input.Reason)
	}
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Verification request not found"))
		case errors.Is(err, domainerrors.ErrRequestResolved):
			response.Error(c, domainerrors.Conflict("Verification request is already resolved"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, request)
}

// ListAccounts returns accounts, optionally filtered by a name search
// GET /api/v1/admin/users?search=
func (h *AdminHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.adminUsecase.ListAccounts(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"accounts": accounts})
}

// OverrideBalance sets an account's balance to an absolute value
// PUT /api/v1/admin/users/:id/balance
func (h *AdminHandler) OverrideBalance(c *gin.Context) {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid account ID"))
		return
	}

	var input entities.OverrideBalanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	moderatorID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Account not authenticated"))
		return
	}

	account, err := h.adminUsecase.OverrideBalance(c.Request.Context(), moderatorID, accountID, input.Balance)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrNotFound):
			response.Error(c, domainerrors.NotFound("Account not found"))
		case errors.Is(err, domainerrors.ErrInvalidAmount):
			response.Error(c, domainerrors.BadRequest("Balance cannot be negative"))
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, account)
}

// Stats returns exchange-wide counters
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
