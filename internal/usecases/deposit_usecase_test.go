package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/internal/usecases"
)

func newDepositFixture() (*usecases.DepositUsecase, *MockDepositRepository, *MockAccountRepository, *MockUnitOfWork, *MockNotifier) {
	mockDepositRepo := new(MockDepositRepository)
	mockAccountRepo := new(MockAccountRepository)
	mockUOW := new(MockUnitOfWork)
	mockNotifier := new(MockNotifier)

	uc := usecases.NewDepositUsecase(mockDepositRepo, mockAccountRepo, mockUOW, mockNotifier)
	return uc, mockDepositRepo, mockAccountRepo, mockUOW, mockNotifier
}

func TestCreateDepositRequest_Success(t *testing.T) {
	uc, mockDepositRepo, mockAccountRepo, _, mockNotifier := newDepositFixture()

	accountID := uuid.New()
	account := &entities.Account{ID: accountID, Name: "trader-one"}

	mockAccountRepo.On("GetByID", mock.Anything, accountID).Return(account, nil)
	mockDepositRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.DepositRequest")).Return(nil)
	mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("string")).Return()

	request, err := uc.CreateRequest(context.Background(), accountID, &entities.CreateDepositInput{
		Amount:      decimal.RequireFromString("500.00"),
		Description: "bank transfer ref 1234",
	})

	assert.NoError(t, err)
	assert.Equal(t, accountID, request.AccountID)
	assert.True(t, request.Amount.Equal(decimal.RequireFromString("500.00")))
	mockNotifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestCreateDepositRequest_NonPositiveAmount(t *testing.T) {
	uc, mockDepositRepo, _, _, _ := newDepositFixture()

	for _, amount := range []string{"0", "-10.00"} {
		request, err := uc.CreateRequest(context.Background(), uuid.New(), &entities.CreateDepositInput{
			Amount: decimal.RequireFromString(amount),
		})
		assert.Nil(t, request)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
	mockDepositRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApproveDeposit_CreditsInsideTransaction(t *testing.T) {
	uc, mockDepositRepo, mockAccountRepo, mockUOW, mockNotifier := newDepositFixture()

	accountID := uuid.New()
	moderatorID := uuid.New()
	requestID := uuid.New()
	amount := decimal.RequireFromString("500.00")

	pending := &entities.DepositRequest{ID: requestID, AccountID: accountID, Amount: amount, Status: entities.RequestStatusPending}
	approved := &entities.DepositRequest{ID: requestID, AccountID: accountID, Amount: amount, Status: entities.RequestStatusApproved}

	mockDepositRepo.On("GetByID", mock.Anything, requestID).Return(pending, nil).Once()
	mockUOW.On("Do", mock.Anything, mock.Anything).Return(nil)
	mockDepositRepo.On("Resolve", mock.Anything, requestID, entities.RequestStatusApproved, moderatorID, null.String{}).Return(nil)
	mockAccountRepo.On("Credit", mock.Anything, accountID, amount).Return(nil)
	mockDepositRepo.On("GetByID", mock.Anything, requestID).Return(approved, nil)
	mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("string")).Return()

	resolved, err := uc.Approve(context.Background(), moderatorID, requestID)

	assert.NoError(t, err)
	assert.Equal(t, entities.RequestStatusApproved, resolved.Status)
	mockAccountRepo.AssertCalled(t, "Credit", mock.Anything, accountID, amount)
}

func TestApproveDeposit_AlreadyResolved(t *testing.T) {
	uc, mockDepositRepo, mockAccountRepo, mockUOW, mockNotifier := newDepositFixture()

	moderatorID := uuid.New()
	requestID := uuid.New()
	resolved := &entities.DepositRequest{
		ID:        requestID,
		AccountID: uuid.New(),
		Amount:    decimal.RequireFromString("500.00"),
		Status:    entities.RequestStatusApproved,
	}

	mockDepositRepo.On("GetByID", mock.Anything, requestID).Return(resolved, nil)
	mockUOW.On("Do", mock.Anything, mock.Anything).Return(nil)
	mockDepositRepo.On("Resolve", mock.Anything, requestID, entities.RequestStatusApproved, moderatorID, null.String{}).Return(domainerrors.ErrRequestResolved)

	request, err := uc.Approve(context.Background(), moderatorID, requestID)

	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrRequestResolved)
	mockAccountRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestRejectDeposit_NoBalanceChange(t *testing.T) {
	uc, mockDepositRepo, mockAccountRepo, _, mockNotifier := newDepositFixture()

	moderatorID := uuid.New()
	requestID := uuid.New()
	rejected := &entities.DepositRequest{
		ID:              requestID,
		AccountID:       uuid.New(),
		Amount:          decimal.RequireFromString("500.00"),
		Status:          entities.RequestStatusRejected,
		RejectionReason: null.StringFrom("no matching transfer"),
	}

	mockDepositRepo.On("Resolve", mock.Anything, requestID, entities.RequestStatusRejected, moderatorID, null.StringFrom("no matching transfer")).Return(nil)
	mockDepositRepo.On("GetByID", mock.Anything, requestID).Return(rejected, nil)
	mockNotifier.On("Notify", mock.Anything, mock.AnythingOfType("string")).Return()

	resolved, err := uc.Reject(context.Background(), moderatorID, requestID, "no matching transfer")

	assert.NoError(t, err)
	assert.Equal(t, entities.RequestStatusRejected, resolved.Status)
	assert.Equal(t, "no matching transfer", resolved.RejectionReason.String)
	mockAccountRepo.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
}

func TestListDepositsByStatus_AttachesProfiles(t *testing.T) {
	uc, mockDepositRepo, mockAccountRepo, _, _ := newDepositFixture()

	accountID := uuid.New()
	account := &entities.Account{ID: accountID, Name: "trader-one", Verified: true}
	requests := []*entities.DepositRequest{
		{ID: uuid.New(), AccountID: accountID, Amount: decimal.RequireFromString("10.00"), Status: entities.RequestStatusPending},
		{ID: uuid.New(), AccountID: accountID, Amount: decimal.RequireFromString("20.00"), Status: entities.RequestStatusPending},
	}

	mockDepositRepo.On("ListByStatus", mock.Anything, entities.RequestStatusPending).Return(requests, nil)
	mockAccountRepo.On("GetByID", mock.Anything, accountID).Return(account, nil).Once()

	listed, err := uc.ListByStatus(context.Background(), entities.RequestStatusPending)

	assert.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "trader-one", listed[0].Account.Name)
	assert.Equal(t, "trader-one", listed[1].Account.Name)
	// Profile lookups are cached per account within one listing
	mockAccountRepo.AssertNumberOfCalls(t, "GetByID", 1)
}
