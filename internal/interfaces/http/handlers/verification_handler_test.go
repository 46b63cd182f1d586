package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
)

type verificationServiceStub struct {
	createFn func(ctx context.Context, accountID uuid.UUID) (*entities.VerificationRequest, error)
	listFn   func(ctx context.Context, accountID uuid.UUID) ([]*entities.VerificationRequest, error)
}

func (s verificationServiceStub) CreateRequest(ctx context.Context, accountID uuid.UUID) (*entities.VerificationRequest, error) {
	return s.createFn(ctx, accountID)
}
func (s verificationServiceStub) ListOwn(ctx context.Context, accountID uuid.UUID) ([]*entities.VerificationRequest, error) {
	return s.listFn(ctx, accountID)
}

func TestVerificationHandler_CreateMappings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	okID := uuid.New()
	incompleteID := uuid.New()
	pendingID := uuid.New()
	cooldownID := uuid.New()

	service := verificationServiceStub{
		createFn: func(_ context.Context, accountID uuid.UUID) (*entities.VerificationRequest, error) {
			switch accountID {
			case incompleteID:
				return nil, domainerrors.ErrProfileIncomplete
			case pendingID:
				return nil, domainerrors.ErrRequestPending
			case cooldownID:
				return nil, domainerrors.ErrCooldownActive
			}
			return &entities.VerificationRequest{ID: uuid.New(), AccountID: accountID, Status: entities.RequestStatusPending}, nil
		},
		listFn: func(_ context.Context, accountID uuid.UUID) ([]*entities.VerificationRequest, error) {
			return []*entities.VerificationRequest{{ID: uuid.New(), AccountID: accountID}}, nil
		},
	}

	h := NewVerificationHandler(service)
	newRouter := func(accountID uuid.UUID) *gin.Engine {
		r := gin.New()
		r.POST("/verifications", withAccount(accountID), h.CreateRequest)
		r.GET("/verifications", withAccount(accountID), h.ListOwn)
		return r
	}

	post := func(accountID uuid.UUID) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/verifications", nil)
		w := httptest.NewRecorder()
		newRouter(accountID).ServeHTTP(w, req)
		return w
	}

	if w := post(okID); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for create, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post(incompleteID); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for incomplete profile, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post(pendingID); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for pending request, got %d body=%s", w.Code, w.Body.String())
	}
	if w := post(cooldownID); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for active cooldown, got %d body=%s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/verifications", nil)
	w := httptest.NewRecorder()
	newRouter(okID).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for list, got %d body=%s", w.Code, w.Body.String())
	}
}
