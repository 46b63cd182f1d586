package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rr-exchange.backend/internal/domain/entities"
	domainerrors "rr-exchange.backend/internal/domain/errors"
	"rr-exchange.backend/pkg/utils"
)

type tradeServiceStub struct {
	historyFn func(ctx context.Context, accountID uuid.UUID, params utils.PaginationParams) ([]*entities.TradeView, utils.PaginationMeta, error)
	receiptFn func(ctx context.Context, accountID, tradeID uuid.UUID) (*entities.TradeView, error)
}

func (s tradeServiceStub) History(ctx context.Context, accountID uuid.UUID, params utils.PaginationParams) ([]*entities.TradeView, utils.PaginationMeta, error) {
	return s.historyFn(ctx, accountID, params)
}
func (s tradeServiceStub) Receipt(ctx context.Context, accountID, tradeID uuid.UUID) (*entities.TradeView, error) {
	return s.receiptFn(ctx, accountID, tradeID)
}

func TestTradeHandler_HistoryAndReceipt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	accountID := uuid.New()
	strangerID := uuid.New()
	tradeID := uuid.New()

	service := tradeServiceStub{
		historyFn: func(_ context.Context, gotAccountID uuid.UUID, params utils.PaginationParams) ([]*entities.TradeView, utils.PaginationMeta, error) {
			views := []*entities.TradeView{
				{Trade: &entities.Trade{ID: tradeID, BuyerID: gotAccountID}, Side: entities.TradeSidePurchase},
			}
			return views, utils.CalculateMeta(1, params.Page, params.Limit), nil
		},
		receiptFn: func(_ context.Context, gotAccountID, gotTradeID uuid.UUID) (*entities.TradeView, error) {
			if gotTradeID != tradeID {
				return nil, domainerrors.ErrNotFound
			}
			if gotAccountID != accountID {
				return nil, domainerrors.ErrForbidden
			}
			return &entities.TradeView{Trade: &entities.Trade{ID: gotTradeID, BuyerID: gotAccountID}, Side: entities.TradeSidePurchase}, nil
		},
	}

	h := NewTradeHandler(service)
	r := gin.New()
	r.GET("/trades", withAccount(accountID), h.History)
	r.GET("/trades/:id", withAccount(accountID), h.Receipt)
	r.GET("/stranger/trades/:id", withAccount(strangerID), h.Receipt)

	req := httptest.NewRequest(http.MethodGet, "/trades", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for history, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "PURCHASE") {
		t.Fatalf("expected side annotation in body, body=%s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/trades/"+tradeID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for receipt, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/stranger/trades/"+tradeID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-party receipt, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/trades/"+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing trade, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/trades/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid trade id, got %d body=%s", w.Code, w.Body.String())
	}
}
