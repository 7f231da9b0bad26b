package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/dto"
	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/middleware"
	"github.com/tobostore/Catatan-Keuangan/internal/domain"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/auth"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase"
)

type ledgerServiceStub struct {
	createFn func(ctx context.Context, userID int64, draft domain.TransactionDraft) (usecase.MutationResult, error)
	updateFn func(ctx context.Context, userID, id int64, draft domain.TransactionDraft) (usecase.MutationResult, error)
	deleteFn func(ctx context.Context, userID, id int64) (int64, error)
	listFn   func(ctx context.Context, userID int64) ([]*domain.TransactionView, error)
}

func (s *ledgerServiceStub) Create(ctx context.Context, userID int64, draft domain.TransactionDraft) (usecase.MutationResult, error) {
	return s.createFn(ctx, userID, draft)
}

func (s *ledgerServiceStub) Update(ctx context.Context, userID, id int64, draft domain.TransactionDraft) (usecase.MutationResult, error) {
	return s.updateFn(ctx, userID, id, draft)
}

func (s *ledgerServiceStub) Delete(ctx context.Context, userID, id int64) (int64, error) {
	return s.deleteFn(ctx, userID, id)
}

func (s *ledgerServiceStub) List(ctx context.Context, userID int64) ([]*domain.TransactionView, error) {
	return s.listFn(ctx, userID)
}

func authenticated(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, &auth.SessionUser{
		ID:    userID,
		Email: "budi@example.com",
	})
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestTransactionHandler_Create_Success(t *testing.T) {
	var captured domain.TransactionDraft
	handler := NewTransactionHandler(&ledgerServiceStub{
		createFn: func(ctx context.Context, userID int64, draft domain.TransactionDraft) (usecase.MutationResult, error) {
			captured = draft
			return usecase.MutationResult{
				ID: 42,
				View: &domain.TransactionView{
					ID:       42,
					Type:     domain.TypeExpense,
					Category: "Groceries",
					Amount:   decimal.RequireFromString("120.50"),
					Date:     "2025-03-14",
				},
			}, nil
		},
	})

	body := []byte(`{"type":"expense","category":"Groceries","amount":120.50,"date":"2025-03-14","accountId":3}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Amount != "120.5" && captured.Amount != "120.50" {
		t.Errorf("expected numeric amount to pass through, got %q", captured.Amount)
	}
	if captured.AccountID != "3" {
		t.Errorf("expected account id 3, got %q", captured.AccountID)
	}

	var resp dto.MutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 42 || resp.Transaction == nil {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestTransactionHandler_Create_DegradedReread(t *testing.T) {
	handler := NewTransactionHandler(&ledgerServiceStub{
		createFn: func(ctx context.Context, userID int64, draft domain.TransactionDraft) (usecase.MutationResult, error) {
			return usecase.MutationResult{ID: 42}, nil
		},
	})

	body := []byte(`{"type":"expense","category":"Groceries","amount":"10","date":"2025-03-14","accountId":"3"}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp dto.MutationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 42 || resp.Transaction != nil {
		t.Errorf("expected id without transaction, got %+v", resp)
	}
}

func TestTransactionHandler_Create_ValidationError(t *testing.T) {
	handler := NewTransactionHandler(&ledgerServiceStub{
		createFn: func(ctx context.Context, userID int64, draft domain.TransactionDraft) (usecase.MutationResult, error) {
			return usecase.MutationResult{}, domain.ErrInvalidAmount
		},
	})

	body := []byte(`{"type":"expense","category":"Groceries","amount":"0","date":"2025-03-14","accountId":"3"}`)
	req := authenticated(httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body)), 1)
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Create_Unauthenticated(t *testing.T) {
	handler := NewTransactionHandler(&ledgerServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestTransactionHandler_Update_NotFound(t *testing.T) {
	handler := NewTransactionHandler(&ledgerServiceStub{
		updateFn: func(ctx context.Context, userID, id int64, draft domain.TransactionDraft) (usecase.MutationResult, error) {
			return usecase.MutationResult{}, domain.ErrTransactionNotFound
		},
	})

	body := []byte(`{"type":"expense","category":"Groceries","amount":"10","date":"2025-03-14","accountId":"3"}`)
	req := authenticated(httptest.NewRequest(http.MethodPut, "/transactions/99", bytes.NewReader(body)), 1)
	req = withURLParam(req, "id", "99")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTransactionHandler_Update_BadID(t *testing.T) {
	handler := NewTransactionHandler(&ledgerServiceStub{})

	req := authenticated(httptest.NewRequest(http.MethodPut, "/transactions/abc", bytes.NewReader([]byte(`{}`))), 1)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransactionHandler_Delete_Success(t *testing.T) {
	handler := NewTransactionHandler(&ledgerServiceStub{
		deleteFn: func(ctx context.Context, userID, id int64) (int64, error) {
			return id, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/transactions/7", nil), 1)
	req = withURLParam(req, "id", "7")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.DeleteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != 7 {
		t.Errorf("expected deleted id 7, got %d", resp.ID)
	}
}

func TestTransactionHandler_List(t *testing.T) {
	handler := NewTransactionHandler(&ledgerServiceStub{
		listFn: func(ctx context.Context, userID int64) ([]*domain.TransactionView, error) {
			return []*domain.TransactionView{
				{ID: 2, Type: domain.TypeIncome, Category: "Salary", Date: "2025-03-01"},
				{ID: 1, Type: domain.TypeExpense, Category: "-", Date: "2025-02-01"},
			}, nil
		},
	})

	req := authenticated(httptest.NewRequest(http.MethodGet, "/transactions", nil), 1)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListTransactionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Transactions) != 2 {
		t.Errorf("unexpected listing: %+v", resp)
	}
	if resp.Transactions[1].Category != "-" {
		t.Errorf("expected dash placeholder, got %q", resp.Transactions[1].Category)
	}
}
