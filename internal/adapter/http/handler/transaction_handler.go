package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/dto"
	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/middleware"
	"github.com/tobostore/Catatan-Keuangan/internal/domain"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase"
)

// LedgerService defines the behavior needed by TransactionHandler.
type LedgerService interface {
	Create(ctx context.Context, userID int64, draft domain.TransactionDraft) (usecase.MutationResult, error)
	Update(ctx context.Context, userID, id int64, draft domain.TransactionDraft) (usecase.MutationResult, error)
	Delete(ctx context.Context, userID, id int64) (int64, error)
	List(ctx context.Context, userID int64) ([]*domain.TransactionView, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledgerUC LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerUC LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerUC: ledgerUC}
}

// Create records a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.ledgerUC.Create(r.Context(), user.ID, req.ToDraft())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MutationResponse{
		ID:          result.ID,
		Transaction: result.View,
	})
}

// List lists the user's transactions, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	transactions, err := h.ledgerUC.List(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Total:        int64(len(transactions)),
	})
}

// Update amends an existing transaction.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid transaction id", "")
		return
	}

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.ledgerUC.Update(r.Context(), user.ID, id, req.ToDraft())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MutationResponse{
		ID:          result.ID,
		Transaction: result.View,
	})
}

// Delete removes a transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid transaction id", "")
		return
	}

	deletedID, err := h.ledgerUC.Delete(r.Context(), user.ID, id)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeleteResponse{ID: deletedID})
}
