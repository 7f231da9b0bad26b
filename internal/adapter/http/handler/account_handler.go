package handler

import (
	"context"
	"net/http"

	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/dto"
	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/middleware"
	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	ListAccounts(ctx context.Context, userID int64) ([]*domain.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// List lists the user's accounts ordered by name.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	accounts, err := h.accountUC.ListAccounts(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: accounts,
		Total:    int64(len(accounts)),
	})
}
