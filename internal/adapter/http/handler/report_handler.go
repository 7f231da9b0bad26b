package handler

import (
	"context"
	"net/http"

	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/middleware"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Summarize(ctx context.Context, userID int64) (*usecase.Summary, error)
	MonthlyFlows(ctx context.Context, userID int64, months int) ([]usecase.MonthFlow, error)
	AccountBalances(ctx context.Context, userID int64) ([]usecase.AccountReport, error)
}

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// Summary returns income and expense totals with category breakdowns.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	summary, err := h.reportUC.Summarize(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Monthly returns per-month income and expense totals for recent months.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	months := parseIntQuery(r, "months", 6)
	flows, err := h.reportUC.MonthlyFlows(r.Context(), user.ID, months)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, flows)
}

// Accounts returns per-account balances.
func (h *ReportHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	reports, err := h.reportUC.AccountBalances(r.Context(), user.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reports)
}
