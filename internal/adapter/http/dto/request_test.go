package dto

import (
	"encoding/json"
	"testing"
)

func TestTransactionRequestAcceptsStringAndNumberFields(t *testing.T) {
	tests := []struct {
		name        string
		payload     string
		wantAmount  string
		wantAccount string
	}{
		{
			name:        "string fields",
			payload:     `{"type":"expense","category":"Groceries","amount":"120.50","date":"2025-03-14","accountId":"3"}`,
			wantAmount:  "120.50",
			wantAccount: "3",
		},
		{
			name:        "numeric fields",
			payload:     `{"type":"expense","category":"Groceries","amount":120.5,"date":"2025-03-14","accountId":3}`,
			wantAmount:  "120.5",
			wantAccount: "3",
		},
		{
			name:        "null account",
			payload:     `{"type":"expense","category":"Groceries","amount":"10","date":"2025-03-14","accountId":null}`,
			wantAmount:  "10",
			wantAccount: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TransactionRequest
			if err := json.Unmarshal([]byte(tt.payload), &req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			draft := req.ToDraft()
			if draft.Amount != tt.wantAmount {
				t.Errorf("expected amount %q, got %q", tt.wantAmount, draft.Amount)
			}
			if draft.AccountID != tt.wantAccount {
				t.Errorf("expected account %q, got %q", tt.wantAccount, draft.AccountID)
			}
		})
	}
}

func TestTransactionRequestRejectsStructuredValues(t *testing.T) {
	var req TransactionRequest
	err := json.Unmarshal([]byte(`{"amount":{"value":10}}`), &req)
	if err == nil {
		t.Error("expected an error for an object amount")
	}
}
