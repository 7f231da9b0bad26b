package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{ErrInvalidType, KindValidation},
		{ErrMissingCategory, KindValidation},
		{ErrInvalidAmount, KindValidation},
		{ErrMissingDate, KindValidation},
		{ErrMissingAccount, KindValidation},
		{ErrInvalidAccount, KindReferential},
		{ErrTransactionNotFound, KindNotFound},
		{ErrNoAccounts, KindConfiguration},
		{ErrUnauthorized, KindUnauthorized},
		{ErrInvalidToken, KindUnauthorized},
		{ErrExpiredToken, KindUnauthorized},
		{errors.New("connection reset"), KindTransient},
	}

	for _, tt := range tests {
		if got := Kind(tt.err); got != tt.want {
			t.Errorf("Kind(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindTransient, "transient"},
		{KindValidation, "validation"},
		{KindReferential, "referential"},
		{KindNotFound, "not_found"},
		{KindConfiguration, "configuration"},
		{KindUnauthorized, "unauthorized"},
		{ErrorKind(99), "transient"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("create transaction: %w", ErrInvalidAccount)
	if got := Kind(wrapped); got != KindReferential {
		t.Errorf("expected referential kind for wrapped error, got %v", got)
	}
}
