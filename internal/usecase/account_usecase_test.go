package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase/mocks"
)

func TestResolveAccountID(t *testing.T) {
	tests := []struct {
		name             string
		defaultAccountID int64
		input            usecase.ResolveAccountInput
		seed             []*domain.Account
		want             int64
		wantErr          error
	}{
		{
			name:  "submitted owned account wins",
			input: usecase.ResolveAccountInput{UserID: 1, Submitted: 9, UsePreferred: true},
			seed: []*domain.Account{
				{ID: 3, UserID: 1},
				{ID: 9, UserID: 1},
			},
			defaultAccountID: 3,
			want:             9,
		},
		{
			name:    "submitted foreign account fails",
			input:   usecase.ResolveAccountInput{UserID: 1, Submitted: 9},
			seed:    []*domain.Account{{ID: 9, UserID: 2}},
			wantErr: domain.ErrInvalidAccount,
		},
		{
			name:    "submitted unknown account fails",
			input:   usecase.ResolveAccountInput{UserID: 1, Submitted: 42},
			seed:    []*domain.Account{{ID: 3, UserID: 1}},
			wantErr: domain.ErrInvalidAccount,
		},
		{
			name:             "preferred used when valid",
			input:            usecase.ResolveAccountInput{UserID: 1, UsePreferred: true},
			defaultAccountID: 9,
			seed: []*domain.Account{
				{ID: 3, UserID: 1},
				{ID: 9, UserID: 1},
			},
			want: 9,
		},
		{
			name:             "invalid preferred falls through silently",
			input:            usecase.ResolveAccountInput{UserID: 1, UsePreferred: true},
			defaultAccountID: 42,
			seed: []*domain.Account{
				{ID: 7, UserID: 1},
				{ID: 3, UserID: 1},
				{ID: 9, UserID: 1},
			},
			want: 3,
		},
		{
			name:             "preferred ignored when not requested",
			input:            usecase.ResolveAccountInput{UserID: 1},
			defaultAccountID: 9,
			seed: []*domain.Account{
				{ID: 3, UserID: 1},
				{ID: 9, UserID: 1},
			},
			want: 3,
		},
		{
			name:  "fallback picks smallest id",
			input: usecase.ResolveAccountInput{UserID: 1, UsePreferred: true},
			seed: []*domain.Account{
				{ID: 7, UserID: 1},
				{ID: 3, UserID: 1},
				{ID: 9, UserID: 1},
			},
			want: 3,
		},
		{
			name:    "no accounts at all",
			input:   usecase.ResolveAccountInput{UserID: 1, UsePreferred: true},
			wantErr: domain.ErrNoAccounts,
		},
		{
			name:    "fallback ignores other users accounts",
			input:   usecase.ResolveAccountInput{UserID: 1},
			seed:    []*domain.Account{{ID: 2, UserID: 2}},
			wantErr: domain.ErrNoAccounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAccountRepository()
			for _, acc := range tt.seed {
				repo.Add(acc)
			}

			uc := usecase.NewAccountUseCase(repo, tt.defaultAccountID)
			got, err := uc.ResolveAccountID(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected account %d, got %d", tt.want, got)
			}
		})
	}
}

func TestResolveAccountIDStoreFailure(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	storeErr := errors.New("connection reset")
	repo.GetOwnedFunc = func(ctx context.Context, userID, id int64) (*domain.Account, error) {
		return nil, storeErr
	}

	uc := usecase.NewAccountUseCase(repo, 0)
	_, err := uc.ResolveAccountID(context.Background(), usecase.ResolveAccountInput{UserID: 1, Submitted: 3})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected the store error to surface, got %v", err)
	}
}

func TestListAccounts(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	repo.Add(&domain.Account{ID: 1, UserID: 1, Name: "Savings"})
	repo.Add(&domain.Account{ID: 2, UserID: 1, Name: "Checking"})
	repo.Add(&domain.Account{ID: 3, UserID: 2, Name: "Foreign"})

	uc := usecase.NewAccountUseCase(repo, 0)
	accounts, err := uc.ListAccounts(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Name != "Checking" || accounts[1].Name != "Savings" {
		t.Errorf("expected name order, got %s then %s", accounts[0].Name, accounts[1].Name)
	}
}
