package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/tobostore/Catatan-Keuangan/internal/domain"
)

// UserUseCase verifies credentials for the session provider. User accounts
// themselves are provisioned out-of-band.
type UserUseCase struct {
	userRepo UserRepository
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// AuthenticateInput carries login credentials.
type AuthenticateInput struct {
	Email    string
	Password string
}

// Authenticate verifies an email/password pair. Wrong email and wrong
// password are indistinguishable to the caller.
func (uc *UserUseCase) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	user.HashedPassword = ""
	return user, nil
}

// GetUser retrieves a user by id for the session endpoint.
func (uc *UserUseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}

	user.HashedPassword = ""
	return user, nil
}
