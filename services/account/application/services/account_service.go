package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	accountdomain "github.com/ghuser/stockroom/services/account/domain"
	"github.com/ghuser/stockroom/services/account/domain/models"
	"github.com/ghuser/stockroom/services/account/domain/repositories"
)

// AccountService implements email+password registration and authentication.
// Session issuance is left to the HTTP layer: this service deals in users and
// credentials only.
type AccountService struct {
	repo repositories.UserRepository
}

// NewAccountService returns an AccountService wired with the given repository.
func NewAccountService(repo repositories.UserRepository) *AccountService {
	return &AccountService{repo: repo}
}

// SignUp registers a new user with a bcrypt-hashed password.
// Returns ErrEmailTaken when the email is already registered.
func (s *AccountService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.NewUser(name, email, string(hash))
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Authenticate verifies an email+password pair. Unknown email and wrong
// password both return ErrInvalidCredentials so callers cannot probe for
// registered addresses.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountdomain.ErrUserNotFound) {
			return nil, accountdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, accountdomain.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID retrieves a user by ID.
func (s *AccountService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
