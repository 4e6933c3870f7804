package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	accountdomain "github.com/ghuser/stockroom/services/account/domain"
	"github.com/ghuser/stockroom/services/account/domain/models"
)

// fakeUserRepo is an in-memory UserRepository keyed by ID and lowercased email.
type fakeUserRepo struct {
	byID    map[uuid.UUID]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[uuid.UUID]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return accountdomain.ErrEmailTaken
	}
	cp := *user
	r.byID[user.ID] = &cp
	r.byEmail[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[models.NormalizeEmail(email)]
	if !ok {
		return nil, accountdomain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, accountdomain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func TestAccountServiceSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a user with a bcrypt hash, never the raw password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewAccountService(repo)

		user, err := svc.SignUp(ctx, "Kim", "kim@example.com", "correct horse battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.PasswordHash == "correct horse battery" {
			t.Fatal("password stored in the clear")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")); err != nil {
			t.Fatalf("stored hash does not verify: %v", err)
		}
		if _, err := repo.GetByID(ctx, user.ID); err != nil {
			t.Fatalf("user was not persisted: %v", err)
		}
	})

	t.Run("normalizes the email before storing", func(t *testing.T) {
		svc := NewAccountService(newFakeUserRepo())

		user, err := svc.SignUp(ctx, "Kim", "  Kim@Example.COM ", "password123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "kim@example.com" {
			t.Fatalf("expected normalized email, got %q", user.Email)
		}
	})

	t.Run("duplicate email returns ErrEmailTaken", func(t *testing.T) {
		svc := NewAccountService(newFakeUserRepo())

		if _, err := svc.SignUp(ctx, "Kim", "kim@example.com", "password123"); err != nil {
			t.Fatalf("first sign-up failed: %v", err)
		}
		_, err := svc.SignUp(ctx, "Other Kim", "KIM@example.com", "different")
		if !errors.Is(err, accountdomain.ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestAccountServiceAuthenticate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AccountService, *models.User) {
		t.Helper()
		svc := NewAccountService(newFakeUserRepo())
		user, err := svc.SignUp(ctx, "Kim", "kim@example.com", "correct horse battery")
		if err != nil {
			t.Fatalf("sign-up failed: %v", err)
		}
		return svc, user
	}

	t.Run("valid credentials return the user", func(t *testing.T) {
		svc, created := setup(t)

		user, err := svc.Authenticate(ctx, "kim@example.com", "correct horse battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != created.ID {
			t.Fatalf("expected user %v, got %v", created.ID, user.ID)
		}
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		svc, _ := setup(t)

		if _, err := svc.Authenticate(ctx, "KIM@Example.com", "correct horse battery"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong password returns ErrInvalidCredentials", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Authenticate(ctx, "kim@example.com", "wrong")
		if !errors.Is(err, accountdomain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email returns the same error as a wrong password", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.Authenticate(ctx, "nobody@example.com", "correct horse battery")
		if !errors.Is(err, accountdomain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAccountServiceGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored user", func(t *testing.T) {
		svc := NewAccountService(newFakeUserRepo())
		created, _ := svc.SignUp(ctx, "Kim", "kim@example.com", "password123")

		user, err := svc.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Email != "kim@example.com" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("unknown id wraps ErrUserNotFound", func(t *testing.T) {
		svc := NewAccountService(newFakeUserRepo())

		_, err := svc.GetByID(ctx, uuid.New())
		if !errors.Is(err, accountdomain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
