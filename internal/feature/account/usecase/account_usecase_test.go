package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
)

func TestAccountUsecase_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		repo := &mockAccountRepository{}
		uc := NewAccountUsecase(repo, &mockHasher{})

		account, err := uc.Register(context.Background(), Candidate{
			Name:                 "  Chicken ",
			Email:                " TeStIng@1.cOm ",
			Password:             "pollo1",
			PasswordConfirmation: "pollo1",
		})

		require.NoError(t, err)
		assert.NotZero(t, account.ID)
		assert.Equal(t, "Chicken", account.Name)
		assert.Equal(t, "testing@1.com", account.Email, "email should be stored normalized")
		assert.NotEqual(t, "pollo1", account.PasswordDigest, "password is not hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordDigest), []byte("pollo1")))
	})

	t.Run("invalid candidate is not persisted", func(t *testing.T) {
		repo := &mockAccountRepository{}
		uc := NewAccountUsecase(repo, &mockHasher{})

		account, err := uc.Register(context.Background(), Candidate{
			Name:                 "Chicken",
			Email:                "1@1.com",
			Password:             "poulet",
			PasswordConfirmation: "pollo",
		})

		assert.Nil(t, account)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has(domain.PasswordMismatch))
		assert.Equal(t, 0, repo.createCalls())
	})

	t.Run("second registration with same email in different case", func(t *testing.T) {
		repo := &mockAccountRepository{}
		uc := NewAccountUsecase(repo, &mockHasher{})

		_, err := uc.Register(context.Background(), Candidate{Name: "Chicken", Email: "1@1.com", Password: "pollo1", PasswordConfirmation: "pollo1"})
		require.NoError(t, err)

		_, err = uc.Register(context.Background(), Candidate{Name: "Chicken", Email: "1@1.CoM", Password: "pollo1", PasswordConfirmation: "pollo1"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []domain.Violation{domain.DuplicateEmail}, verr.Violations)
		assert.Equal(t, 1, repo.createCalls())
	})

	t.Run("concurrent insert wins the unique index", func(t *testing.T) {
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, account *entity.Account) error {
				return ErrEmailAlreadyExists
			},
		}
		uc := NewAccountUsecase(repo, &mockHasher{})

		_, err := uc.Register(context.Background(), validCandidate())

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []domain.Violation{domain.DuplicateEmail}, verr.Violations)
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		repo := &mockAccountRepository{
			CreateFunc: func(ctx context.Context, account *entity.Account) error {
				return expectedErr
			},
		}
		uc := NewAccountUsecase(repo, &mockHasher{})

		_, err := uc.Register(context.Background(), validCandidate())

		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("hashing failure", func(t *testing.T) {
		repo := &mockAccountRepository{}
		hasher := &mockHasher{
			HashFunc: func(password string) (string, error) {
				return "", bcrypt.ErrPasswordTooLong
			},
		}
		uc := NewAccountUsecase(repo, hasher)

		_, err := uc.Register(context.Background(), validCandidate())

		assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
		assert.Equal(t, 0, repo.createCalls())
	})
}

func TestAccountUsecase_Validate(t *testing.T) {
	repo := &mockAccountRepository{}
	uc := NewAccountUsecase(repo, &mockHasher{})

	err := uc.Validate(context.Background(), Candidate{Email: "1@1.com", Password: "pollo1", PasswordConfirmation: "pollo1"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []domain.Violation{domain.MissingName}, verr.Violations)
	assert.Equal(t, 0, repo.createCalls(), "Validate must not write")
}

func TestAccountUsecase_Authenticate(t *testing.T) {
	repo := &mockAccountRepository{}
	hasher := &mockHasher{}
	uc := NewAccountUsecase(repo, hasher)

	registered, err := uc.Register(context.Background(), Candidate{
		Name:                 "Chicken",
		Email:                "testing@1.com",
		Password:             "pollo1",
		PasswordConfirmation: "pollo1",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{name: "correct email and password", email: "testing@1.com", password: "pollo1", wantOK: true},
		{name: "wrong password", email: "testing@1.com", password: "wrongpassword"},
		{name: "unknown email", email: "wrongemail@1.com", password: "pollo1"},
		{name: "leading and trailing spaces in email", email: "   testing@1.com ", password: "pollo1", wantOK: true},
		{name: "email in mixed case", email: "TeStIng@1.cOm", password: "pollo1", wantOK: true},
		{name: "password in different case", email: "testing@1.com", password: "POLLO1"},
		{name: "password with surrounding spaces", email: "testing@1.com", password: " pollo1 "},
		{name: "email prefix only", email: "testing@1", password: "pollo1"},
		{name: "empty email", email: "", password: "pollo1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := uc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, registered.ID, account.ID)
				assert.Equal(t, registered.Email, account.Email)
				return
			}
			assert.Nil(t, account)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAccountUsecase_Authenticate_IndistinguishableFailures(t *testing.T) {
	repo := &mockAccountRepository{}
	hasher := &mockHasher{}
	uc := NewAccountUsecase(repo, hasher)

	_, err := uc.Register(context.Background(), Candidate{Name: "Chicken", Email: "testing@1.com", Password: "pollo1", PasswordConfirmation: "pollo1"})
	require.NoError(t, err)

	_, wrongPassword := uc.Authenticate(context.Background(), "testing@1.com", "wrongpassword")
	_, unknownEmail := uc.Authenticate(context.Background(), "wrongemail@1.com", "pollo1")

	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, 2, hasher.compareCalls(), "a hash comparison should run for both failures")
}

func TestAccountUsecase_Authenticate_UnknownEmailUsesHasherCost(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost, 6} {
		repo := &mockAccountRepository{}
		hasher := &mockHasher{
			HashFunc: func(password string) (string, error) {
				b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
				return string(b), err
			},
		}
		uc := NewAccountUsecase(repo, hasher)

		registered, err := uc.Register(context.Background(), Candidate{Name: "Chicken", Email: "testing@1.com", Password: "pollo1", PasswordConfirmation: "pollo1"})
		require.NoError(t, err)

		_, err = uc.Authenticate(context.Background(), "wrongemail@1.com", "pollo1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		digests := hasher.comparedDigests()
		require.Len(t, digests, 1)
		assert.NotEqual(t, registered.PasswordDigest, digests[0])

		got, err := bcrypt.Cost([]byte(digests[0]))
		require.NoError(t, err)
		assert.Equal(t, cost, got, "dummy digest should be hashed at the configured cost")

		registeredCost, err := bcrypt.Cost([]byte(registered.PasswordDigest))
		require.NoError(t, err)
		assert.Equal(t, registeredCost, got)
	}
}

func TestNewAccountUsecase_HashFailureFallsBack(t *testing.T) {
	hasher := &mockHasher{
		HashFunc: func(password string) (string, error) {
			return "", bcrypt.ErrPasswordTooLong
		},
	}
	uc := NewAccountUsecase(&mockAccountRepository{}, hasher)

	_, err := uc.Authenticate(context.Background(), "wrongemail@1.com", "pollo1")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, []string{fallbackDigest}, hasher.comparedDigests())
}

func TestAccountUsecase_Authenticate_StoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := &mockAccountRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.Account, error) {
			return nil, storeErr
		},
	}
	uc := NewAccountUsecase(repo, &mockHasher{})

	account, err := uc.Authenticate(context.Background(), "testing@1.com", "pollo1")

	assert.Nil(t, account)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
