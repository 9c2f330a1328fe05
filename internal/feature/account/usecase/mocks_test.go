package usecase

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"account_backend/internal/feature/account/domain/entity"
)

// mockAccountRepository is a mock implementation of AccountRepository.
// Unset function fields fall back to an in-memory map keyed by email.
type mockAccountRepository struct {
	CreateFunc      func(ctx context.Context, account *entity.Account) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.Account, error)

	mu       sync.Mutex
	accounts map[string]*entity.Account
	nextID   uint
	creates  int
}

// Create is the mock implementation of the Create method.
func (m *mockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	m.mu.Lock()
	m.creates++
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.accounts == nil {
		m.accounts = map[string]*entity.Account{}
	}
	if _, ok := m.accounts[account.Email]; ok {
		return ErrEmailAlreadyExists
	}
	m.nextID++
	account.ID = m.nextID
	stored := *account
	m.accounts[account.Email] = &stored
	return nil
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.accounts[email]; ok {
		found := *a
		return &found, nil
	}
	return nil, ErrAccountNotFound
}

// createCalls returns how many times Create was invoked.
func (m *mockAccountRepository) createCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.creates
}

// mockHasher is a PasswordHasher backed by bcrypt at minimum cost unless overridden.
type mockHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(password, digest string) error

	mu       sync.Mutex
	compares int
	digests  []string
}

// Hash is the mock implementation of the Hash method.
func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(b), err
}

// Compare is the mock implementation of the Compare method.
func (m *mockHasher) Compare(password, digest string) error {
	m.mu.Lock()
	m.compares++
	m.digests = append(m.digests, digest)
	m.mu.Unlock()
	if m.CompareFunc != nil {
		return m.CompareFunc(password, digest)
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
}

// compareCalls returns how many times Compare was invoked.
func (m *mockHasher) compareCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compares
}

// comparedDigests returns the digests passed to Compare, in call order.
func (m *mockHasher) comparedDigests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.digests...)
}
