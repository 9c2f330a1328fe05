package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
)

// dummyPassword はアカウントが見つからない場合に比較するダイジェストの元になる文字列です。
// usecase ごとに一度だけハッシュ化されます。
const dummyPassword = "account-backend-dummy-password"

// fallbackDigest は生成時に dummyPassword のハッシュ化が失敗した場合のみ使用します。
const fallbackDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// accountUsecase はアカウント登録と資格情報の認証を実装します。
type accountUsecase struct {
	accounts  AccountRepository
	hasher    PasswordHasher
	validator *Validator
	// dummyDigest は hasher と同じコストで生成されるため、未登録メールアドレスでも
	// パスワード誤りと同じ bcrypt の計算量になります。
	dummyDigest string
}

// NewAccountUsecase はaccountUsecaseの新しいインスタンスを生成します。
func NewAccountUsecase(accounts AccountRepository, hasher PasswordHasher) *accountUsecase {
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		dummy = fallbackDigest
	}
	return &accountUsecase{
		accounts:    accounts,
		hasher:      hasher,
		validator:   NewValidator(accounts),
		dummyDigest: dummy,
	}
}

// Validate は何も書き込まずに作成ルールを検証します。
func (u *accountUsecase) Validate(ctx context.Context, c Candidate) error {
	return u.validator.Validate(ctx, c)
}

// Register は候補を検証し、有効な場合のみ正規化済みメールアドレスとハッシュ化したパスワードで
// 新しいアカウントを保存します。
// 同時挿入でユニークインデックスに負けた場合は duplicate_email 違反として返します。
func (u *accountUsecase) Register(ctx context.Context, c Candidate) (*entity.Account, error) {
	if err := u.validator.Validate(ctx, c); err != nil {
		return nil, err
	}

	digest, err := u.hasher.Hash(c.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &entity.Account{
		Name:           strings.TrimSpace(c.Name),
		Email:          domain.NormalizeEmail(c.Email),
		PasswordDigest: digest,
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, &domain.ValidationError{Violations: []domain.Violation{domain.DuplicateEmail}}
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// Authenticate はパスワードがダイジェストと一致する場合、メールアドレスで特定したアカウントを返します。
// メールアドレスは正規化し、パスワードは与えられたまま使用します。
// 未登録メールアドレスとパスワード誤りはどちらも ErrInvalidCredentials を返します。
func (u *accountUsecase) Authenticate(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := u.accounts.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil && !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	digest := u.dummyDigest
	if err == nil {
		digest = account.PasswordDigest
	}

	// アカウントが存在しない場合も必ず比較します。
	compareErr := u.hasher.Compare(password, digest)

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
