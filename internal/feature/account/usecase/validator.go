package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"account_backend/internal/feature/account/domain"
)

// MinPasswordLength はアカウント作成時のパスワードの最低文字数を定義します。
const MinPasswordLength = 6

// Candidate は呼び出し元から送信された未保存のアカウントです。
// Password と PasswordConfirmation は一時的な値であり、永続化されません。
type Candidate struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Validator は候補アカウントを作成できるかを判定します。
type Validator struct {
	accounts AccountFinder
}

// NewValidator は accounts に対してメールアドレスの一意性を確認する Validator を生成します。
func NewValidator(accounts AccountFinder) *Validator {
	return &Validator{accounts: accounts}
}

// Validate はすべての作成ルールを確認し、違反したルールをすべて含む *domain.ValidationError を返します。
// 候補が有効な場合は nil を返します。
// ErrAccountNotFound 以外のストアのエラーはラップして返します。
func (v *Validator) Validate(ctx context.Context, c Candidate) error {
	var violations []domain.Violation

	if strings.TrimSpace(c.Name) == "" {
		violations = append(violations, domain.MissingName)
	}

	email := domain.NormalizeEmail(c.Email)
	if email == "" {
		violations = append(violations, domain.MissingEmail)
	} else {
		taken, err := v.emailTaken(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			violations = append(violations, domain.DuplicateEmail)
		}
	}

	// パスワードは完全一致で比較します。大文字小文字や空白も区別します。
	if c.Password != c.PasswordConfirmation {
		violations = append(violations, domain.PasswordMismatch)
	}
	if utf8.RuneCountInString(c.Password) < MinPasswordLength {
		violations = append(violations, domain.PasswordTooShort)
	}

	if len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return nil
}

func (v *Validator) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := v.accounts.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrAccountNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
}
