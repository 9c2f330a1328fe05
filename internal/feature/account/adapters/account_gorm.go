// Package adapters provides repository implementations for the account feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
	"account_backend/internal/feature/account/usecase"
)

// pgUniqueViolation は unique_violation を表す Postgres の SQLSTATE です。
const pgUniqueViolation = "23505"

// accountGorm は AccountRepository インターフェースの GORM 実装です。
// メールアドレスの一意性は accounts.email のユニークインデックスで保証します。
type accountGorm struct {
	db *gorm.DB
}

// accountGorm が AccountRepository を実装していることをコンパイル時に確認します。
var _ usecase.AccountRepository = (*accountGorm)(nil)

// NewAccountGorm はaccountGormの新しいインスタンスを生成します。
func NewAccountGorm(db *gorm.DB) *accountGorm {
	return &accountGorm{db: db}
}

// Create はメールアドレスを正規化してアカウントを挿入します。
// ユニークインデックスに拒否された場合、usecase.ErrEmailAlreadyExists を返します。
func (r *accountGorm) Create(ctx context.Context, a *entity.Account) error {
	if a == nil {
		return errors.New("account is nil")
	}
	a.Email = domain.NormalizeEmail(a.Email)
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail は保存済みメールアドレスが正規化済みメールアドレスと一致するアカウントを取得します。
// 一致するものがない場合、usecase.ErrAccountNotFound を返します。
func (r *accountGorm) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("email = ?", domain.NormalizeEmail(email)).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// isDuplicateKey は err が一意制約違反かどうかを判定します。
// gorm.ErrDuplicatedKey は dialector がエラーを変換した場合に返されます。
// Postgres のチェックは TranslateError なしで開かれた接続を対象とします。
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
