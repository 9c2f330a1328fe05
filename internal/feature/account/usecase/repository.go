package usecase

import (
	"context"

	"account_backend/internal/feature/account/domain/entity"
)

// AccountFinder は正規化済みメールアドレスでアカウントを検索します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AccountFinder interface {
	// FindByEmail は保存済みメールアドレスが指定の正規化済みメールアドレスと一致するアカウントを取得します。
	// アカウントが存在しない場合、ErrAccountNotFound を返します。
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}

// AccountRepository はアカウントの永続化層を抽象化します。
type AccountRepository interface {
	AccountFinder

	// Create は新しいアカウントをストレージに永続化します。
	// メールアドレスが使用済みの場合、ErrEmailAlreadyExists を返します。判定はストア側で原子的に行われます。
	Create(ctx context.Context, account *entity.Account) error
}

// PasswordHasher はソルト付き一方向パスワードハッシュを抽象化します。
type PasswordHasher interface {
	// Hash は平文パスワードのダイジェストを返します。
	Hash(password string) (string, error)

	// Compare はパスワードがダイジェストと一致する場合に nil を返します。
	Compare(password, digest string) error
}
