// Package handler はaccountフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/account/domain"
	"account_backend/internal/feature/account/domain/entity"
	"account_backend/internal/feature/account/transport/http/dto"
	"account_backend/internal/feature/account/usecase"
)

// AccountUsecase はハンドラーが使用するアカウント操作を定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AccountUsecase interface {
	// Register は候補を検証し、成功した場合に保存します。
	Register(ctx context.Context, c usecase.Candidate) (*entity.Account, error)
	// Authenticate は資格情報に一致するアカウントを返します。
	Authenticate(ctx context.Context, email, password string) (*entity.Account, error)
}

// AccountHandler はサインアップとログインのHTTPリクエストを処理します。
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler は新しいAccountHandlerを生成します。
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Signup は POST /signup を処理します。
//   - 不正なJSONの場合は 400
//   - 検証に失敗した場合は違反ルールとともに 422
//   - ストアが失敗した場合は 500
//   - 作成したアカウントとともに 201
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), usecase.Candidate{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			slog.Info("signup rejected", "violations", verr.Violations, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorRes{
				Error:      "validation failed",
				Violations: violationNames(verr.Violations),
			})
			return
		}
		slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	slog.Info("account created", "account_id", account.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewAccountRes(account))
}

// Login は POST /login を処理します。
//   - 不正なJSONの場合は 400
//   - 未登録メールアドレスまたはパスワード誤りの場合は 401（両者は区別しません）
//   - ストアが失敗した場合は 500
//   - 認証したアカウントとともに 200
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login request malformed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	account, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", domain.NormalizeEmail(req.Email), "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: usecase.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal error"})
		return
	}

	slog.Info("login successful", "account_id", account.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.NewAccountRes(account))
}

func violationNames(vs []domain.Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
