// Package router は gin エンジンを組み立てます。
package router

import (
	"github.com/gin-gonic/gin"

	accounthandler "account_backend/internal/feature/account/transport/handler"
	"account_backend/internal/platform/http/handler"
)

// NewRouter はすべてのルートを登録します。認証が必要なルートはありません。
// login は資格情報を検証しますが、セッションは発行しません。
func NewRouter(accounts *accounthandler.AccountHandler, db handler.Pinger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Liveness / Readiness
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(db))

	// アカウント作成
	r.POST("/signup", accounts.Signup)
	// 資格情報の確認
	r.POST("/login", accounts.Login)

	return r
}
