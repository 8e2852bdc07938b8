package router

import (
	"github.com/labstack/echo/v4"

	"user-vault/internal/cache"
	"user-vault/internal/database"
	"user-vault/internal/handler"
	"user-vault/internal/handler/auth"
	"user-vault/internal/handler/users"
	"user-vault/internal/middleware"
	"user-vault/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, rdb))

	// 帳號註冊、登入與令牌換發
	api.POST("/auth/signup", auth.SignupHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, rdb))
	api.POST("/auth/refresh", auth.RefreshHandler(db))

	// 當前使用者個人資料
	apiUsersMe := api.Group("/users/me", middleware.RequireAuth)
	apiUsersMe.GET("", users.GetMeHandler(db, rdb))
	apiUsersMe.PATCH("/avatar", users.UpdateAvatarHandler(db, rdb, wp))

	// 管理員專屬
	api.GET("/users/count", users.CountUsersHandler(db), middleware.RequireAdmin)
}
