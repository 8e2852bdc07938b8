package users

import (
	"net/http"

	"user-vault/internal/api"
	"user-vault/internal/cache"
	"user-vault/internal/database"
	"user-vault/internal/middleware"
	"user-vault/internal/service"

	"github.com/labstack/echo/v4"
)

// GetMeHandler 取得當前使用者資訊
// @Summary     Get current user info
// @Description 透過 JWT Token 取得當前使用者詳細資訊，優先使用快取
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.Email == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		ctx := c.Request().Context()
		if cached, err := cachedUser(ctx, rdb, claims.Email); err == nil && cached != nil {
			return c.JSON(http.StatusOK, api.NewUserResponse(cached))
		}

		user, err := getUserByEmail(ctx, db, claims.Email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if user == nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}

		_ = cacheUser(ctx, rdb, user)

		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
