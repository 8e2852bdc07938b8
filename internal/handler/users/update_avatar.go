package users

import (
	"context"
	"errors"
	"net/http"

	"user-vault/internal/api"
	"user-vault/internal/cache"
	"user-vault/internal/database"
	"user-vault/internal/middleware"
	"user-vault/internal/repository"
	"user-vault/internal/service"
	"user-vault/internal/worker"

	"github.com/labstack/echo/v4"
)

// UpdateAvatarHandler 更新當前使用者頭像
// @Summary     Update avatar URL
// @Description 更新當前使用者的頭像網址並回傳更新後的使用者
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       avatar formData string true "頭像網址"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/avatar [patch]
func UpdateAvatarHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.Email == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.UpdateAvatarRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := updateAvatarURL(c.Request().Context(), db, claims.Email, &req.Avatar)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		// invalidate the cached snapshot off the request path; a dropped
		// job just lets the entry expire via its TTL
		email := user.Email
		wp.Submit(func(ctx context.Context) {
			_ = dropCachedUser(ctx, rdb, email)
		})

		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
