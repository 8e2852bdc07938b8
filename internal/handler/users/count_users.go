package users

import (
	"net/http"

	"user-vault/internal/api"
	"user-vault/internal/database"

	"github.com/labstack/echo/v4"
)

// CountUsersHandler 回傳使用者總數
// @Summary     Count users
// @Description 回傳目前已註冊的使用者總數（僅管理員）
// @Tags        users
// @Produce     json
// @Success     200 {object} api.CountResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/count [get]
func CountUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		n, err := countUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.CountResponse{Total: n})
	}
}
