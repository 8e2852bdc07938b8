package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-vault/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCountUsersHandler(t *testing.T) {
	e := echo.New()

	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/users/count", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		countUsers = func(context.Context, database.DB) (int, error) { return 42, nil }
		ctx, rec := newCtx()
		require.NoError(t, CountUsersHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total":42`)
	})

	t.Run("storage error", func(t *testing.T) {
		t.Cleanup(restore)
		countUsers = func(context.Context, database.DB) (int, error) { return 0, errors.New("down") }
		ctx, rec := newCtx()
		require.NoError(t, CountUsersHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
