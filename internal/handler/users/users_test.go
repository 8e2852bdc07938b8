package users

import (
	"context"
	"net/http/httptest"
	"strings"

	"user-vault/internal/middleware"
	"user-vault/internal/model"
	"user-vault/internal/repository"
	"user-vault/internal/service"
	"user-vault/internal/worker"

	"github.com/labstack/echo/v4"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

// syncPool runs submitted tasks inline so tests see their effects.
type syncPool struct{ submitted int }

func (p *syncPool) Submit(t worker.Task) bool {
	p.submitted++
	t(context.Background())
	return true
}

func (p *syncPool) Stop() {}

func newMeCtx(e *echo.Echo, method, body string, claims *service.CustomClaims) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/users/me", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(middleware.ContextUserKey, claims)
	}
	return c, rec
}

func restore() {
	getUserByEmail = repository.GetUserByEmail
	countUsers = repository.CountUsers
	updateAvatarURL = repository.UpdateAvatarURL
	cacheUser = service.CacheUser
	cachedUser = service.CachedUser
	dropCachedUser = service.DropCachedUser
}

var sampleClaims = &service.CustomClaims{UserID: 7, Email: "a@b.com", Role: model.RoleUser}
