package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"user-vault/internal/repository"
	"user-vault/internal/service"

	"github.com/labstack/echo/v4"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newFormCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	issueRefreshToken = service.IssueRefreshToken
	verifyRefreshToken = service.VerifyRefreshToken
	cacheUser = service.CacheUser
	createUser = repository.CreateUser
	getUserByEmail = repository.GetUserByEmail
	updateRefreshToken = repository.UpdateRefreshToken
}
