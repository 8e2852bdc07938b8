package auth

import (
	"time"

	"user-vault/internal/repository"
	"user-vault/internal/service"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// Seams for tests.
var (
	hashPassword       = service.HashPassword
	authenticateUser   = service.AuthenticateUser
	issueAccessToken   = service.IssueAccessToken
	issueRefreshToken  = service.IssueRefreshToken
	verifyRefreshToken = service.VerifyRefreshToken
	cacheUser          = service.CacheUser
	createUser         = repository.CreateUser
	getUserByEmail     = repository.GetUserByEmail
	updateRefreshToken = repository.UpdateRefreshToken
)
