package users

import (
	"user-vault/internal/repository"
	"user-vault/internal/service"
)

// Seams for tests.
var (
	getUserByEmail  = repository.GetUserByEmail
	countUsers      = repository.CountUsers
	updateAvatarURL = repository.UpdateAvatarURL
	cacheUser       = service.CacheUser
	cachedUser      = service.CachedUser
	dropCachedUser  = service.DropCachedUser
)
