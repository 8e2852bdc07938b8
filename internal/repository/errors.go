// Package repository mediates all reads and writes of the users table.
// Sentinel errors let handlers tell domain outcomes apart from storage
// failures: ErrUserNotFound maps to HTTP 404, anything else to 500.
package repository

import "errors"

// ErrUserNotFound is returned when a mutation targets a user that does
// not exist in storage.
var ErrUserNotFound = errors.New("user not found")
