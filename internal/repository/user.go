package repository

import (
	"context"
	"errors"
	"fmt"

	"user-vault/internal/database"
	"user-vault/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, role, refresh_token, avatar, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.RefreshToken,
		&u.Avatar,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

// CountUsers returns the total number of persisted users.
func CountUsers(ctx context.Context, db database.DB) (int, error) {
	row := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}

// GetUserByEmail returns the user with the given email, or (nil, nil)
// when no such record exists. The unique index on email guarantees at
// most one row.
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser inserts u and fills in the server-assigned fields from the
// returned row. The very first user in an empty table is promoted to
// the admin role regardless of the supplied one. Folding the emptiness
// check into the INSERT removes the check-then-act gap between two
// round trips, but under READ COMMITTED each statement reads its own
// start-of-statement snapshot, so two concurrent first creates can
// still both see an empty table and both self-promote.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 SELECT $1, $2, $3, CASE WHEN EXISTS (SELECT 1 FROM users) THEN $4 ELSE 'admin' END
		 RETURNING `+userColumns,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	*u = *created
	return u, nil
}

// UpdateRefreshToken stores token as the user's refresh token; nil
// clears it. No reload is performed, the caller's in-memory user is
// updated in place. Returns ErrUserNotFound when the id matches no row.
func UpdateRefreshToken(ctx context.Context, db database.DB, u *model.User, token *string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET refresh_token = $1 WHERE id = $2`,
		token,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateRefreshToken: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	u.RefreshToken = token
	return nil
}

// UpdateAvatarURL sets the avatar of the user with the given email and
// returns the refreshed record; nil url clears the column. Returns
// ErrUserNotFound when the email matches no row.
func UpdateAvatarURL(ctx context.Context, db database.DB, email string, url *string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET avatar = $1 WHERE email = $2 RETURNING `+userColumns,
		url,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("UpdateAvatarURL: %w", err)
	}
	return u, nil
}
