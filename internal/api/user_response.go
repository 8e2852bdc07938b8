package api

import (
	"time"

	"user-vault/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int        `json:"id" example:"1"`
	Name      string     `json:"name" example:"Alice"`
	Email     string     `json:"email" example:"alice@example.com"`
	Role      model.Role `json:"role" example:"user"`
	Avatar    *string    `json:"avatar" example:"https://img.example.com/alice.png"`
	CreatedAt time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse maps a model.User onto the wire shape.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}
