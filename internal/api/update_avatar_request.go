package api

// swagger:model api.UpdateAvatarRequest
type UpdateAvatarRequest struct {
	Avatar string `form:"avatar" validate:"required,url" example:"https://img.example.com/alice.png"`
}
