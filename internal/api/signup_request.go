package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Name     string `form:"name" validate:"required" example:"Alice"`
	Email    string `form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `form:"password" validate:"required,min=8" example:"Secret123!"`
}
