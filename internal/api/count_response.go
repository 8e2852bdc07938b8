package api

// swagger:model api.CountResponse
type CountResponse struct {
	Total int `json:"total" example:"42"`
}
