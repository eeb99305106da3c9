package dto

type WarningRequest struct {
	Message string `json:"message" validate:"required"`
}
