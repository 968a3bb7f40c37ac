package dto

type MessageResponse struct {
	Content string `json:"content" validate:"required"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
