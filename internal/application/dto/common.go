package dto

// ErrorResponse cuerpo de error HTTP: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de confirmación HTTP: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}
