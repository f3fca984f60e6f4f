package dto

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusRequest carries free-form order or payment status text.
type StatusRequest struct {
	Status string `json:"status"`
}
