package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse cuerpo de respuestas de control (reload, health).
type StatusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}
