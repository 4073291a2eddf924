package dto

import "time"

// Envelope sobre JSON estándar de toda respuesta exitosa.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// NewEnvelope arma el sobre con el timestamp del request en ISO-8601.
func NewEnvelope(data any, now time.Time) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
