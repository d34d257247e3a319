package dto

// ErrorResponse cuerpo de error HTTP: {"error": "...", "code": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// HealthResponse respuesta de GET /api/health.
type HealthResponse struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}

// LinkResponse enlace simple (WhatsApp).
type LinkResponse struct {
	URL string `json:"url"`
}
