package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrExpired      = errors.New("referencia expirada")
	ErrDisabled     = errors.New("funcionalidad deshabilitada")
)

// ValidationError describe un campo de la solicitud que no pasó la validación.
// Es el único error que produce el estimador; se reporta al llamador, nunca se reintenta.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye el error para el campo indicado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
