package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/germatek-api/internal/domain"
)

// NumericInput valor numérico del formulario: acepta número JSON o string numérico ("3.50", " 2 ").
// La conversión se difiere a Decimal para reportar el error como validación del campo.
type NumericInput struct {
	Raw     string
	Present bool
}

// NewNumericInput atajo para tests y CLI.
func NewNumericInput(raw string) NumericInput {
	return NumericInput{Raw: raw, Present: true}
}

// UnmarshalJSON nunca falla: cualquier valor no numérico se reporta luego en Decimal.
func (n *NumericInput) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = NumericInput{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = NumericInput{Raw: str, Present: true}
		return nil
	}
	*n = NumericInput{Raw: s, Present: true}
	return nil
}

// UnmarshalText soporta formularios application/x-www-form-urlencoded.
func (n *NumericInput) UnmarshalText(b []byte) error {
	*n = NumericInput{Raw: string(b), Present: true}
	return nil
}

// MarshalJSON serializa el valor tal cual fue recibido, como string.
func (n NumericInput) MarshalJSON() ([]byte, error) {
	if !n.Present {
		return []byte("null"), nil
	}
	return json.Marshal(n.Raw)
}

// Decimal convierte el valor con precisión float64. Un exponente que no cabe en
// float64 queda en 0 o en Inf, igual que en el formulario; el decimal se arma
// desde el float (representación más corta), así "2.2" sigue siendo 2.2.
func (n NumericInput) Decimal(field string) (decimal.Decimal, error) {
	s := strings.TrimSpace(n.Raw)
	if !n.Present || s == "" {
		return decimal.Zero, domain.NewValidationError(field, "is required")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, domain.NewValidationError(field, "must be a finite number")
	}
	if f <= 0 {
		return decimal.Zero, domain.NewValidationError(field, "must be greater than 0")
	}
	return decimal.NewFromFloat(f), nil
}
