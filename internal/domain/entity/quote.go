package entity

import "github.com/shopspring/decimal"

// QuoteRequest solicitud de estimación: producto y dimensiones en metros.
// Transitoria, una por llamada.
type QuoteRequest struct {
	Product string
	Width   decimal.Decimal
	Height  decimal.Decimal
	Qty     decimal.Decimal // se aceptan cantidades fraccionarias
}

// QuoteEstimate resultado derivado e inmutable de una estimación; no se persiste.
type QuoteEstimate struct {
	ProductKey    string
	ProductLabel  string
	Area          decimal.Decimal // redondeada a 2 decimales para mostrar
	Qty           decimal.Decimal
	UnitEstimate  decimal.Decimal // precio unitario redondeado a la unidad
	Subtotal      decimal.Decimal // subtotal después de aplicar el mínimo
	Low           decimal.Decimal
	High          decimal.Decimal
	Currency      string
	MinJobApplied bool
}

// ContactDetails campos que solo usa el cliente (WhatsApp, PDF); el estimador los ignora.
type ContactDetails struct {
	Name     string
	Phone    string
	Location string
	Finish   string
	Message  string
}

// Brand datos de la marca mostrados en el PDF y en el mensaje de WhatsApp.
type Brand struct {
	Name           string
	Slogan         string
	WhatsAppNumber string
	Email          string
	Coverage       string
}
