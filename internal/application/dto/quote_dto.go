package dto

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// QuoteRequest entrada de POST /api/quote. Los campos de contacto no afectan el precio.
type QuoteRequest struct {
	Product  string       `json:"product" form:"product" example:"garage"`
	WidthM   NumericInput `json:"width_m" form:"width_m" swaggertype:"string" example:"3"`
	HeightM  NumericInput `json:"height_m" form:"height_m" swaggertype:"string" example:"2.2"`
	Qty      NumericInput `json:"qty" form:"qty" swaggertype:"string" example:"1"`
	Name     string       `json:"name" form:"name"`
	Phone    string       `json:"phone" form:"phone"`
	Location string       `json:"location" form:"location"`
	Finish   string       `json:"finish" form:"finish"`
	Message  string       `json:"message" form:"message"`
}

// ToEntity convierte los campos numéricos; devuelve *domain.ValidationError en el primero inválido.
// Mismo orden que el estimador (product, width, height, qty).
func (r QuoteRequest) ToEntity() (entity.QuoteRequest, error) {
	out := entity.QuoteRequest{Product: strings.TrimSpace(r.Product)}
	if out.Product == "" {
		return entity.QuoteRequest{}, domain.NewValidationError("product", "is required")
	}
	var err error
	if out.Width, err = r.WidthM.Decimal("width"); err != nil {
		return entity.QuoteRequest{}, err
	}
	if out.Height, err = r.HeightM.Decimal("height"); err != nil {
		return entity.QuoteRequest{}, err
	}
	if out.Qty, err = r.Qty.Decimal("qty"); err != nil {
		return entity.QuoteRequest{}, err
	}
	return out, nil
}

var strictPolicy = bluemonday.StrictPolicy()

// Contact devuelve los datos de contacto sin etiquetas HTML (van a WhatsApp y al PDF).
func (r QuoteRequest) Contact() entity.ContactDetails {
	return entity.ContactDetails{
		Name:     plainText(r.Name),
		Phone:    plainText(r.Phone),
		Location: plainText(r.Location),
		Finish:   plainText(r.Finish),
		Message:  plainText(r.Message),
	}
}

// plainText quita HTML; bluemonday escapa entidades, se deshacen porque el destino no es HTML.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// EstimateResponse forma estable del objeto estimate (números JSON, no strings).
type EstimateResponse struct {
	ProductLabel string  `json:"productLabel" example:"Automatic Garage Door"`
	Area         float64 `json:"area" example:"6.6"`
	Qty          float64 `json:"qty" example:"1"`
	UnitEstimate int64   `json:"unitEstimate" example:"154100"`
	Low          int64   `json:"low" example:"138690"`
	High         int64   `json:"high" example:"169510"`
	Currency     string  `json:"currency" example:"MUR"`
}

// QuoteResponse respuesta 200 de POST /api/quote.
type QuoteResponse struct {
	OK          bool             `json:"ok"`
	Estimate    EstimateResponse `json:"estimate"`
	Reference   string           `json:"reference,omitempty"`
	WhatsAppURL string           `json:"whatsappUrl"`
}

// NewEstimateResponse mapea la entidad al formato de salida.
func NewEstimateResponse(e *entity.QuoteEstimate) EstimateResponse {
	return EstimateResponse{
		ProductLabel: e.ProductLabel,
		Area:         e.Area.InexactFloat64(),
		Qty:          e.Qty.InexactFloat64(),
		UnitEstimate: e.UnitEstimate.IntPart(),
		Low:          e.Low.IntPart(),
		High:         e.High.IntPart(),
		Currency:     e.Currency,
	}
}

// ProductRuleResponse regla del catálogo para GET /api/products.
type ProductRuleResponse struct {
	Key         string  `json:"key" example:"garage"`
	Label       string  `json:"label" example:"Automatic Garage Door"`
	Mode        string  `json:"mode" example:"area_scaled"`
	Base        float64 `json:"base" example:"65000"`
	PerAreaUnit float64 `json:"perAreaUnit" example:"13500"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items    []ProductRuleResponse `json:"items"`
	Currency string                `json:"currency"`
}
