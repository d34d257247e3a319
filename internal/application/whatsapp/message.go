// Package whatsapp arma los enlaces wa.me con el mensaje prellenado que el sitio
// ofrece al cliente después de una estimación.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// DefaultNumber se usa cuando la marca no tiene número configurado.
const DefaultNumber = "2300000000"

// Link construye https://wa.me/<número>?text=<mensaje>.
// Del número solo se conservan los dígitos; el texto se codifica como encodeURIComponent (espacios como %20).
func Link(number, text string) string {
	digits := onlyDigits(number)
	if digits == "" {
		digits = DefaultNumber
	}
	return "https://wa.me/" + digits + "?text=" + uriComponent.Replace(url.QueryEscape(text))
}

// uriComponent deja la salida de QueryEscape como la de encodeURIComponent:
// espacio como %20 y sin escapar ! ' ( ) *.
var uriComponent = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EnquiryMessage mensaje genérico de los botones "WhatsApp" del sitio.
func EnquiryMessage(brand entity.Brand) string {
	return fmt.Sprintf("Hi %s, I’d like a quotation. My location is ___ and I’m interested in "+
		"(garage door / gate opener / WPC door). Dimensions: ___. Photos available.", brand.Name)
}

// QuoteMessage mensaje con los datos del formulario de cotización y el rango estimado.
func QuoteMessage(brand entity.Brand, contact entity.ContactDetails, req entity.QuoteRequest, est *entity.QuoteEstimate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, I’d like a quotation:\n\n", brand.Name)
	fmt.Fprintf(&b, "Name: %s\n", contact.Name)
	fmt.Fprintf(&b, "Phone: %s\n", contact.Phone)
	fmt.Fprintf(&b, "Location: %s\n\n", orDash(contact.Location))
	fmt.Fprintf(&b, "Product: %s\n", req.Product)
	fmt.Fprintf(&b, "Width: %s m\n", req.Width.String())
	fmt.Fprintf(&b, "Height: %s m\n", req.Height.String())
	fmt.Fprintf(&b, "Quantity: %s\n", req.Qty.String())
	fmt.Fprintf(&b, "Finish/Notes: %s\n", orDash(contact.Finish))
	fmt.Fprintf(&b, "Extra: %s\n\n", orDash(contact.Message))
	if est != nil {
		fmt.Fprintf(&b, "Estimated range shown on site: %s %s - %s\n", est.Currency, est.Low.String(), est.High.String())
	}
	b.WriteString("Photos available: Yes")
	return b.String()
}

// QuoteLink atajo: mensaje de cotización + enlace con el número de la marca.
func QuoteLink(brand entity.Brand, contact entity.ContactDetails, req entity.QuoteRequest, est *entity.QuoteEstimate) string {
	return Link(brand.WhatsAppNumber, QuoteMessage(brand, contact, req, est))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
