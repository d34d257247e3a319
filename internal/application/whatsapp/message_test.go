package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/germatek-api/internal/application/whatsapp"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

var brand = entity.Brand{Name: "GERMATEK", WhatsAppNumber: "+230 5766 7195"}

func TestLink_NumeroSoloDigitosYEspaciosComoPorcentaje20(t *testing.T) {
	link := whatsapp.Link(brand.WhatsAppNumber, "Hola a&b=c\nok")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/23057667195?text="), link)
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
	assert.Contains(t, link, "%0A")

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hola a&b=c\nok", u.Query().Get("text"), "el texto debe sobrevivir el ida y vuelta")
}

func TestLink_MismosCaracteresQueEncodeURIComponent(t *testing.T) {
	link := whatsapp.Link("230", "a (b)! *c' ~-_.+%")
	assert.Equal(t, "https://wa.me/230?text=a%20(b)!%20*c'%20~-_.%2B%25", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "a (b)! *c' ~-_.+%", u.Query().Get("text"))
}

func TestLink_NumeroPorDefecto(t *testing.T) {
	assert.True(t, strings.HasPrefix(whatsapp.Link("", "x"), "https://wa.me/"+whatsapp.DefaultNumber+"?"))
}

func TestQuoteMessage_Formato(t *testing.T) {
	req := entity.QuoteRequest{
		Product: "garage",
		Width:   decimal.RequireFromString("3"),
		Height:  decimal.RequireFromString("2.2"),
		Qty:     decimal.NewFromInt(1),
	}
	est := &entity.QuoteEstimate{
		Currency: "MUR",
		Low:      decimal.NewFromInt(138690),
		High:     decimal.NewFromInt(169510),
	}
	contact := entity.ContactDetails{Name: "Ana", Phone: "+230 555", Finish: "black"}

	msg := whatsapp.QuoteMessage(brand, contact, req, est)

	assert.True(t, strings.HasPrefix(msg, "Hi GERMATEK, I’d like a quotation:\n\n"))
	assert.Contains(t, msg, "Name: Ana\n")
	assert.Contains(t, msg, "Location: -\n", "campo vacío se muestra como guion")
	assert.Contains(t, msg, "Width: 3 m\nHeight: 2.2 m\nQuantity: 1\n")
	assert.Contains(t, msg, "Finish/Notes: black\n")
	assert.Contains(t, msg, "Extra: -\n")
	assert.Contains(t, msg, "Estimated range shown on site: MUR 138690 - 169510\n")
	assert.True(t, strings.HasSuffix(msg, "Photos available: Yes"))
}

func TestEnquiryMessage_UsaNombreDeMarca(t *testing.T) {
	assert.True(t, strings.HasPrefix(whatsapp.EnquiryMessage(brand), "Hi GERMATEK, I’d like a quotation."))
}
