package reference_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/germatek-api/internal/domain"
	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/infrastructure/reference"
)

func TestJWTSigner_IdaYVuelta(t *testing.T) {
	s, err := reference.NewJWTSigner("secret", "germatek-api", time.Hour)
	require.NoError(t, err)

	in := entity.QuoteRequest{
		Product: "garage",
		Width:   decimal.RequireFromString("3.333"),
		Height:  decimal.RequireFromString("2.2"),
		Qty:     decimal.RequireFromString("1.5"),
	}
	tok, id, err := s.Sign(in)
	require.NoError(t, err)

	out, gotID, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, "garage", out.Product)
	assert.True(t, out.Width.Equal(in.Width))
	assert.True(t, out.Height.Equal(in.Height))
	assert.True(t, out.Qty.Equal(in.Qty))
}

func TestJWTSigner_Errores(t *testing.T) {
	_, err := reference.NewJWTSigner("", "x", time.Hour)
	assert.Error(t, err)
	_, err = reference.NewJWTSigner("s", "x", 0)
	assert.Error(t, err)

	expired, err := reference.NewJWTSigner("secret", "x", time.Nanosecond)
	require.NoError(t, err)
	tok, _, err := expired.Sign(entity.QuoteRequest{Product: "garage"})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, _, err = expired.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrExpired)

	s, err := reference.NewJWTSigner("secret", "x", time.Hour)
	require.NoError(t, err)
	_, _, err = s.Verify("basura")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
