package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/germatek-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "germatek-api-test"
)

func TestGenerateAndParse_ConservaSolicitud(t *testing.T) {
	tok, id, err := pkgjwt.Generate(testSecret, testIssuer, time.Hour, "garage", "3", "2.2", "1")
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.NotEmpty(t, id)

	claims, err := pkgjwt.Parse(testSecret, testIssuer, tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.ID)
	assert.Equal(t, "garage", claims.Product)
	assert.Equal(t, "3", claims.Width)
	assert.Equal(t, "2.2", claims.Height)
	assert.Equal(t, "1", claims.Qty)
}

func TestGenerate_IDUnicoPorReferencia(t *testing.T) {
	_, id1, err := pkgjwt.Generate(testSecret, testIssuer, time.Hour, "garage", "3", "2.2", "1")
	require.NoError(t, err)
	_, id2, err := pkgjwt.Generate(testSecret, testIssuer, time.Hour, "garage", "3", "2.2", "1")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestParse_Expirado(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, -time.Minute, "garage", "3", "2.2", "1")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, testIssuer, time.Hour, "garage", "3", "2.2", "1")
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", testIssuer, tok)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestParse_EmisorDistinto(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "otro-emisor", time.Hour, "garage", "3", "2.2", "1")
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, testIssuer, tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, _, err := pkgjwt.Generate("", testIssuer, time.Hour, "garage", "3", "2.2", "1")
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", testIssuer, "x.y.z")
	assert.Error(t, err)
}

func TestParse_Malformado(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, testIssuer, "token.invalido.aqui")
	assert.Error(t, err)
}
