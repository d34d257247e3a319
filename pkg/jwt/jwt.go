// Package jwt firma y valida las referencias de cotización.
// La referencia lleva los datos de la solicitud para recalcular la estimación
// (PDF) sin guardar nada en servidor.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrExpired la referencia está bien firmada pero venció.
var ErrExpired = errors.New("jwt: referencia expirada")

// QuoteClaims claims estándar + la solicitud original (valores como texto decimal exacto).
type QuoteClaims struct {
	jwt.RegisteredClaims
	Product string `json:"product"`
	Width   string `json:"width"`
	Height  string `json:"height"`
	Qty     string `json:"qty"`
}

// Generate firma una referencia para la solicitud. Devuelve el token y su ID (jti).
func Generate(secret, issuer string, ttl time.Duration, product, width, height, qty string) (token, id string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	id = uuid.New().String()
	claims := QuoteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Product: product,
		Width:   width,
		Height:  height,
		Qty:     qty,
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return token, id, nil
}

// Parse valida firma, emisor y vencimiento. Un token vencido devuelve ErrExpired.
func Parse(secret, issuer, tokenString string) (*QuoteClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &QuoteClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*QuoteClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
