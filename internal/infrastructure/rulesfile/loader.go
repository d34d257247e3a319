// Package rulesfile lee el catálogo de precios desde archivos YAML o CSV y lo exporta como SQL.
//
//	rules:
//	  - key: garage
//	    label: Automatic Garage Door
//	    mode: area_scaled
//	    base: 65000
//	    per_area: 13500
package rulesfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

type document struct {
	Rules []rule `yaml:"rules"`
}

// Los montos se leen como texto para no pasar por float64.
type rule struct {
	Key     string `yaml:"key"`
	Label   string `yaml:"label"`
	Mode    string `yaml:"mode"`
	Base    string `yaml:"base"`
	PerArea string `yaml:"per_area"`
}

// LoadFile abre y decodifica el archivo.
func LoadFile(path string) ([]entity.ProductRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rulesfile: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodifica reglas desde YAML.
func Decode(r io.Reader) ([]entity.ProductRule, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("rulesfile: decodificar: %w", err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("rulesfile: el archivo no tiene reglas")
	}

	out := make([]entity.ProductRule, 0, len(doc.Rules))
	for i, r := range doc.Rules {
		base, err := amount(r.Base)
		if err != nil {
			return nil, fmt.Errorf("rulesfile: regla %d (%s) base: %w", i, r.Key, err)
		}
		perArea, err := amount(r.PerArea)
		if err != nil {
			return nil, fmt.Errorf("rulesfile: regla %d (%s) per_area: %w", i, r.Key, err)
		}
		pr, err := entity.NewProductRule(r.Key, r.Label, r.Mode, base, perArea)
		if err != nil {
			return nil, fmt.Errorf("rulesfile: regla %d: %w", i, err)
		}
		out = append(out, pr)
	}
	return out, nil
}

func amount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
