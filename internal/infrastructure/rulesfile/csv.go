package rulesfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// csvHeader columnas esperadas, en este orden.
var csvHeader = []string{"key", "label", "mode", "base", "per_area"}

// LoadCSV abre y decodifica un CSV de reglas en el charset indicado.
func LoadCSV(path, charset string) ([]entity.ProductRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rulesfile: abrir %s: %w", path, err)
	}
	defer f.Close()
	return DecodeCSV(f, charset)
}

// DecodeCSV lee key,label,mode,base,per_area con encabezado. Las hojas de cálculo
// exportan a menudo en ISO-8859-1 o Windows-1252; se convierten a UTF-8 antes de parsear.
func DecodeCSV(r io.Reader, charset string) ([]entity.ProductRule, error) {
	src, err := charsetReader(r, charset)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("rulesfile: leer encabezado: %w", err)
	}
	for i, col := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")), col) {
			return nil, fmt.Errorf("rulesfile: columna %d debe ser %q, llegó %q", i+1, col, header[i])
		}
	}

	var out []entity.ProductRule
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rulesfile: línea %d: %w", line, err)
		}
		base, err := amount(rec[3])
		if err != nil {
			return nil, fmt.Errorf("rulesfile: línea %d base: %w", line, err)
		}
		perArea, err := amount(rec[4])
		if err != nil {
			return nil, fmt.Errorf("rulesfile: línea %d per_area: %w", line, err)
		}
		pr, err := entity.NewProductRule(rec[0], strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2]), base, perArea)
		if err != nil {
			return nil, fmt.Errorf("rulesfile: línea %d: %w", line, err)
		}
		out = append(out, pr)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("rulesfile: el archivo no tiene reglas")
	}
	return out, nil
}

func charsetReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("rulesfile: charset %q no soportado", charset)
	}
}
