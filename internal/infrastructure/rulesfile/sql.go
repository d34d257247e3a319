package rulesfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// WriteSQL escribe un upsert por regla sobre product_rules (ver migrations/001_product_rules.sql).
func WriteSQL(w io.Writer, rules []entity.ProductRule) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de precios de cotización\n")
	b.WriteString("-- Generado por quotectl rules sql\n\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "INSERT INTO product_rules (key, label, mode, base, per_area, active, updated_at)\n")
		fmt.Fprintf(&b, "VALUES ('%s', '%s', '%s', %s, %s, TRUE, NOW())\n",
			escapeSQL(r.Key), escapeSQL(r.Label), r.Mode.Name(),
			r.Base().StringFixed(2), r.PerAreaUnit().StringFixed(2))
		b.WriteString("ON CONFLICT (key) DO UPDATE SET label = EXCLUDED.label, mode = EXCLUDED.mode, " +
			"base = EXCLUDED.base, per_area = EXCLUDED.per_area, active = TRUE, updated_at = NOW();\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
