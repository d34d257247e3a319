package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
	"github.com/jhoicas/germatek-api/internal/domain/repository"
)

var _ repository.ProductRuleRepository = (*ProductRuleRepo)(nil)

// Querier abstrae pool y transacción para que el repositorio sirva en ambos casos.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProductRuleRepo implementación del puerto ProductRuleRepository sobre PostgreSQL.
type ProductRuleRepo struct {
	q Querier
}

// NewProductRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRuleRepository(q Querier) *ProductRuleRepo {
	return &ProductRuleRepo{q: q}
}

// ListActive lee las reglas activas. base y per_area son NUMERIC → decimal (codec pgx-shopspring-decimal).
func (r *ProductRuleRepo) ListActive(ctx context.Context) ([]entity.ProductRule, error) {
	query := `
		SELECT key, label, mode, base, per_area
		FROM product_rules
		WHERE active
		ORDER BY key`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list product_rules: %w", err)
	}
	defer rows.Close()

	var out []entity.ProductRule
	for rows.Next() {
		var (
			key, label, mode string
			base, perArea    decimal.Decimal
		)
		if err := rows.Scan(&key, &label, &mode, &base, &perArea); err != nil {
			return nil, fmt.Errorf("scan product_rule: %w", err)
		}
		rule, err := entity.NewProductRule(key, label, mode, base, perArea)
		if err != nil {
			return nil, fmt.Errorf("product_rule %q: %w", key, err)
		}
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar product_rules: %w", err)
	}
	return out, nil
}

// Upsert inserta o actualiza la regla por key y la deja activa.
func (r *ProductRuleRepo) Upsert(ctx context.Context, rule entity.ProductRule) error {
	query := `
		INSERT INTO product_rules (key, label, mode, base, per_area, active, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
		ON CONFLICT (key) DO UPDATE SET
			label = EXCLUDED.label,
			mode = EXCLUDED.mode,
			base = EXCLUDED.base,
			per_area = EXCLUDED.per_area,
			active = TRUE,
			updated_at = NOW()`
	_, err := r.q.Exec(ctx, query, rule.Key, rule.Label, rule.Mode.Name(), rule.Base(), rule.PerAreaUnit())
	if err != nil {
		return fmt.Errorf("upsert product_rule %q: %w", rule.Key, err)
	}
	return nil
}
