package repository

import (
	"context"

	"github.com/jhoicas/germatek-api/internal/domain/entity"
)

// ProductRuleRepository define el puerto de persistencia del catálogo de precios (DIP).
// Solo se lee al arrancar; las cotizaciones nunca se persisten.
type ProductRuleRepository interface {
	ListActive(ctx context.Context) ([]entity.ProductRule, error)
	Upsert(ctx context.Context, rule entity.ProductRule) error
}
