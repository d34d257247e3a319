// Package catalog construye el catálogo de precios al arrancar, desde la fuente configurada.
package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/germatek-api/internal/domain/quote"
	"github.com/jhoicas/germatek-api/internal/domain/repository"
	"github.com/jhoicas/germatek-api/internal/infrastructure/postgres"
	"github.com/jhoicas/germatek-api/internal/infrastructure/rulesfile"
	"github.com/jhoicas/germatek-api/pkg/config"
)

// OpenRepositoryFunc abre el repositorio de reglas; el cierre libera la conexión.
type OpenRepositoryFunc func(ctx context.Context, db config.DBConfig) (repository.ProductRuleRepository, func(), error)

// Source fuente del catálogo.
type Source struct {
	Pricing        config.PricingConfig
	DB             config.DBConfig
	OpenRepository OpenRepositoryFunc // nil = PostgreSQL vía pgx
}

// OpenPostgres abre un pool y devuelve el repositorio sobre él.
func OpenPostgres(ctx context.Context, db config.DBConfig) (repository.ProductRuleRepository, func(), error) {
	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewProductRuleRepository(pool), pool.Close, nil
}

// Load lee las reglas y las congela en un quote.Catalog. La conexión a BD se cierra al terminar.
func (s Source) Load(ctx context.Context) (*quote.Catalog, error) {
	switch s.Pricing.Source {
	case config.PricingSourceBuiltin, "":
		return quote.DefaultCatalog(), nil

	case config.PricingSourceFile:
		rules, err := rulesfile.LoadFile(s.Pricing.RulesFile)
		if err != nil {
			return nil, err
		}
		return quote.NewCatalog(rules...)

	case config.PricingSourcePostgres:
		open := s.OpenRepository
		if open == nil {
			open = OpenPostgres
		}
		repo, closeFn, err := open(ctx, s.DB)
		if err != nil {
			return nil, fmt.Errorf("catalog: abrir postgres: %w", err)
		}
		defer closeFn()
		rules, err := repo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("catalog: leer reglas: %w", err)
		}
		if len(rules) == 0 {
			return nil, fmt.Errorf("catalog: product_rules no tiene reglas activas")
		}
		return quote.NewCatalog(rules...)

	default:
		return nil, fmt.Errorf("catalog: fuente %q no soportada", s.Pricing.Source)
	}
}
