package usecase

import (
	"github.com/jhoicas/germatek-api/internal/application/dto"
	"github.com/jhoicas/germatek-api/internal/domain/quote"
)

// CatalogUseCase lectura del catálogo de precios vigente.
type CatalogUseCase struct {
	catalog  *quote.Catalog
	currency string
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog *quote.Catalog, currency string) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, currency: currency}
}

// List devuelve las reglas ordenadas por key.
func (uc *CatalogUseCase) List() *dto.ProductListResponse {
	rules := uc.catalog.Rules()
	items := make([]dto.ProductRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, dto.ProductRuleResponse{
			Key:         r.Key,
			Label:       r.Label,
			Mode:        r.Mode.Name(),
			Base:        r.Base().InexactFloat64(),
			PerAreaUnit: r.PerAreaUnit().InexactFloat64(),
		})
	}
	return &dto.ProductListResponse{Items: items, Currency: uc.currency}
}
