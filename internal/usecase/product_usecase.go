package usecase

import (
	"context"
	"strings"

	"ndaje_storefront/internal/domain/entities"
	"ndaje_storefront/internal/usecase/interfaces"
)

// IProductUseCase lists the catalog. An empty category or "all" matches every
// product; query matches name or description, case-insensitively.
type IProductUseCase interface {
	List(ctx context.Context, category, query string) ([]entities.Product, error)
}

type ProductUseCase struct {
	catalog interfaces.IProductCatalog
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(catalog interfaces.IProductCatalog) *ProductUseCase {
	return &ProductUseCase{catalog: catalog}
}

func (u *ProductUseCase) List(ctx context.Context, category, query string) ([]entities.Product, error) {
	all, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	category = strings.ToLower(strings.TrimSpace(category))
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if category != "" && category != "all" && strings.ToLower(p.Category) != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
