package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CatalogRepository interface {
	GetItem(ctx context.Context, slug string) (domain.Item, error)
	ListItems(ctx context.Context, limit, offset int) ([]domain.Item, int, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
}

type CatalogCache interface {
	GetItem(ctx context.Context, slug string) (domain.Item, bool, error)
	SetItem(ctx context.Context, item domain.Item) error
}
