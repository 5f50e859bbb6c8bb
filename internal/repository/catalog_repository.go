package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q: db.New(pool),
	}
}

func (r *catalogRepository) GetItem(ctx context.Context, slug string) (domain.Item, error) {
	if slug == "" {
		return domain.Item{}, fmt.Errorf("slug is empty")
	}

	dbItem, err := r.q.GetItemBySlug(ctx, slug)
	if err != nil {
		return domain.Item{}, fmt.Errorf("q.GetItemBySlug: %w", noRows(err, domain.ErrNotFound))
	}

	return mapItemToDomain(dbItem)
}

// ListItems returns one page of items together with the total item count.
func (r *catalogRepository) ListItems(ctx context.Context, limit, offset int) ([]domain.Item, int, error) {
	if limit <= 0 {
		return nil, 0, fmt.Errorf("limit must be positive")
	}
	if offset < 0 {
		return nil, 0, fmt.Errorf("offset is negative")
	}

	total, err := r.q.CountItems(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("q.CountItems: %w", err)
	}

	dbItems, err := r.q.ListItems(ctx, db.ListItemsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("q.ListItems: %w", err)
	}

	items, err := mapItemsToDomain(dbItems)
	if err != nil {
		return nil, 0, fmt.Errorf("mapItemsToDomain: %w", err)
	}

	return items, int(total), nil
}

func (r *catalogRepository) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if item.Slug == "" {
		return domain.Item{}, fmt.Errorf("slug is empty")
	}
	if item.Title == "" {
		return domain.Item{}, fmt.Errorf("title is empty")
	}

	row, err := r.q.CreateItem(ctx, db.CreateItemParams{
		Slug:          item.Slug,
		Title:         item.Title,
		Description:   item.Description,
		Category:      item.Category,
		PriceAmount:   item.Price.Amount,
		PriceCurrency: item.Price.Currency.String(),
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("q.CreateItem: %w", err)
	}

	item.ID = row.ID
	item.CreatedAt = row.CreatedAt

	return item, nil
}

func mapItemToDomain(dbItem db.Item) (domain.Item, error) {
	parsedCurrency, err := currency.ParseISO(dbItem.PriceCurrency)
	if err != nil {
		return domain.Item{}, fmt.Errorf("currency[%s] is not valid: %w", dbItem.PriceCurrency, err)
	}

	return domain.Item{
		ID:          dbItem.ID,
		Slug:        dbItem.Slug,
		Title:       dbItem.Title,
		Description: dbItem.Description,
		Category:    dbItem.Category,
		Price:       domain.Money{Amount: dbItem.PriceAmount, Currency: parsedCurrency},
		CreatedAt:   dbItem.CreatedAt,
	}, nil
}

func mapItemsToDomain(dbItems []db.Item) ([]domain.Item, error) {
	var items []domain.Item

	for _, dbItem := range dbItems {
		item, err := mapItemToDomain(dbItem)
		if err != nil {
			return nil, fmt.Errorf("mapItemToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
