package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type seedItem struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
}

// SeedCatalog creates the items listed in r as a JSON array, skipping slugs
// that already exist. It returns the number of created items.
func SeedCatalog(ctx context.Context, items port.CatalogRepository, r io.Reader) (int, error) {
	var seeds []seedItem
	if err := json.NewDecoder(r).Decode(&seeds); err != nil {
		return 0, fmt.Errorf("json.Decode: %w", err)
	}

	created := 0

	for _, seed := range seeds {
		_, err := items.GetItem(ctx, seed.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return created, fmt.Errorf("items.GetItem[%s]: %w", seed.Slug, err)
		}

		unit, err := currency.ParseISO(seed.Currency)
		if err != nil {
			return created, fmt.Errorf("item[%s] currency.ParseISO: %w", seed.Slug, err)
		}

		_, err = items.CreateItem(ctx, domain.Item{
			Slug:        seed.Slug,
			Title:       seed.Title,
			Description: seed.Description,
			Category:    seed.Category,
			Price:       domain.Money{Amount: seed.Price, Currency: unit},
		})
		if err != nil {
			return created, fmt.Errorf("items.CreateItem[%s]: %w", seed.Slug, err)
		}
		created++
	}

	return created, nil
}
