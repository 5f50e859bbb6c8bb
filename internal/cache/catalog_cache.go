package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const itemKeyPrefix = "catalog:item:"

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalog(client *redis.Client, ttl time.Duration) port.CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    ttl,
	}
}

type cachedItem struct {
	ID          uuid.UUID       `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (c *catalogCache) GetItem(ctx context.Context, slug string) (domain.Item, bool, error) {
	raw, err := c.client.Get(ctx, itemKeyPrefix+slug).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Item{}, false, nil
	}
	if err != nil {
		return domain.Item{}, false, fmt.Errorf("redis.Get: %w", err)
	}

	var cached cachedItem
	if err := json.Unmarshal(raw, &cached); err != nil {
		return domain.Item{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	unit, err := currency.ParseISO(cached.Currency)
	if err != nil {
		return domain.Item{}, false, fmt.Errorf("currency.ParseISO: %w", err)
	}

	return domain.Item{
		ID:          cached.ID,
		Slug:        cached.Slug,
		Title:       cached.Title,
		Description: cached.Description,
		Category:    cached.Category,
		Price: domain.Money{
			Amount:   cached.Price,
			Currency: unit,
		},
		CreatedAt: cached.CreatedAt,
	}, true, nil
}

func (c *catalogCache) SetItem(ctx context.Context, item domain.Item) error {
	if item.Slug == "" {
		return fmt.Errorf("slug is empty")
	}

	raw, err := json.Marshal(cachedItem{
		ID:          item.ID,
		Slug:        item.Slug,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Price:       item.Price.Amount,
		Currency:    item.Price.Currency.String(),
		CreatedAt:   item.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.client.Set(ctx, itemKeyPrefix+item.Slug, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
