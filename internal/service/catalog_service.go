package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type catalogService struct {
	items    port.CatalogRepository
	cache    port.CatalogCache
	pageSize int
	logger   *zap.Logger
}

// NewCatalog returns a catalog reader. cache may be nil.
func NewCatalog(items port.CatalogRepository, cache port.CatalogCache, pageSize int, logger *zap.Logger) (port.CatalogService, error) {
	if items == nil {
		return nil, fmt.Errorf("items repository is nil")
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("pageSize must be positive")
	}

	return &catalogService{
		items:    items,
		cache:    cache,
		pageSize: pageSize,
		logger:   logger.Named("catalog"),
	}, nil
}

func (s *catalogService) List(ctx context.Context, page int) (domain.ItemPage, error) {
	if page < 1 {
		page = 1
	}

	items, total, err := s.items.ListItems(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return domain.ItemPage{}, fmt.Errorf("items.ListItems: %w", err)
	}

	return domain.ItemPage{
		Items:    items,
		Page:     page,
		PageSize: s.pageSize,
		Total:    total,
	}, nil
}

func (s *catalogService) Get(ctx context.Context, slug string) (domain.Item, error) {
	if slug == "" {
		return domain.Item{}, fmt.Errorf("slug is empty")
	}

	if s.cache != nil {
		item, found, err := s.cache.GetItem(ctx, slug)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.String("slug", slug), zap.Error(err))
		}
		if found {
			return item, nil
		}
	}

	item, err := s.items.GetItem(ctx, slug)
	if err != nil {
		return domain.Item{}, fmt.Errorf("items.GetItem: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetItem(ctx, item); err != nil {
			s.logger.Warn("catalog cache write failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	return item, nil
}
