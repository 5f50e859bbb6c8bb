package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type cartService struct {
	catalog port.CatalogService
	orders  port.OrderRepository
}

func NewCart(catalog port.CatalogService, orders port.OrderRepository) port.CartService {
	return &cartService{
		catalog: catalog,
		orders:  orders,
	}
}

func (s *cartService) Add(ctx context.Context, userID, slug string) (domain.CartOutcome, error) {
	if userID == "" {
		return 0, fmt.Errorf("userID is empty")
	}

	item, err := s.catalog.Get(ctx, slug)
	if err != nil {
		return 0, fmt.Errorf("catalog.Get: %w", err)
	}

	outcome, err := s.orders.AddItem(ctx, userID, item.ID)
	if err != nil {
		return 0, fmt.Errorf("orders.AddItem: %w", err)
	}

	return outcome, nil
}

func (s *cartService) Remove(ctx context.Context, userID, slug string) error {
	if userID == "" {
		return fmt.Errorf("userID is empty")
	}

	if _, err := s.catalog.Get(ctx, slug); err != nil {
		return fmt.Errorf("catalog.Get: %w", err)
	}

	if err := s.orders.RemoveItem(ctx, userID, slug); err != nil {
		return fmt.Errorf("orders.RemoveItem: %w", err)
	}

	return nil
}

func (s *cartService) RemoveSingle(ctx context.Context, userID, slug string) (domain.CartOutcome, error) {
	if userID == "" {
		return 0, fmt.Errorf("userID is empty")
	}

	if _, err := s.catalog.Get(ctx, slug); err != nil {
		return 0, fmt.Errorf("catalog.Get: %w", err)
	}

	outcome, err := s.orders.RemoveSingleItem(ctx, userID, slug)
	if err != nil {
		return 0, fmt.Errorf("orders.RemoveSingleItem: %w", err)
	}

	return outcome, nil
}
