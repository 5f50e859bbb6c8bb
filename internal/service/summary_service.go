package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type summaryService struct {
	orders port.OrderRepository
}

func NewSummary(orders port.OrderRepository) port.SummaryService {
	return &summaryService{orders: orders}
}

func (s *summaryService) Summary(ctx context.Context, userID string) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}

	order, err := s.orders.GetOpenOrder(ctx, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.GetOpenOrder: %w", err)
	}

	return order, nil
}
