package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

type moneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type itemDTO struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       moneyDTO  `json:"price"`
}

type itemPageDTO struct {
	Items       []itemDTO `json:"items"`
	Page        int       `json:"page"`
	PageSize    int       `json:"page_size"`
	Total       int       `json:"total"`
	HasNext     bool      `json:"has_next"`
	HasPrevious bool      `json:"has_previous"`
}

type orderItemDTO struct {
	Item       itemDTO  `json:"item"`
	Quantity   int      `json:"quantity"`
	TotalPrice moneyDTO `json:"total_price"`
}

type orderDTO struct {
	ID               uuid.UUID      `json:"id"`
	Items            []orderItemDTO `json:"items"`
	Total            moneyDTO       `json:"total"`
	BillingAddressID *uuid.UUID     `json:"billing_address_id,omitempty"`
	PaymentOption    string         `json:"payment_option,omitempty"`
	StartDate        time.Time      `json:"start_date"`
}

type paymentDTO struct {
	ID       uuid.UUID `json:"id"`
	Gateway  string    `json:"gateway"`
	ChargeID string    `json:"charge_id"`
	Amount   moneyDTO  `json:"amount"`
}

type checkoutDTO struct {
	PaymentOption string `json:"payment_option"`
}

type paymentRequest struct {
	Token string `json:"token"`
}

func toMoneyDTO(m domain.Money) moneyDTO {
	scale, _ := currency.Standard.Rounding(m.Currency)

	return moneyDTO{
		Amount:   m.Amount.StringFixed(int32(scale)),
		Currency: m.Currency.String(),
	}
}

func toItemDTO(item domain.Item) itemDTO {
	return itemDTO{
		ID:          item.ID,
		Slug:        item.Slug,
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category,
		Price:       toMoneyDTO(item.Price),
	}
}

func toItemPageDTO(page domain.ItemPage) itemPageDTO {
	items := make([]itemDTO, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, toItemDTO(item))
	}

	return itemPageDTO{
		Items:       items,
		Page:        page.Page,
		PageSize:    page.PageSize,
		Total:       page.Total,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	}
}

func toOrderDTO(order domain.Order, total domain.Money) orderDTO {
	items := make([]orderItemDTO, 0, len(order.Items))
	for _, oi := range order.Items {
		items = append(items, orderItemDTO{
			Item:       toItemDTO(oi.Item),
			Quantity:   oi.Quantity,
			TotalPrice: toMoneyDTO(oi.TotalPrice()),
		})
	}

	return orderDTO{
		ID:               order.ID,
		Items:            items,
		Total:            toMoneyDTO(total),
		BillingAddressID: order.BillingAddressID,
		PaymentOption:    string(order.PaymentOption),
		StartDate:        order.StartDate,
	}
}

func toPaymentDTO(p domain.Payment) paymentDTO {
	return paymentDTO{
		ID:       p.ID,
		Gateway:  string(p.Gateway),
		ChargeID: p.ChargeID,
		Amount:   toMoneyDTO(p.Amount),
	}
}
