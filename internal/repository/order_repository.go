package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *orderRepository) GetOpenOrder(ctx context.Context, userID string) (domain.Order, error) {
	if userID == "" {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}

	dbOrder, err := r.q.GetOpenOrder(ctx, userID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOpenOrder: %w", noRows(err, domain.ErrNoActiveOrder))
	}

	return loadOrder(ctx, r.q, dbOrder)
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	dbOrder, err := r.q.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", noRows(err, domain.ErrNotFound))
	}

	return loadOrder(ctx, r.q, dbOrder)
}

// AddItem attaches the item to the user's open order, creating the order and
// the order item on first use, or bumps the quantity if it is already attached.
func (r *orderRepository) AddItem(ctx context.Context, userID string, itemID uuid.UUID) (domain.CartOutcome, error) {
	if userID == "" {
		return 0, fmt.Errorf("userID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.CartOutcome, error) {
		order, err := lockOrCreateOpenOrder(ctx, q, userID)
		if err != nil {
			return 0, fmt.Errorf("lockOrCreateOpenOrder: %w", err)
		}

		orderItem, err := lockOrCreateOpenOrderItem(ctx, q, userID, itemID)
		if err != nil {
			return 0, fmt.Errorf("lockOrCreateOpenOrderItem: %w", err)
		}

		if orderItem.OrderID != nil && *orderItem.OrderID == order.ID {
			if err := q.IncrementOrderItemQuantity(ctx, orderItem.ID); err != nil {
				return 0, fmt.Errorf("q.IncrementOrderItemQuantity: %w", err)
			}

			return domain.QuantityUpdated, nil
		}

		err = q.AttachOrderItem(ctx, db.AttachOrderItemParams{
			ID:      orderItem.ID,
			OrderID: &order.ID,
		})
		if err != nil {
			return 0, fmt.Errorf("q.AttachOrderItem: %w", err)
		}

		return domain.ItemAdded, nil
	})
}

// RemoveItem detaches the item from the open order and resets its quantity.
// The order item row is kept.
func (r *orderRepository) RemoveItem(ctx context.Context, userID string, slug string) error {
	if userID == "" {
		return fmt.Errorf("userID is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		orderItem, err := lockAttachedOrderItem(ctx, q, userID, slug)
		if err != nil {
			return struct{}{}, err
		}

		if err := q.DetachOrderItem(ctx, orderItem.ID); err != nil {
			return struct{}{}, fmt.Errorf("q.DetachOrderItem: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

// RemoveSingleItem decrements the quantity, detaching the item when it drops below one.
func (r *orderRepository) RemoveSingleItem(ctx context.Context, userID string, slug string) (domain.CartOutcome, error) {
	if userID == "" {
		return 0, fmt.Errorf("userID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.CartOutcome, error) {
		orderItem, err := lockAttachedOrderItem(ctx, q, userID, slug)
		if err != nil {
			return 0, err
		}

		if orderItem.Quantity > 1 {
			if _, err := q.DecrementOrderItemQuantity(ctx, orderItem.ID); err != nil {
				return 0, fmt.Errorf("q.DecrementOrderItemQuantity: %w", err)
			}

			return domain.QuantityUpdated, nil
		}

		if err := q.DetachOrderItem(ctx, orderItem.ID); err != nil {
			return 0, fmt.Errorf("q.DetachOrderItem: %w", err)
		}

		return domain.ItemRemoved, nil
	})
}

// AttachBillingAddress stores the address and the chosen payment option on the open order.
func (r *orderRepository) AttachBillingAddress(ctx context.Context, userID string, address domain.BillingAddress, option domain.PaymentOption) (domain.BillingAddress, error) {
	if userID == "" {
		return domain.BillingAddress{}, fmt.Errorf("userID is empty")
	}
	if option == "" {
		return domain.BillingAddress{}, fmt.Errorf("payment option is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.BillingAddress, error) {
		order, err := q.LockOpenOrder(ctx, userID)
		if err != nil {
			return domain.BillingAddress{}, fmt.Errorf("q.LockOpenOrder: %w", noRows(err, domain.ErrNoActiveOrder))
		}

		row, err := q.CreateBillingAddress(ctx, db.CreateBillingAddressParams{
			UserID:           userID,
			StreetAddress:    address.StreetAddress,
			ApartmentAddress: address.ApartmentAddress,
			Country:          address.Country,
			Zip:              address.Zip,
		})
		if err != nil {
			return domain.BillingAddress{}, fmt.Errorf("q.CreateBillingAddress: %w", err)
		}

		_, err = q.SetOrderBillingAddress(ctx, db.SetOrderBillingAddressParams{
			ID:               order.ID,
			BillingAddressID: &row.ID,
			PaymentOption:    (*string)(&option),
		})
		if err != nil {
			return domain.BillingAddress{}, fmt.Errorf("q.SetOrderBillingAddress: %w", err)
		}

		address.ID = row.ID
		address.UserID = userID
		address.CreatedAt = row.CreatedAt

		return address, nil
	})
}

func (r *orderRepository) GetBillingAddress(ctx context.Context, addressID uuid.UUID) (domain.BillingAddress, error) {
	row, err := r.q.GetBillingAddress(ctx, addressID)
	if err != nil {
		return domain.BillingAddress{}, fmt.Errorf("q.GetBillingAddress: %w", noRows(err, domain.ErrNotFound))
	}

	return domain.BillingAddress{
		ID:               row.ID,
		UserID:           row.UserID,
		StreetAddress:    row.StreetAddress,
		ApartmentAddress: row.ApartmentAddress,
		Country:          row.Country,
		Zip:              row.Zip,
		CreatedAt:        row.CreatedAt,
	}, nil
}

// PayOpenOrder locks the open order, runs charge against it and, if the charge
// succeeds, records the payment and closes the order in the same transaction.
// A failure after a successful charge is returned as *domain.ReconciliationError.
func (r *orderRepository) PayOpenOrder(ctx context.Context, userID string, charge port.ChargeFunc) (domain.Order, domain.Payment, error) {
	if userID == "" {
		return domain.Order{}, domain.Payment{}, fmt.Errorf("userID is empty")
	}

	var (
		charged domain.Payment
		orderID uuid.UUID
	)

	type paid struct {
		order   domain.Order
		payment domain.Payment
	}

	result, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (paid, error) {
		dbOrder, err := q.LockOpenOrder(ctx, userID)
		if err != nil {
			return paid{}, fmt.Errorf("q.LockOpenOrder: %w", noRows(err, domain.ErrNoActiveOrder))
		}
		orderID = dbOrder.ID

		order, err := loadOrder(ctx, q, dbOrder)
		if err != nil {
			return paid{}, fmt.Errorf("loadOrder: %w", err)
		}

		payment, err := charge(ctx, order)
		if err != nil {
			return paid{}, err
		}
		charged = payment

		row, err := q.CreatePayment(ctx, db.CreatePaymentParams{
			UserID:         userID,
			Gateway:        string(payment.Gateway),
			ChargeID:       payment.ChargeID,
			Amount:         payment.Amount.Amount,
			AmountCurrency: payment.Amount.Currency.String(),
		})
		if err != nil {
			return paid{}, fmt.Errorf("q.CreatePayment: %w", err)
		}
		payment.ID = row.ID
		payment.UserID = userID
		payment.CreatedAt = row.CreatedAt

		orderedDate := time.Now()

		closed, err := q.CloseOrder(ctx, db.CloseOrderParams{
			ID:          order.ID,
			OrderedDate: &orderedDate,
			PaymentID:   &payment.ID,
		})
		if err != nil {
			return paid{}, fmt.Errorf("q.CloseOrder: %w", err)
		}
		if closed != 1 {
			return paid{}, fmt.Errorf("q.CloseOrder: order[%s] is not open", order.ID)
		}

		if _, err := q.MarkOrderItemsOrdered(ctx, &order.ID); err != nil {
			return paid{}, fmt.Errorf("q.MarkOrderItemsOrdered: %w", err)
		}

		order.Ordered = true
		order.OrderedDate = &orderedDate
		order.PaymentID = &payment.ID
		for i := range order.Items {
			order.Items[i].Ordered = true
		}

		return paid{order: order, payment: payment}, nil
	})
	if err != nil {
		if charged.ChargeID != "" {
			return domain.Order{}, domain.Payment{}, &domain.ReconciliationError{
				OrderID:  orderID,
				ChargeID: charged.ChargeID,
				Err:      err,
			}
		}

		return domain.Order{}, domain.Payment{}, err
	}

	return result.order, result.payment, nil
}

func (r *orderRepository) GetPayment(ctx context.Context, paymentID uuid.UUID) (domain.Payment, error) {
	row, err := r.q.GetPayment(ctx, paymentID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("q.GetPayment: %w", noRows(err, domain.ErrNotFound))
	}

	amountCurrency, err := currency.ParseISO(row.AmountCurrency)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("currency[%s] is not valid: %w", row.AmountCurrency, err)
	}

	return domain.Payment{
		ID:        row.ID,
		UserID:    row.UserID,
		Gateway:   domain.PaymentOption(row.Gateway),
		ChargeID:  row.ChargeID,
		Amount:    domain.Money{Amount: row.Amount, Currency: amountCurrency},
		CreatedAt: row.CreatedAt,
	}, nil
}

// lockOrCreateOpenOrder relies on the partial unique index on open orders:
// concurrent callers for the same user end up locking the same row.
func lockOrCreateOpenOrder(ctx context.Context, q *db.Queries, userID string) (db.Order, error) {
	if err := q.CreateOpenOrder(ctx, userID); err != nil {
		return db.Order{}, fmt.Errorf("q.CreateOpenOrder: %w", err)
	}

	order, err := q.LockOpenOrder(ctx, userID)
	if err != nil {
		return db.Order{}, fmt.Errorf("q.LockOpenOrder: %w", err)
	}

	return order, nil
}

func lockOrCreateOpenOrderItem(ctx context.Context, q *db.Queries, userID string, itemID uuid.UUID) (db.OrderItem, error) {
	err := q.CreateOpenOrderItem(ctx, db.CreateOpenOrderItemParams{
		UserID: userID,
		ItemID: itemID,
	})
	if err != nil {
		return db.OrderItem{}, fmt.Errorf("q.CreateOpenOrderItem: %w", err)
	}

	orderItem, err := q.LockOpenOrderItem(ctx, db.LockOpenOrderItemParams{
		UserID: userID,
		ItemID: itemID,
	})
	if err != nil {
		return db.OrderItem{}, fmt.Errorf("q.LockOpenOrderItem: %w", err)
	}

	return orderItem, nil
}

func lockAttachedOrderItem(ctx context.Context, q *db.Queries, userID string, slug string) (db.OrderItem, error) {
	order, err := q.LockOpenOrder(ctx, userID)
	if err != nil {
		return db.OrderItem{}, fmt.Errorf("q.LockOpenOrder: %w", noRows(err, domain.ErrNoActiveOrder))
	}

	orderItem, err := q.LockAttachedOrderItem(ctx, db.LockAttachedOrderItemParams{
		OrderID: &order.ID,
		Slug:    slug,
	})
	if err != nil {
		return db.OrderItem{}, fmt.Errorf("q.LockAttachedOrderItem: %w", noRows(err, domain.ErrNotInCart))
	}

	return orderItem, nil
}

func loadOrder(ctx context.Context, q *db.Queries, dbOrder db.Order) (domain.Order, error) {
	rows, err := q.ListOrderItems(ctx, &dbOrder.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.ListOrderItems: %w", err)
	}

	items, err := mapListOrderItemsRowsToDomain(rows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapListOrderItemsRowsToDomain: %w", err)
	}

	return domain.Order{
		ID:               dbOrder.ID,
		UserID:           dbOrder.UserID,
		Items:            items,
		Ordered:          dbOrder.Ordered,
		BillingAddressID: dbOrder.BillingAddressID,
		PaymentOption:    domain.PaymentOption(derefString(dbOrder.PaymentOption)),
		PaymentID:        dbOrder.PaymentID,
		StartDate:        dbOrder.StartDate,
		OrderedDate:      dbOrder.OrderedDate,
	}, nil
}

func mapListOrderItemsRowToDomain(row db.ListOrderItemsRow) (domain.OrderItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.OrderItem{
		ID:     row.ID,
		UserID: row.UserID,
		Item: domain.Item{
			ID:          row.ItemID,
			Slug:        row.ItemSlug,
			Title:       row.ItemTitle,
			Description: row.ItemDescription,
			Category:    row.ItemCategory,
			Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			CreatedAt:   row.ItemCreatedAt,
		},
		Quantity:  int(row.Quantity),
		Ordered:   row.Ordered,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapListOrderItemsRowsToDomain(rows []db.ListOrderItemsRow) ([]domain.OrderItem, error) {
	var items []domain.OrderItem

	for _, row := range rows {
		item, err := mapListOrderItemsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapListOrderItemsRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
