package domain

// CartOutcome tells apart the successful branches of a cart mutation.
type CartOutcome int

const (
	ItemAdded CartOutcome = iota + 1
	QuantityUpdated
	ItemRemoved
)

func (o CartOutcome) String() string {
	switch o {
	case ItemAdded:
		return "item_added"
	case QuantityUpdated:
		return "quantity_updated"
	case ItemRemoved:
		return "item_removed"
	default:
		return "unknown"
	}
}
