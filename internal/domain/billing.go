package domain

import (
	"time"

	"github.com/google/uuid"
)

type BillingAddress struct {
	ID               uuid.UUID
	UserID           string
	StreetAddress    string
	ApartmentAddress string
	Country          string
	Zip              string

	CreatedAt time.Time
}
