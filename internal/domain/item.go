package domain

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Description string
	Category    string
	Price       Money

	CreatedAt time.Time
}

type ItemPage struct {
	Items    []Item
	Page     int
	PageSize int
	Total    int
}

func (p ItemPage) HasNext() bool {
	return p.Page*p.PageSize < p.Total
}

func (p ItemPage) HasPrevious() bool {
	return p.Page > 1
}
