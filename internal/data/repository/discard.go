package repository

import (
	"context"

	"cinema-ticketing/internal/data/entity"
)

// NewDiscardRepository returns a Repository whose writers drop every record.
// It is used when no database is configured.
func NewDiscardRepository() *Repository {
	return &Repository{
		Venue:   discardVenue{},
		Hall:    discardHall{},
		Session: discardSession{},
		Order:   discardOrder{},
	}
}

type discardVenue struct{}

func (discardVenue) Create(context.Context, *entity.Venue) error { return nil }

type discardHall struct{}

func (discardHall) Create(context.Context, *entity.Hall) error { return nil }

type discardSession struct{}

func (discardSession) Create(context.Context, *entity.Session) error { return nil }

type discardOrder struct{}

func (discardOrder) Create(context.Context, *entity.Order) error { return nil }
