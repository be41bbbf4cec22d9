package repository

import (
	"cinema-ticketing/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the journal writers. The journal is append-only and is
// never read back by the service; the in-memory catalog stays authoritative.
type Repository struct {
	Venue   VenueRepository
	Hall    HallRepository
	Session SessionRepository
	Order   OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Venue:   NewVenueRepository(db, log),
		Hall:    NewHallRepository(db, log),
		Session: NewSessionRepository(db, log),
		Order:   NewOrderRepository(db, log),
	}
}
