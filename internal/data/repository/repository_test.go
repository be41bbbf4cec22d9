package repository

import (
	"context"
	"testing"
	"time"

	"cinema-ticketing/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, EnsureSchema(context.Background(), db))
	require.Len(t, db.calls, len(schema))
	assert.Contains(t, db.calls[0].sql, "CREATE TABLE IF NOT EXISTS venues")

	db = &fakeDB{failOn: "orders"}
	assert.Error(t, EnsureSchema(context.Background(), db))
}

func TestSessionRepository_Create(t *testing.T) {
	db := &fakeDB{}
	repo := NewRepository(db, zap.NewNop())

	session := &entity.Session{
		BaseSimple:    entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		VenueName:     "Central",
		HallNumber:    2,
		SessionNumber: 1,
		Name:          "X",
		StartsAt:      "12:00",
		EndsAt:        "13:00",
	}
	require.NoError(t, repo.Session.Create(context.Background(), session))
	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "INSERT INTO sessions")
	assert.Equal(t, session.ID, db.calls[0].args[0])
	assert.Equal(t, "12:00", db.calls[0].args[5])

	db.failOn = "sessions"
	assert.Error(t, repo.Session.Create(context.Background(), session))
}

func TestOrderRepository_Create(t *testing.T) {
	db := &fakeDB{}
	repo := NewOrderRepository(db, zap.NewNop())

	id := uuid.New()
	order := &entity.Order{
		BaseSimple:   entity.BaseSimple{ID: id, CreatedAt: time.Now()},
		OrderRef:     "BOOK-1",
		SessionID:    uuid.New(),
		CustomerName: "Alice",
		TotalSeats:   2,
		Seats: []entity.OrderSeat{
			{OrderID: id, SeatRow: 1, SeatColumn: 1},
			{OrderID: id, SeatRow: 1, SeatColumn: 2},
		},
	}

	require.NoError(t, repo.Create(context.Background(), order))
	require.Len(t, db.calls, 3)
	assert.Contains(t, db.calls[0].sql, "INSERT INTO orders")
	assert.Contains(t, db.calls[2].sql, "INSERT INTO order_seats")
	assert.Equal(t, []any{id, 1, 2}, db.calls[2].args)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestOrderRepository_CreateRollsBackOnSeatFailure(t *testing.T) {
	db := &fakeDB{failOn: "order_seats"}
	repo := NewOrderRepository(db, zap.NewNop())

	id := uuid.New()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{ID: id, CreatedAt: time.Now()},
		OrderRef:   "BOOK-2",
		TotalSeats: 1,
		Seats:      []entity.OrderSeat{{OrderID: id, SeatRow: 3, SeatColumn: 4}},
	}

	err := repo.Create(context.Background(), order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(3, 4)")
	assert.False(t, db.tx.committed)
	assert.True(t, db.tx.rolledBack)
}

func TestDiscardRepository(t *testing.T) {
	repo := NewDiscardRepository()
	ctx := context.Background()
	assert.NoError(t, repo.Venue.Create(ctx, &entity.Venue{Name: "x"}))
	assert.NoError(t, repo.Hall.Create(ctx, &entity.Hall{}))
	assert.NoError(t, repo.Session.Create(ctx, &entity.Session{}))
	assert.NoError(t, repo.Order.Create(ctx, &entity.Order{}))
}
