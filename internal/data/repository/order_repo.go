package repository

import (
	"context"
	"fmt"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/database"

	"go.uber.org/zap"
)

type OrderRepository interface {
	// Create writes the order and its seats in one transaction.
	Create(ctx context.Context, order *entity.Order) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order %s: %w", order.OrderRef, err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, order_ref, session_id, customer_name, total_seats, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, orderQuery,
		order.ID,
		order.OrderRef,
		order.SessionID,
		order.CustomerName,
		order.TotalSeats,
		order.CreatedAt,
	); err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_ref", order.OrderRef),
			zap.String("session_id", order.SessionID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.OrderRef, err)
	}

	seatQuery := `
		INSERT INTO order_seats (order_id, seat_row, seat_column)
		VALUES ($1, $2, $3)
	`
	for _, seat := range order.Seats {
		if _, err := tx.Exec(ctx, seatQuery, order.ID, seat.SeatRow, seat.SeatColumn); err != nil {
			r.log.Error("Failed to create order seat",
				zap.Error(err),
				zap.String("order_ref", order.OrderRef),
				zap.Int("row", seat.SeatRow),
				zap.Int("column", seat.SeatColumn),
			)
			return fmt.Errorf("create seat (%d, %d) for order %s: %w", seat.SeatRow, seat.SeatColumn, order.OrderRef, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order %s: %w", order.OrderRef, err)
	}

	return nil
}
