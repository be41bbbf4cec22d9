package entity

import "github.com/google/uuid"

type Order struct {
	BaseSimple
	OrderRef     string      `db:"order_ref"`
	SessionID    uuid.UUID   `db:"session_id"`
	CustomerName string      `db:"customer_name"`
	TotalSeats   int         `db:"total_seats"`
	Seats        []OrderSeat `db:"-"`
}

type OrderSeat struct {
	OrderID    uuid.UUID `db:"order_id"`
	SeatRow    int       `db:"seat_row"`
	SeatColumn int       `db:"seat_column"`
}
