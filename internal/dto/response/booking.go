package response

import (
	"time"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/pkg/utils"
)

type SeatResponse struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

type OrderResponse struct {
	ID           string         `json:"id"`
	OrderRef     string         `json:"order_ref"`
	SessionID    string         `json:"session_id"`
	CustomerName string         `json:"customer_name"`
	TotalSeats   int            `json:"total_seats"`
	Seats        []SeatResponse `json:"seats"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Helper converters
func SeatsToResponse(seats []catalog.Seat) []SeatResponse {
	out := make([]SeatResponse, len(seats))
	for i, s := range seats {
		out[i] = SeatResponse{Row: s.Row, Column: s.Column}
	}
	return out
}

func OrderToResponse(sessionID string, o catalog.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID.String(),
		OrderRef:     utils.OrderReference(o.ID, o.CreatedAt),
		SessionID:    sessionID,
		CustomerName: o.Customer,
		TotalSeats:   o.Count,
		Seats:        SeatsToResponse(o.Seats),
		CreatedAt:    o.CreatedAt,
	}
}
