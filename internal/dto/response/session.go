package response

import (
	"time"

	"cinema-ticketing/internal/catalog"
)

type SessionResponse struct {
	ID            string    `json:"id"`
	Venue         string    `json:"venue"`
	HallNumber    int       `json:"hall_number"`
	SessionNumber int       `json:"session_number"`
	Name          string    `json:"name"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	FreeSeats     int       `json:"free_seats"`
	CreatedAt     time.Time `json:"created_at"`
}

// SessionDetailResponse adds the seat grid; Reserved[r][c] is row r+1, column c+1.
type SessionDetailResponse struct {
	SessionResponse
	Rows     int      `json:"rows"`
	Columns  int      `json:"columns"`
	Reserved [][]bool `json:"reserved"`
}

// ConflictResponse describes the session a new one collided with.
type ConflictResponse struct {
	SessionNumber int    `json:"session_number"`
	Name          string `json:"name"`
	Start         string `json:"start"`
	End           string `json:"end"`
}

// Helper converters
func SessionToResponse(s *catalog.Session) SessionResponse {
	info := s.Info()
	return SessionResponse{
		ID:            info.ID.String(),
		Venue:         info.Venue,
		HallNumber:    info.Hall,
		SessionNumber: info.Number,
		Name:          info.Name,
		Start:         info.Interval.Start.String(),
		End:           info.Interval.End.String(),
		FreeSeats:     s.Grid().FreeCount(),
		CreatedAt:     s.CreatedAt(),
	}
}

func SessionToDetailResponse(s *catalog.Session) SessionDetailResponse {
	grid := s.Grid()
	resp := SessionToResponse(s)
	resp.FreeSeats = grid.FreeCount()
	return SessionDetailResponse{
		SessionResponse: resp,
		Rows:            grid.Rows(),
		Columns:         grid.Columns(),
		Reserved:        grid.Cells(),
	}
}

func ConflictToResponse(info catalog.SessionInfo) ConflictResponse {
	return ConflictResponse{
		SessionNumber: info.Number,
		Name:          info.Name,
		Start:         info.Interval.Start.String(),
		End:           info.Interval.End.String(),
	}
}
