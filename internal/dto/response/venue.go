package response

import "cinema-ticketing/internal/catalog"

type VenueResponse struct {
	Name      string `json:"name"`
	HallCount int    `json:"hall_count"`
}

type VenueDetailResponse struct {
	VenueResponse
	Halls []HallResponse `json:"halls"`
}

type HallResponse struct {
	Venue        string `json:"venue"`
	HallNumber   int    `json:"hall_number"`
	Rows         int    `json:"rows"`
	Columns      int    `json:"columns"`
	Capacity     int    `json:"capacity"`
	SessionCount int    `json:"session_count"`
}

type HallDetailResponse struct {
	HallResponse
	Sessions []SessionResponse `json:"sessions"`
}

// Helper converters
func VenueToResponse(v *catalog.Venue) VenueResponse {
	return VenueResponse{
		Name:      v.Name(),
		HallCount: v.HallCount(),
	}
}

func HallToResponse(h *catalog.Hall) HallResponse {
	return HallResponse{
		Venue:        h.Venue().Name(),
		HallNumber:   h.Index(),
		Rows:         h.Rows(),
		Columns:      h.Columns(),
		Capacity:     h.Capacity(),
		SessionCount: len(h.Sessions()),
	}
}
