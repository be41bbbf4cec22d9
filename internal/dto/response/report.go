package response

// OrdersReport is the full venue -> hall -> session -> order tree.
type OrdersReport struct {
	Venues []VenueOrders `json:"venues"`
}

type VenueOrders struct {
	Name  string       `json:"name"`
	Halls []HallOrders `json:"halls"`
}

type HallOrders struct {
	HallNumber int             `json:"hall_number"`
	Sessions   []SessionOrders `json:"sessions"`
}

type SessionOrders struct {
	SessionResponse
	Orders []OrderResponse `json:"orders"`
}
