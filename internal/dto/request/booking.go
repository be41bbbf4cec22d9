package request

type SeatRequest struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// CreateOrderRequest books the listed seats, in order, for one customer.
// Coordinates are range-checked against the hall, not here.
type CreateOrderRequest struct {
	CustomerName string        `json:"customer_name" validate:"required,min=1,max=100"`
	Seats        []SeatRequest `json:"seats" validate:"required,min=1"`
}
