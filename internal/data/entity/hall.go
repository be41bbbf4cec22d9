package entity

type Hall struct {
	BaseSimple
	VenueName  string `db:"venue_name"`
	HallNumber int    `db:"hall_number"`
	SeatRows   int    `db:"seat_rows"`
	SeatCols   int    `db:"seat_cols"`
}
