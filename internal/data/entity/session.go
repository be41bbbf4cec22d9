package entity

// Session is a scheduled showing. ID matches the in-memory session ID.
type Session struct {
	BaseSimple
	VenueName     string `db:"venue_name"`
	HallNumber    int    `db:"hall_number"`
	SessionNumber int    `db:"session_number"`
	Name          string `db:"name"`
	StartsAt      string `db:"starts_at"` // HH:MM
	EndsAt        string `db:"ends_at"`   // HH:MM
}
