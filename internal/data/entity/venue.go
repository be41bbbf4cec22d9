package entity

type Venue struct {
	BaseSimple
	Name string `db:"name"`
}
