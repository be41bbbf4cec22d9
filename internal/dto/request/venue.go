package request

type CreateVenueRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CreateHallRequest struct {
	Rows    int `json:"rows" validate:"required,min=1"`
	Columns int `json:"columns" validate:"required,min=1"`
}
