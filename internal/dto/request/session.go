package request

type CreateSessionRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

type SearchSessionsRequest struct {
	Name  string `json:"name" validate:"required"`
	Seats int    `json:"seats" validate:"min=0"`
}
