package wire

import (
	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireVenue mounts under /api/venues
func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	r.Post("/", venueHandler.CreateVenue) // Register a venue
	r.Get("/", venueHandler.GetVenues)    // List venues with hall counts

	r.Get("/{venue}", venueHandler.GetVenue)
	r.Post("/{venue}/halls", venueHandler.AddHall)
	r.Get("/{venue}/halls/{hall}", venueHandler.GetHall)
}
