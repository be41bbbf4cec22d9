package wire

import (
	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireSession mounts under /api/venues
func wireSession(r chi.Router, sessionHandler *adaptor.SessionHandler, bookingHandler *adaptor.BookingHandler) {
	r.Route("/{venue}/halls/{hall}/sessions", func(r chi.Router) {
		// GET ?name= narrows the list to sessions of one name
		r.Post("/", sessionHandler.AddSession)
		r.Get("/", sessionHandler.GetSessions)

		r.Route("/{session}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Get("/plan", sessionHandler.GetSeatPlan) // text/plain seat plan

			r.Post("/orders", bookingHandler.CreateOrder)
			r.Get("/orders", bookingHandler.GetOrders)
		})
	})
}
