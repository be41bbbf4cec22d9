package wire

import (
	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler, reportHandler *adaptor.ReportHandler) {
	// GET /api/sessions/search?name=X&seats=2
	r.Get("/api/sessions/search", searchHandler.FindSessions)

	// GET /api/reports/orders[?format=text]
	r.Get("/api/reports/orders", reportHandler.GetOrdersReport)
}
