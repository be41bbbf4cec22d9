package usecase

import (
	"errors"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/data/repository"

	"go.uber.org/zap"
)

// ErrValidation marks request errors caught before the catalog is touched.
var ErrValidation = errors.New("validation failed")

type Service struct {
	Venue    VenueService
	Schedule ScheduleService
	Booking  BookingService
	Search   SearchService
	Report   ReportService
}

func NewService(cat *catalog.Catalog, repo *repository.Repository, pub EventPublisher, log *zap.Logger) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{
		Venue:    NewVenueService(cat, repo, log),
		Schedule: NewScheduleService(cat, repo, pub, log),
		Booking:  NewBookingService(cat, repo, pub, log),
		Search:   NewSearchService(cat, log),
		Report:   NewReportService(cat, log),
	}
}
