package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Venue   *VenueHandler
	Session *SessionHandler
	Booking *BookingHandler
	Search  *SearchHandler
	Report  *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Venue:   NewVenueHandler(service.Venue, log),
		Session: NewSessionHandler(service.Schedule, log),
		Booking: NewBookingHandler(service.Booking, log),
		Search:  NewSearchHandler(service.Search, log),
		Report:  NewReportHandler(service.Report, log),
	}
}

// sessionPath is the {venue}/{hall}/{session} part of a route.
type sessionPath struct {
	venue   string
	hall    int
	session int
}

// venueParam returns the unescaped {venue} route parameter.
func venueParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "venue")
	venue, err := url.PathUnescape(raw)
	if err != nil || venue == "" {
		return "", fmt.Errorf("invalid venue name %q", raw)
	}
	return venue, nil
}

func numberParam(r *http.Request, key string) (int, error) {
	raw := chi.URLParam(r, key)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s number %q", key, raw)
	}
	return n, nil
}

func hallParams(r *http.Request) (string, int, error) {
	venue, err := venueParam(r)
	if err != nil {
		return "", 0, err
	}
	hall, err := numberParam(r, "hall")
	if err != nil {
		return "", 0, err
	}
	return venue, hall, nil
}

func sessionParams(r *http.Request) (sessionPath, error) {
	venue, hall, err := hallParams(r)
	if err != nil {
		return sessionPath{}, err
	}
	session, err := numberParam(r, "session")
	if err != nil {
		return sessionPath{}, err
	}
	return sessionPath{venue: venue, hall: hall, session: session}, nil
}

// handleServiceError maps catalog and service errors onto HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var (
		conflict *catalog.ConflictError
		seatErr  *catalog.SeatError
	)

	switch {
	case errors.Is(err, catalog.ErrVenueNotFound),
		errors.Is(err, catalog.ErrHallNotFound),
		errors.Is(err, catalog.ErrSessionNotFound),
		errors.Is(err, catalog.ErrSessionNameNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &conflict):
		log.Warn(operation+" failed - scheduling conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), response.ConflictToResponse(conflict.Existing))

	case errors.Is(err, catalog.ErrSeatAlreadyReserved) && errors.As(err, &seatErr):
		log.Warn(operation+" failed - seat taken",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), response.SeatResponse{Row: seatErr.Seat.Row, Column: seatErr.Seat.Column})

	case errors.Is(err, catalog.ErrVenueExists):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.As(err, &seatErr):
		log.Warn("Invalid seat for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), map[string]response.SeatResponse{
			"seat": {Row: seatErr.Seat.Row, Column: seatErr.Seat.Column},
		})

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, catalog.ErrInvalidName),
		errors.Is(err, catalog.ErrInvalidDimensions),
		errors.Is(err, catalog.ErrInvalidInterval),
		errors.Is(err, catalog.ErrInvalidSeatCount),
		errors.Is(err, catalog.ErrOutOfRange):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
