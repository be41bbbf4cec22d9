package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// CreateVenue handles POST /api/venues
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create venue")
		return
	}

	utils.ResponseCreated(w, "success", venue)
}

// GetVenues handles GET /api/venues
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	venues, err := h.service.GetVenues(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetVenue handles GET /api/venues/{venue}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	name, err := venueParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	venue, err := h.service.GetVenue(r.Context(), name)
	if err != nil {
		handleServiceError(h.log, w, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// AddHall handles POST /api/venues/{venue}/halls
func (h *VenueHandler) AddHall(w http.ResponseWriter, r *http.Request) {
	name, err := venueParam(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.CreateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.AddHall(r.Context(), name, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add hall")
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

// GetHall handles GET /api/venues/{venue}/halls/{hall}
func (h *VenueHandler) GetHall(w http.ResponseWriter, r *http.Request) {
	venue, index, err := hallParams(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	hall, err := h.service.GetHall(r.Context(), venue, index)
	if err != nil {
		handleServiceError(h.log, w, err, "get hall")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}
