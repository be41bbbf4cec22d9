package adaptor

import (
	"errors"
	"net/http"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// MessageNoQualifyingSession accompanies an empty, successful search.
const MessageNoQualifyingSession = "no qualifying session"

type SearchHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log.With(zap.String("handler", "search")),
	}
}

// FindSessions handles GET /api/sessions/search?name=&seats=
func (h *SearchHandler) FindSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	seats, ok := utils.ParseNonNegativeInt(query.Get("seats"), 0)
	if !ok {
		utils.ResponseBadRequest(w, "seats must be a non-negative integer", nil)
		return
	}

	req := &request.SearchSessionsRequest{
		Name:  query.Get("name"),
		Seats: seats,
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sessions, err := h.service.FindSessions(r.Context(), req)
	if errors.Is(err, catalog.ErrNoQualifyingSession) {
		utils.ResponseSuccess(w, MessageNoQualifyingSession, []response.SessionResponse{})
		return
	}
	if err != nil {
		handleServiceError(h.log, w, err, "find sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}
