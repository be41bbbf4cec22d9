package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.ScheduleService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// AddSession handles POST /api/venues/{venue}/halls/{hall}/sessions
func (h *SessionHandler) AddSession(w http.ResponseWriter, r *http.Request) {
	venue, hall, err := hallParams(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	session, err := h.service.AddSession(r.Context(), venue, hall, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSessions handles GET /api/venues/{venue}/halls/{hall}/sessions
// Optional query param: ?name=
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	venue, hall, err := hallParams(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	sessions, err := h.service.GetSessions(r.Context(), venue, hall, r.URL.Query().Get("name"))
	if err != nil {
		handleServiceError(h.log, w, err, "get sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// GetSession handles GET .../sessions/{session}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	p, err := sessionParams(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	session, err := h.service.GetSession(r.Context(), p.venue, p.hall, p.session)
	if err != nil {
		handleServiceError(h.log, w, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// GetSeatPlan handles GET .../sessions/{session}/plan
func (h *SessionHandler) GetSeatPlan(w http.ResponseWriter, r *http.Request) {
	p, err := sessionParams(r)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	plan, err := h.service.GetSeatPlan(r.Context(), p.venue, p.hall, p.session)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat plan")
		return
	}

	utils.ResponseText(w, http.StatusOK, plan+"\n")
}
