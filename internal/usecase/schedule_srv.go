package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/report"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type ScheduleService interface {
	AddSession(ctx context.Context, venue string, hall int, req *request.CreateSessionRequest) (*response.SessionResponse, error)
	// GetSessions lists a hall's sessions; a non-empty name keeps only sessions with that name.
	GetSessions(ctx context.Context, venue string, hall int, name string) ([]response.SessionResponse, error)
	GetSession(ctx context.Context, venue string, hall, number int) (*response.SessionDetailResponse, error)
	GetSeatPlan(ctx context.Context, venue string, hall, number int) (string, error)
}

type scheduleService struct {
	catalog *catalog.Catalog
	repo    *repository.Repository
	pub     EventPublisher
	log     *zap.Logger
}

func NewScheduleService(cat *catalog.Catalog, repo *repository.Repository, pub EventPublisher, log *zap.Logger) ScheduleService {
	return &scheduleService{
		catalog: cat,
		repo:    repo,
		pub:     pub,
		log:     log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) AddSession(ctx context.Context, venue string, index int, req *request.CreateSessionRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add session validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	start, err := catalog.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrValidation, err)
	}
	end, err := catalog.ParseTimeOfDay(req.End)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrValidation, err)
	}

	hall, err := s.catalog.Hall(venue, index)
	if err != nil {
		return nil, fmt.Errorf("add session: %w", err)
	}

	session, err := hall.AddSession(req.Name, catalog.Interval{Start: start, End: end})
	if err != nil {
		fields := []zap.Field{
			zap.Error(err),
			zap.String("venue", venue),
			zap.Int("hall", index),
			zap.String("name", req.Name),
			zap.String("start", req.Start),
			zap.String("end", req.End),
		}
		var conflict *catalog.ConflictError
		if errors.As(err, &conflict) {
			fields = append(fields, zap.Int("conflicting_session", conflict.Existing.Number))
		}
		s.log.Warn("Failed to add session", fields...)
		return nil, fmt.Errorf("add session to hall %d of %q: %w", index, venue, err)
	}

	info := session.Info()
	record := &entity.Session{
		BaseSimple:    entity.BaseSimple{ID: info.ID, CreatedAt: session.CreatedAt()},
		VenueName:     info.Venue,
		HallNumber:    info.Hall,
		SessionNumber: info.Number,
		Name:          info.Name,
		StartsAt:      info.Interval.Start.String(),
		EndsAt:        info.Interval.End.String(),
	}
	if err := s.repo.Session.Create(ctx, record); err != nil {
		s.log.Error("Failed to journal session", zap.Error(err), zap.String("session_id", info.ID.String()))
	}

	event := SessionScheduledEvent{
		SessionID:     info.ID.String(),
		Venue:         info.Venue,
		HallNumber:    info.Hall,
		SessionNumber: info.Number,
		Name:          info.Name,
		Start:         record.StartsAt,
		End:           record.EndsAt,
		Capacity:      hall.Capacity(),
		ScheduledAt:   session.CreatedAt(),
	}
	if err := s.pub.Publish(ctx, EventSessionScheduled, event); err != nil {
		s.log.Error("Failed to publish session event", zap.Error(err), zap.String("session_id", info.ID.String()))
	}

	s.log.Info("Session scheduled",
		zap.String("session_id", info.ID.String()),
		zap.String("venue", info.Venue),
		zap.Int("hall", info.Hall),
		zap.Int("number", info.Number),
		zap.String("name", info.Name),
		zap.String("interval", info.Interval.String()),
	)

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *scheduleService) GetSessions(ctx context.Context, venue string, index int, name string) ([]response.SessionResponse, error) {
	hall, err := s.catalog.Hall(venue, index)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	var sessions []*catalog.Session
	if name != "" {
		sessions = hall.SessionsByName(name)
	} else {
		sessions = hall.Sessions()
	}

	out := make([]response.SessionResponse, len(sessions))
	for i, sess := range sessions {
		out[i] = response.SessionToResponse(sess)
	}
	return out, nil
}

func (s *scheduleService) GetSession(ctx context.Context, venue string, index, number int) (*response.SessionDetailResponse, error) {
	session, err := s.catalog.Session(venue, index, number)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", number, err)
	}

	resp := response.SessionToDetailResponse(session)
	return &resp, nil
}

func (s *scheduleService) GetSeatPlan(ctx context.Context, venue string, index, number int) (string, error) {
	session, err := s.catalog.Session(venue, index, number)
	if err != nil {
		return "", fmt.Errorf("get seat plan of session %d: %w", number, err)
	}

	info := session.Info()
	title := info.Venue + " / hall " + strconv.Itoa(info.Hall) + " / " + info.Name + " " + info.Interval.String()
	return report.RenderPlan(title, session.Grid()), nil
}
