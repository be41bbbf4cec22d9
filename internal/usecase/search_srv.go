package usecase

import (
	"context"
	"fmt"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type SearchService interface {
	// FindSessions returns catalog.ErrSessionNameNotFound when no session has
	// the name and catalog.ErrNoQualifyingSession when some do but none has
	// the requested run of adjacent free seats.
	FindSessions(ctx context.Context, req *request.SearchSessionsRequest) ([]response.SessionResponse, error)
}

type searchService struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

func NewSearchService(cat *catalog.Catalog, log *zap.Logger) SearchService {
	return &searchService{
		catalog: cat,
		log:     log.With(zap.String("service", "search")),
	}
}

func (s *searchService) FindSessions(ctx context.Context, req *request.SearchSessionsRequest) ([]response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	matches, err := s.catalog.FindSessions(req.Name, req.Seats)
	if err != nil {
		s.log.Debug("No sessions found", zap.Error(err), zap.String("name", req.Name), zap.Int("seats", req.Seats))
		return nil, fmt.Errorf("find sessions %q: %w", req.Name, err)
	}

	out := make([]response.SessionResponse, len(matches))
	for i, m := range matches {
		out[i] = response.SessionToResponse(m.Session)
	}

	s.log.Debug("Sessions found", zap.String("name", req.Name), zap.Int("seats", req.Seats), zap.Int("count", len(out)))
	return out, nil
}
