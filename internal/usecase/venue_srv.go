package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VenueService interface {
	CreateVenue(ctx context.Context, req *request.CreateVenueRequest) (*response.VenueResponse, error)
	GetVenues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error)
	GetVenue(ctx context.Context, name string) (*response.VenueDetailResponse, error)

	AddHall(ctx context.Context, venue string, req *request.CreateHallRequest) (*response.HallResponse, error)
	GetHall(ctx context.Context, venue string, hall int) (*response.HallDetailResponse, error)
}

type venueService struct {
	catalog *catalog.Catalog
	repo    *repository.Repository
	log     *zap.Logger
}

func NewVenueService(cat *catalog.Catalog, repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		catalog: cat,
		repo:    repo,
		log:     log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) CreateVenue(ctx context.Context, req *request.CreateVenueRequest) (*response.VenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	venue, err := s.catalog.AddVenue(req.Name)
	if err != nil {
		s.log.Warn("Failed to add venue", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("add venue %q: %w", req.Name, err)
	}

	record := &entity.Venue{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       venue.Name(),
	}
	if err := s.repo.Venue.Create(ctx, record); err != nil {
		s.log.Error("Failed to journal venue", zap.Error(err), zap.String("name", venue.Name()))
	}

	s.log.Info("Venue created", zap.String("name", venue.Name()))

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) GetVenues(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error) {
	venues := s.catalog.Venues()
	page := utils.PageOf(venues, req.Offset(), req.Limit())

	venueResponses := make([]response.VenueResponse, len(page))
	for i, v := range page {
		venueResponses[i] = response.VenueToResponse(v)
	}

	s.log.Debug("Venues retrieved",
		zap.Int("count", len(page)),
		zap.Int("total", len(venues)),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(venueResponses, req.Page, req.Limit(), int64(len(venues))), nil
}

func (s *venueService) GetVenue(ctx context.Context, name string) (*response.VenueDetailResponse, error) {
	venue, err := s.catalog.Venue(name)
	if err != nil {
		return nil, fmt.Errorf("get venue %q: %w", name, err)
	}

	halls := venue.Halls()
	hallResponses := make([]response.HallResponse, len(halls))
	for i, h := range halls {
		hallResponses[i] = response.HallToResponse(h)
	}

	return &response.VenueDetailResponse{
		VenueResponse: response.VenueResponse{Name: venue.Name(), HallCount: len(halls)},
		Halls:         hallResponses,
	}, nil
}

func (s *venueService) AddHall(ctx context.Context, venueName string, req *request.CreateHallRequest) (*response.HallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	venue, err := s.catalog.Venue(venueName)
	if err != nil {
		return nil, fmt.Errorf("add hall: %w", err)
	}

	hall, err := venue.AddHall(req.Rows, req.Columns)
	if err != nil {
		s.log.Warn("Failed to add hall",
			zap.Error(err),
			zap.String("venue", venueName),
			zap.Int("rows", req.Rows),
			zap.Int("columns", req.Columns),
		)
		return nil, fmt.Errorf("add hall to %q: %w", venueName, err)
	}

	record := &entity.Hall{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		VenueName:  venue.Name(),
		HallNumber: hall.Index(),
		SeatRows:   hall.Rows(),
		SeatCols:   hall.Columns(),
	}
	if err := s.repo.Hall.Create(ctx, record); err != nil {
		s.log.Error("Failed to journal hall",
			zap.Error(err),
			zap.String("venue", venue.Name()),
			zap.Int("hall", hall.Index()),
		)
	}

	s.log.Info("Hall added",
		zap.String("venue", venue.Name()),
		zap.Int("hall", hall.Index()),
		zap.Int("rows", hall.Rows()),
		zap.Int("columns", hall.Columns()),
	)

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *venueService) GetHall(ctx context.Context, venueName string, index int) (*response.HallDetailResponse, error) {
	hall, err := s.catalog.Hall(venueName, index)
	if err != nil {
		return nil, fmt.Errorf("get hall %d of %q: %w", index, venueName, err)
	}

	sessions := hall.Sessions()
	sessionResponses := make([]response.SessionResponse, len(sessions))
	for i, sess := range sessions {
		sessionResponses[i] = response.SessionToResponse(sess)
	}

	hallResp := response.HallToResponse(hall)
	hallResp.SessionCount = len(sessions)

	return &response.HallDetailResponse{
		HallResponse: hallResp,
		Sessions:     sessionResponses,
	}, nil
}
