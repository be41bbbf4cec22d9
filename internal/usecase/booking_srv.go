package usecase

import (
	"context"
	"errors"
	"fmt"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateOrder(ctx context.Context, venue string, hall, session int, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context, venue string, hall, session int) ([]response.OrderResponse, error)
}

type bookingService struct {
	catalog *catalog.Catalog
	repo    *repository.Repository
	pub     EventPublisher
	log     *zap.Logger
}

func NewBookingService(cat *catalog.Catalog, repo *repository.Repository, pub EventPublisher, log *zap.Logger) BookingService {
	return &bookingService{
		catalog: cat,
		repo:    repo,
		pub:     pub,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateOrder(ctx context.Context, venue string, hall, number int, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	session, err := s.catalog.Session(venue, hall, number)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	seats := make([]catalog.Seat, len(req.Seats))
	for i, seat := range req.Seats {
		seats[i] = catalog.Seat{Row: seat.Row, Column: seat.Column}
	}

	order, err := session.Book(req.CustomerName, seats)
	if err != nil {
		fields := []zap.Field{
			zap.Error(err),
			zap.String("session_id", session.ID().String()),
			zap.String("customer", req.CustomerName),
			zap.Int("seats", len(seats)),
		}
		var seatErr *catalog.SeatError
		if errors.As(err, &seatErr) {
			fields = append(fields, zap.Stringer("seat", seatErr.Seat))
		}
		s.log.Warn("Failed to book seats", fields...)
		return nil, fmt.Errorf("book session %d: %w", number, err)
	}

	resp := response.OrderToResponse(session.ID().String(), order)

	record := &entity.Order{
		BaseSimple:   entity.BaseSimple{ID: order.ID, CreatedAt: order.CreatedAt},
		OrderRef:     resp.OrderRef,
		SessionID:    session.ID(),
		CustomerName: order.Customer,
		TotalSeats:   order.Count,
		Seats:        make([]entity.OrderSeat, len(order.Seats)),
	}
	for i, seat := range order.Seats {
		record.Seats[i] = entity.OrderSeat{OrderID: order.ID, SeatRow: seat.Row, SeatColumn: seat.Column}
	}
	if err := s.repo.Order.Create(ctx, record); err != nil {
		s.log.Error("Failed to journal order", zap.Error(err), zap.String("order_ref", resp.OrderRef))
	}

	info := session.Info()
	event := OrderPlacedEvent{
		OrderID:      resp.ID,
		OrderRef:     resp.OrderRef,
		SessionID:    resp.SessionID,
		Venue:        info.Venue,
		HallNumber:   info.Hall,
		SessionName:  info.Name,
		CustomerName: resp.CustomerName,
		Seats:        resp.Seats,
		PlacedAt:     resp.CreatedAt,
	}
	if err := s.pub.Publish(ctx, EventOrderPlaced, event); err != nil {
		s.log.Error("Failed to publish order event", zap.Error(err), zap.String("order_ref", resp.OrderRef))
	}

	s.log.Info("Order placed",
		zap.String("order_ref", resp.OrderRef),
		zap.String("session_id", resp.SessionID),
		zap.String("customer", resp.CustomerName),
		zap.Int("total_seats", resp.TotalSeats),
	)

	return &resp, nil
}

func (s *bookingService) GetOrders(ctx context.Context, venue string, hall, number int) ([]response.OrderResponse, error) {
	session, err := s.catalog.Session(venue, hall, number)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	orders := session.Orders()
	out := make([]response.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = response.OrderToResponse(session.ID().String(), o)
	}
	return out, nil
}
