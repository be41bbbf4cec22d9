package usecase

import (
	"context"

	"cinema-ticketing/internal/catalog"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/report"

	"go.uber.org/zap"
)

type ReportService interface {
	OrdersReport(ctx context.Context) (*response.OrdersReport, error)
	OrdersReportText(ctx context.Context) (string, error)
}

type reportService struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

func NewReportService(cat *catalog.Catalog, log *zap.Logger) ReportService {
	return &reportService{
		catalog: cat,
		log:     log.With(zap.String("service", "report")),
	}
}

func (s *reportService) OrdersReport(ctx context.Context) (*response.OrdersReport, error) {
	venues := s.catalog.Venues()
	out := &response.OrdersReport{Venues: make([]response.VenueOrders, 0, len(venues))}
	orderCount := 0

	for _, v := range venues {
		vo := response.VenueOrders{Name: v.Name(), Halls: []response.HallOrders{}}
		for _, h := range v.Halls() {
			ho := response.HallOrders{HallNumber: h.Index(), Sessions: []response.SessionOrders{}}
			for _, sess := range h.Sessions() {
				orders := sess.Orders()
				so := response.SessionOrders{
					SessionResponse: response.SessionToResponse(sess),
					Orders:          make([]response.OrderResponse, len(orders)),
				}
				for i, o := range orders {
					so.Orders[i] = response.OrderToResponse(so.ID, o)
				}
				orderCount += len(orders)
				ho.Sessions = append(ho.Sessions, so)
			}
			vo.Halls = append(vo.Halls, ho)
		}
		out.Venues = append(out.Venues, vo)
	}

	s.log.Debug("Orders report built", zap.Int("venues", len(venues)), zap.Int("orders", orderCount))
	return out, nil
}

func (s *reportService) OrdersReportText(ctx context.Context) (string, error) {
	r, err := s.OrdersReport(ctx)
	if err != nil {
		return "", err
	}
	return report.RenderOrders(*r), nil
}
