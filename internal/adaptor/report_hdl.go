package adaptor

import (
	"net/http"

	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetOrdersReport handles GET /api/reports/orders
// Optional query param: ?format=text renders a table instead of JSON
func (h *ReportHandler) GetOrdersReport(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "text" {
		text, err := h.service.OrdersReportText(r.Context())
		if err != nil {
			handleServiceError(h.log, w, err, "get orders report")
			return
		}
		utils.ResponseText(w, http.StatusOK, text+"\n")
		return
	}

	report, err := h.service.OrdersReport(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get orders report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
