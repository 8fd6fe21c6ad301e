package handler

import (
	"net/http"

	"coderr/internal/delivery/api/response"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatisticsHandlerParams holds dependencies for StatisticsHandler, injected by Fx.
type StatisticsHandlerParams struct {
	fx.In

	StatisticsUC usecase.StatisticsUsecase
}

type StatisticsHandler struct {
	statisticsUC usecase.StatisticsUsecase
}

func NewStatisticsHandler(params StatisticsHandlerParams) *StatisticsHandler {
	return &StatisticsHandler{statisticsUC: params.StatisticsUC}
}

// BaseInfo handles GET /base-info/.
func (h *StatisticsHandler) BaseInfo(c echo.Context) error {
	info, err := h.statisticsUC.GetBaseInfo(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, baseInfoResponse{
		ReviewCount:          info.ReviewCount,
		AverageRating:        info.AverageRating,
		BusinessProfileCount: info.BusinessProfileCount,
		OfferCount:           info.OfferCount,
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
