package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	"atlas/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SummaryHandlerParams holds dependencies for SummaryHandler, injected by Fx.
type SummaryHandlerParams struct {
	fx.In

	SummaryUC usecase.SummaryUsecase
	Logger    *slog.Logger
}

// SummaryHandler holds dependencies for the summary endpoint
type SummaryHandler struct {
	summaryUC usecase.SummaryUsecase
	logger    *slog.Logger
}

// NewSummaryHandler is the constructor for SummaryHandler
func NewSummaryHandler(params SummaryHandlerParams) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: params.SummaryUC,
		logger:    params.Logger,
	}
}

// GetSummary handles the dataset summary endpoint
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	summary, err := h.summaryUC.Summary(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
