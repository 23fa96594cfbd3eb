package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coderhive/forecast-api/internal/api/metrics"
	"github.com/coderhive/forecast-api/internal/core/ports"
)

// QuoteHandler proxies reseller quotation requests to the quote service.
type QuoteHandler struct {
	quotes ports.QuoteService
}

func NewQuoteHandler(quotes ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Prepare requests ranked vendor quotations for a project.
//
// @Summary      Prepare a quotation
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      prepareQuoteRequest  true  "Project description"
// @Success      200   {object}  ports.QuoteResult
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      502   {object}  messageResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Prepare(c echo.Context) error {
	var req prepareQuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	res, err := h.quotes.PrepareSimple(c.Request().Context(), ports.PrepareSimpleInput{
		ProjectType: req.ProjectType,
		Address:     req.Address,
		Materials:   req.Materials,
		Quantity:    req.Quantity,
		SiteLat:     req.SiteLat,
		SiteLng:     req.SiteLng,
	})
	if err != nil {
		metrics.QuoteRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return err
	}

	metrics.QuoteRequestDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, res)
}
