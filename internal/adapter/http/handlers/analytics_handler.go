package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "npc_garage/internal/adapter/http/dto/request"
	response "npc_garage/internal/adapter/http/dto/response"
	"npc_garage/internal/domain/analytics"
	"npc_garage/internal/usecase"
	"npc_garage/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ReportExporter renders a report as a downloadable file.
type ReportExporter interface {
	Generate(report analytics.Report) ([]byte, error)
}

// AnalyticsHandler serves the financial dashboard endpoints.
type AnalyticsHandler struct {
	usecase  usecase.IAnalyticsUseCase
	exporter ReportExporter
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase, exporter ReportExporter) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc, exporter: exporter}
}

// GetReport godoc
// @Summary      Full analytics report
// @Tags         analytics
// @Produce      json
// @Param        start_date   query  string  true   "Period start (YYYY-MM-DD or RFC3339)"
// @Param        end_date     query  string  true   "Period end, inclusive"
// @Param        mechanic_id  query  string  false  "Mechanic filter (default ALL)"
// @Param        limit        query  int     false  "Ranking size"
// @Param        months       query  int     false  "Monthly series length"
// @Success      200  {object}  response.ReportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /analytics/report [get]
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	report, err := h.usecase.Report(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

// ExportReport godoc
// @Summary      Analytics report as xlsx
// @Tags         analytics
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date   query  string  true   "Period start"
// @Param        end_date     query  string  true   "Period end, inclusive"
// @Param        mechanic_id  query  string  false  "Mechanic filter"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/report/export [get]
func (h *AnalyticsHandler) ExportReport(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	report, err := h.usecase.Report(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	data, err := h.exporter.Generate(report)
	if err != nil {
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}

	period := response.FromWindow(report.Window)
	filename := fmt.Sprintf("analytics_%s_%s.xlsx", period.StartDate, period.EndDate)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GetKPIs godoc
// @Summary      KPI bundle for a period
// @Tags         analytics
// @Produce      json
// @Param        start_date   query  string  true   "Period start"
// @Param        end_date     query  string  true   "Period end, inclusive"
// @Param        mechanic_id  query  string  false  "Mechanic filter"
// @Success      200  {object}  analytics.KPIs
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/kpis [get]
func (h *AnalyticsHandler) GetKPIs(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	kpis, err := h.usecase.KPIs(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// GetClientSegments godoc
// @Summary      New vs recurring clients
// @Tags         analytics
// @Produce      json
// @Param        start_date   query  string  true   "Period start"
// @Param        end_date     query  string  true   "Period end, inclusive"
// @Param        mechanic_id  query  string  false  "Mechanic filter"
// @Success      200  {object}  analytics.ClientSegments
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/clients [get]
func (h *AnalyticsHandler) GetClientSegments(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	segments, err := h.usecase.ClientSegments(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, segments)
}

// GetMechanicPerformance godoc
// @Summary      Labor attribution per mechanic
// @Tags         analytics
// @Produce      json
// @Param        start_date   query  string  true   "Period start"
// @Param        end_date     query  string  true   "Period end, inclusive"
// @Param        mechanic_id  query  string  false  "Mechanic filter"
// @Success      200  {object}  response.ListResponse[analytics.MechanicPerformance]
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/mechanics [get]
func (h *AnalyticsHandler) GetMechanicPerformance(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	out, err := h.usecase.MechanicPerformance(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(out))
}

// GetTopServices godoc
// @Summary      Most profitable services
// @Tags         analytics
// @Produce      json
// @Param        start_date   query  string  true   "Period start"
// @Param        end_date     query  string  true   "Period end, inclusive"
// @Param        mechanic_id  query  string  false  "Mechanic filter"
// @Param        limit        query  int     false  "Ranking size"
// @Success      200  {object}  response.ListResponse[analytics.RankedItem]
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/rankings/services [get]
func (h *AnalyticsHandler) GetTopServices(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	out, err := h.usecase.TopServices(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(out))
}

// GetTopParts godoc
// @Summary      Most profitable parts
// @Tags         analytics
// @Produce      json
// @Param        start_date   query  string  true   "Period start"
// @Param        end_date     query  string  true   "Period end, inclusive"
// @Param        mechanic_id  query  string  false  "Mechanic filter"
// @Param        limit        query  int     false  "Ranking size"
// @Success      200  {object}  response.ListResponse[analytics.RankedItem]
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/rankings/parts [get]
func (h *AnalyticsHandler) GetTopParts(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	out, err := h.usecase.TopParts(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(out))
}

// GetMonthlyRevenue godoc
// @Summary      Trailing monthly revenue
// @Tags         analytics
// @Produce      json
// @Param        months  query  int  false  "Number of months (default 12)"
// @Success      200  {object}  response.ListResponse[response.MonthBucketResponse]
// @Failure      400  {object}  pkg.HTTPError
// @Router       /analytics/revenue/monthly [get]
func (h *AnalyticsHandler) GetMonthlyRevenue(c *gin.Context) {
	var q request.AnalyticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, errInvalidQuery)
		return
	}
	out, err := h.usecase.MonthlyRevenue(c.Request.Context(), q.Months)
	if err != nil {
		respondError(c, mapAnalyticsError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(response.FromMonthBuckets(out)))
}

func bindQuery(c *gin.Context) (usecase.ReportQuery, bool) {
	var payload request.AnalyticsQuery
	if err := c.ShouldBindQuery(&payload); err != nil {
		respondError(c, errInvalidQuery)
		return usecase.ReportQuery{}, false
	}
	q, err := payload.ToReportQuery()
	if err != nil {
		respondError(c, errInvalidQuery)
		return usecase.ReportQuery{}, false
	}
	return q, true
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "start_date and end_date are required and start_date must not be after end_date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLimit):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit and months must not be negative", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
