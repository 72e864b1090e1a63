package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/dto"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/export"
)

const contentTypePNG = "image/png"

// SummaryHandler handles summaries, charts and exports of one transaction kind
type SummaryHandler struct {
	kind         entity.TransactionKind
	transactions usecase.TransactionUseCase
	reports      usecase.ReportUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSummaryHandler creates a summary handler bound to kind
func NewSummaryHandler(
	kind entity.TransactionKind,
	transactions usecase.TransactionUseCase,
	reports usecase.ReportUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *SummaryHandler {
	return &SummaryHandler{
		kind:         kind,
		transactions: transactions,
		reports:      reports,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"kind": string(kind)}),
	}
}

// Summary handles GET /{kind}/summary
func (h *SummaryHandler) Summary(c *gin.Context) {
	params, err := parseQueryParams(c)
	if err != nil {
		respondError(c, h.logger, "summary", err)
		return
	}

	items, err := h.transactions.Summary(c.Request.Context(), middleware.UserID(c), h.kind, params)
	if err != nil {
		respondError(c, h.logger, "summary", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategorySummaryResponses(items))
}

// SummaryChart handles GET /{kind}/summary/chart?chart_type=pie|barplot
func (h *SummaryHandler) SummaryChart(c *gin.Context) {
	params, err := parseQueryParams(c)
	if err != nil {
		respondError(c, h.logger, "summary_chart", err)
		return
	}
	chartType, err := entity.ParseChartType(c.Query("chart_type"))
	if err != nil {
		respondError(c, h.logger, "summary_chart", err)
		return
	}

	png, err := h.reports.SummaryChart(c.Request.Context(), middleware.UserID(c), h.kind, params, chartType)
	if err != nil {
		respondError(c, h.logger, "summary_chart", err)
		return
	}
	c.Data(http.StatusOK, contentTypePNG, png)
}

// Annual handles GET /{kind}/summary/annual?year=&format=json|csv
func (h *SummaryHandler) Annual(c *gin.Context) {
	h.periodic(c, entity.PeriodAnnual)
}

// Monthly handles GET /{kind}/summary/monthly?year=&month=&format=json|csv
func (h *SummaryHandler) Monthly(c *gin.Context) {
	h.periodic(c, entity.PeriodMonthly)
}

// AnnualChart handles GET /{kind}/summary/annual/chart
func (h *SummaryHandler) AnnualChart(c *gin.Context) {
	h.periodicChart(c, entity.PeriodAnnual)
}

// MonthlyChart handles GET /{kind}/summary/monthly/chart
func (h *SummaryHandler) MonthlyChart(c *gin.Context) {
	h.periodicChart(c, entity.PeriodMonthly)
}

// PublishAnnual handles POST /{kind}/summary/annual/sheets
func (h *SummaryHandler) PublishAnnual(c *gin.Context) {
	input, err := h.periodicInput(c, entity.PeriodAnnual)
	if err != nil {
		respondError(c, h.logger, "publish_annual", err)
		return
	}

	rng, err := h.reports.PublishPeriodic(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, "publish_annual", err)
		return
	}
	c.JSON(http.StatusOK, dto.PublishResponse{Range: rng})
}

func (h *SummaryHandler) periodic(c *gin.Context, period entity.PeriodKind) {
	operation := string(period) + "_summary"

	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		respondError(c, h.logger, operation,
			errs.NewValidationError("format", "must be json or csv", errs.ErrInvalidRequest))
		return
	}

	input, err := h.periodicInput(c, period)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	summaries, err := h.reports.Periodic(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	if format == "csv" {
		rows := entity.FlattenPeriodSummaries(summaries)
		writeCSV(c, h.logger, export.FileName(periodFileParts(input)...), func(w io.Writer) error {
			return export.WritePeriodRows(w, rows)
		})
		return
	}
	c.JSON(http.StatusOK, dto.NewPeriodSummaryResponses(summaries))
}

func (h *SummaryHandler) periodicChart(c *gin.Context, period entity.PeriodKind) {
	operation := string(period) + "_chart"

	input, err := h.periodicInput(c, period)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}

	png, err := h.reports.PeriodicChart(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, operation, err)
		return
	}
	c.Data(http.StatusOK, contentTypePNG, png)
}

// periodicInput reads year and month, defaulting to the current ones
func (h *SummaryHandler) periodicInput(c *gin.Context, period entity.PeriodKind) (usecase.PeriodicInput, error) {
	now := h.timeProvider.Now()
	input := usecase.PeriodicInput{
		UserID: middleware.UserID(c),
		Kind:   h.kind,
		Period: period,
		Year:   now.Year(),
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return input, errs.NewValidationError("year", "must be an integer", errs.ErrInvalidRequest)
		}
		input.Year = year
	}

	if period == entity.PeriodMonthly {
		input.Month = now.Month()
		if raw := c.Query("month"); raw != "" {
			month, err := strconv.Atoi(raw)
			if err != nil {
				return input, errs.NewValidationError("month", "must be an integer", errs.ErrInvalidRequest)
			}
			input.Month = time.Month(month)
		}
	}

	params, err := parseQueryParams(c)
	if err != nil {
		return input, err
	}
	input.Categories = params.Categories
	return input, nil
}

func periodFileParts(input usecase.PeriodicInput) []string {
	parts := []string{string(input.Kind) + "s", strconv.Itoa(input.Year)}
	if input.Period == entity.PeriodMonthly {
		parts = append(parts, fmt.Sprintf("%02d", int(input.Month)))
	}
	return parts
}
