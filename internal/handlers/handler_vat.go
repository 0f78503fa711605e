package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/uk_books_app/internal/core/domain"
	portssvc "github.com/SscSPs/uk_books_app/internal/core/ports/services"
	"github.com/SscSPs/uk_books_app/internal/core/vat"
	"github.com/SscSPs/uk_books_app/internal/dto"
	"github.com/SscSPs/uk_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vatHandler handles HTTP requests for VAT figures and summary reports.
type vatHandler struct {
	vatService portssvc.VatReportService
	now        func() time.Time
}

func newVatHandler(vs portssvc.VatReportService) *vatHandler {
	return &vatHandler{
		vatService: vs,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RegisterVatRoutes registers the VAT report routes on rg.
func RegisterVatRoutes(rg *gin.RouterGroup, vatService portssvc.VatReportService) {
	h := newVatHandler(vatService)

	vatGroup := rg.Group("/vat")
	{
		vatGroup.GET("/summary", h.getSummary)
		vatGroup.GET("/tax-year", h.lookupTaxYear)
		vatGroup.GET("/tax-year/:taxYear", h.getTaxYearSummary)
		vatGroup.GET("/month/:year/:month", h.getMonthSummary)
		vatGroup.GET("/quarter/:year/:quarter", h.getQuarterSummary)
		vatGroup.GET("/rates", h.getRates)
		vatGroup.GET("/totals", h.getTotals)
		vatGroup.GET("/monthly", h.getMonthly)
		vatGroup.GET("/categories", h.getCategories)
	}
}

func bindReportOptions(c *gin.Context, logger *slog.Logger) (domain.VatReportOptions, bool) {
	var q dto.VatReportOptionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid report options", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report options: " + err.Error()})
		return domain.VatReportOptions{}, false
	}
	return q.ToOptions(), true
}

func bindRange(c *gin.Context, logger *slog.Logger) (dto.VatRangeQuery, bool) {
	var q dto.VatRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid date range query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate are required (YYYY-MM-DD)"})
		return q, false
	}
	return q, true
}

func pathInt(c *gin.Context, logger *slog.Logger, name string) (int, bool) {
	raw := c.Param(name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("Invalid path parameter", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": must be a number"})
		return 0, false
	}
	return n, true
}

func (h *vatHandler) respondReport(c *gin.Context, logger *slog.Logger, report *domain.VatSummaryReport, err error) {
	if err != nil {
		respondError(c, logger, err, "generate VAT summary report")
		return
	}
	logger.Info("VAT summary report generated", slog.String("report_id", report.ReportID))
	c.JSON(http.StatusOK, dto.ToVatSummaryReportResponse(report, middleware.GetLocaleFromContext(c)))
}

// getSummary godoc
// @Summary VAT summary for a date range
// @Description Generates the VAT summary report for an inclusive date range
// @Tags vat
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param includeMonthly query bool false "Include the monthly breakdown" default(true)
// @Param includeCategories query bool false "Include the category breakdown" default(false)
// @Param Accept-Language header string false "Locale for netPositionText (en, tr)"
// @Success 200 {object} dto.VatSummaryReportResponse
// @Failure 400 {object} apperrors.DomainError "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /vat/summary [get]
func (h *vatHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	q, ok := bindRange(c, logger)
	if !ok {
		return
	}
	opts, ok := bindReportOptions(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("start_date", q.StartDate), slog.String("end_date", q.EndDate))
	report, err := h.vatService.GenerateVatSummaryReport(c.Request.Context(), userID, q.StartDate, q.EndDate, opts)
	h.respondReport(c, logger, report, err)
}

// lookupTaxYear godoc
// @Summary Tax year of a date
// @Description Returns the UK tax year (6 April - 5 April) containing the date, today when omitted
// @Tags vat
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.TaxYearLookupResponse
// @Failure 400 {object} apperrors.DomainError "Invalid date"
// @Security BearerAuth
// @Router /vat/tax-year [get]
func (h *vatHandler) lookupTaxYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw := c.DefaultQuery("date", h.now().Format(domain.DateLayout))

	date, err := vat.ParseDate(raw)
	if err != nil {
		respondError(c, logger, err, "look up tax year")
		return
	}
	period, err := vat.TaxYearDates(vat.TaxYearForDate(date))
	if err != nil {
		respondError(c, logger, err, "look up tax year")
		return
	}
	c.JSON(http.StatusOK, dto.TaxYearLookupResponse{
		Date:              raw,
		VatPeriodResponse: dto.ToVatPeriodResponse(period),
	})
}

// getTaxYearSummary godoc
// @Summary VAT summary for a tax year
// @Description Generates the VAT summary report for a UK tax year such as 2025-26
// @Tags vat
// @Produce json
// @Param taxYear path string true "Tax year (YYYY-YY)"
// @Param includeMonthly query bool false "Include the monthly breakdown" default(true)
// @Param includeCategories query bool false "Include the category breakdown" default(false)
// @Success 200 {object} dto.VatSummaryReportResponse
// @Failure 400 {object} apperrors.DomainError "Invalid tax year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /vat/tax-year/{taxYear} [get]
func (h *vatHandler) getTaxYearSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	opts, ok := bindReportOptions(c, logger)
	if !ok {
		return
	}
	taxYear := c.Param("taxYear")

	logger = logger.With(slog.String("tax_year", taxYear))
	report, err := h.vatService.GenerateVatSummaryForTaxYear(c.Request.Context(), userID, taxYear, opts)
	h.respondReport(c, logger, report, err)
}

// getMonthSummary godoc
// @Summary VAT summary for a calendar month
// @Tags vat
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param includeMonthly query bool false "Include the monthly breakdown" default(true)
// @Param includeCategories query bool false "Include the category breakdown" default(false)
// @Success 200 {object} dto.VatSummaryReportResponse
// @Failure 400 {object} apperrors.DomainError "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vat/month/{year}/{month} [get]
func (h *vatHandler) getMonthSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	year, ok := pathInt(c, logger, "year")
	if !ok {
		return
	}
	month, ok := pathInt(c, logger, "month")
	if !ok {
		return
	}
	opts, ok := bindReportOptions(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int("year", year), slog.Int("month", month))
	report, err := h.vatService.GenerateVatSummaryForMonth(c.Request.Context(), userID, year, month, opts)
	h.respondReport(c, logger, report, err)
}

// getQuarterSummary godoc
// @Summary VAT summary for a calendar quarter
// @Description Quarter 1 is January-March, 2 April-June, 3 July-September, 4 October-December
// @Tags vat
// @Produce json
// @Param year path int true "Year"
// @Param quarter path int true "Quarter (1-4)"
// @Param includeMonthly query bool false "Include the monthly breakdown" default(true)
// @Param includeCategories query bool false "Include the category breakdown" default(false)
// @Success 200 {object} dto.VatSummaryReportResponse
// @Failure 400 {object} apperrors.DomainError "Invalid quarter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vat/quarter/{year}/{quarter} [get]
func (h *vatHandler) getQuarterSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	year, ok := pathInt(c, logger, "year")
	if !ok {
		return
	}
	quarter, ok := pathInt(c, logger, "quarter")
	if !ok {
		return
	}
	opts, ok := bindReportOptions(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.Int("year", year), slog.Int("quarter", quarter))
	report, err := h.vatService.GenerateVatSummaryForQuarter(c.Request.Context(), userID, year, quarter, opts)
	h.respondReport(c, logger, report, err)
}

// getRates godoc
// @Summary VAT by rate
// @Description Output (sales) and input (purchases) VAT grouped by rate, highest rate first
// @Tags vat
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.VatRatesResponse
// @Failure 400 {object} apperrors.DomainError "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vat/rates [get]
func (h *vatHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	q, ok := bindRange(c, logger)
	if !ok {
		return
	}

	output, err := h.vatService.GetOutputVatByRate(c.Request.Context(), userID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(c, logger, err, "calculate output VAT")
		return
	}
	input, err := h.vatService.GetInputVatByRate(c.Request.Context(), userID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(c, logger, err, "calculate input VAT")
		return
	}
	c.JSON(http.StatusOK, dto.VatRatesResponse{StartDate: q.StartDate, EndDate: q.EndDate, Output: output, Input: input})
}

// getTotals godoc
// @Summary VAT totals
// @Tags vat
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.VatTotals
// @Failure 400 {object} apperrors.DomainError "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vat/totals [get]
func (h *vatHandler) getTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	q, ok := bindRange(c, logger)
	if !ok {
		return
	}

	totals, err := h.vatService.GetVatTotals(c.Request.Context(), userID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(c, logger, err, "calculate VAT totals")
		return
	}
	c.JSON(http.StatusOK, totals)
}

// getMonthly godoc
// @Summary Monthly VAT
// @Description One row per calendar month that has transactions, oldest first
// @Tags vat
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.VatMonthlyResponse
// @Failure 400 {object} apperrors.DomainError "Invalid date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vat/monthly [get]
func (h *vatHandler) getMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	q, ok := bindRange(c, logger)
	if !ok {
		return
	}

	months, err := h.vatService.GetMonthlyVatSummary(c.Request.Context(), userID, q.StartDate, q.EndDate)
	if err != nil {
		respondError(c, logger, err, "calculate monthly VAT")
		return
	}
	c.JSON(http.StatusOK, dto.VatMonthlyResponse{StartDate: q.StartDate, EndDate: q.EndDate, Months: months})
}

// getCategories godoc
// @Summary VAT by category
// @Description VAT for one transaction type grouped by category, largest VAT first
// @Tags vat
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param type query string true "income or expense"
// @Success 200 {object} dto.VatCategoriesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /vat/categories [get]
func (h *vatHandler) getCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	var q dto.VatCategoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid category query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate, endDate and type (income or expense) are required"})
		return
	}

	categories, err := h.vatService.GetVatByCategory(c.Request.Context(), userID, q.StartDate, q.EndDate, domain.TransactionType(q.Type))
	if err != nil {
		respondError(c, logger, err, "calculate VAT by category")
		return
	}
	c.JSON(http.StatusOK, dto.VatCategoriesResponse{StartDate: q.StartDate, EndDate: q.EndDate, Type: q.Type, Categories: categories})
}
