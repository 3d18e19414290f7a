package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/SscSPs/freight_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests for the weekly rate ledger.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("/current", h.listCurrentRates)
		rates.GET("/history", h.listRateHistory)
		rates.GET("/rate", h.resolveRate)
		rates.GET("/week", h.getWeek)
		rates.POST("", h.upsertExchangeRate)
		rates.POST("/bulk", h.bulkUpsertExchangeRates)
		rates.POST("/convert", h.convert)
	}
}

func optionalSource(raw *string) *domain.RateSource {
	if raw == nil || *raw == "" {
		return nil
	}
	src := domain.RateSource(*raw)
	return &src
}

// optionalDate parses a YYYY-MM-DD query value, writing a 400 when it is malformed.
func optionalDate(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, true
	}
	d, err := domain.ParseDate(strings.TrimSpace(*raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return &d, true
}

// listCurrentRates godoc
// @Summary List this week's rates
// @Description Rates whose week window contains today in the business timezone
// @Tags exchange-rates
// @Produce  json
// @Param   source query string false "Rate source (BI, BCA, MANDIRI, MANUAL, API)"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid source"
// @Security BearerAuth
// @Router /exchange-rates/current [get]
func (h *exchangeRateHandler) listCurrentRates(c *gin.Context) {
	var query struct {
		Source *string `form:"source" binding:"omitempty,ratesource"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	rates, err := h.exchangeRateService.ListCurrentRates(c.Request.Context(), optionalSource(query.Source))
	if err != nil {
		respondWithError(c, err, "Failed to list current exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// listRateHistory godoc
// @Summary Rate history
// @Description Rates ordered by year and week descending, each with the previous week's rate
// @Tags exchange-rates
// @Produce  json
// @Param   from_currency query string false "From currency code"
// @Param   to_currency query string false "To currency code"
// @Param   source query string false "Rate source"
// @Param   limit query int false "Maximum rows (default 100)"
// @Success 200 {array} dto.ExchangeRateHistoryResponse
// @Security BearerAuth
// @Router /exchange-rates/history [get]
func (h *exchangeRateHandler) listRateHistory(c *gin.Context) {
	var query dto.RateHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	history, err := h.exchangeRateService.ListRateHistory(c.Request.Context(), domain.RateHistoryFilter{
		FromCurrencyCode: query.FromCurrency,
		ToCurrencyCode:   query.ToCurrency,
		Source:           optionalSource(query.Source),
		Limit:            query.Limit,
	})
	if err != nil {
		respondWithError(c, err, "Failed to list exchange rate history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateHistoryResponse(history))
}

// resolveRate godoc
// @Summary Look up the applicable rate
// @Description Direct rate first, then the inverse of the opposite pair. No triangulation.
// @Tags exchange-rates
// @Produce  json
// @Param   from query string true "From currency code"
// @Param   to query string true "To currency code"
// @Param   source query string false "Rate source; priority order when omitted"
// @Param   date query string false "Date (YYYY-MM-DD), today when omitted"
// @Success 200 {object} dto.ResolvedRateResponse
// @Failure 404 {object} map[string]interface{} "No applicable rate"
// @Security BearerAuth
// @Router /exchange-rates/rate [get]
func (h *exchangeRateHandler) resolveRate(c *gin.Context) {
	var query dto.ResolveRateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	asOf, ok := optionalDate(c, query.Date)
	if !ok {
		return
	}

	resolved, err := h.exchangeRateService.ResolveRate(c.Request.Context(), query.From, query.To, optionalSource(query.Source), asOf)
	if err != nil {
		respondWithError(c, err, "Failed to resolve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToResolvedRateResponse(resolved))
}

// getWeek godoc
// @Summary Week window for a date
// @Tags exchange-rates
// @Produce  json
// @Param   date query string false "Date (YYYY-MM-DD), today when omitted"
// @Success 200 {object} dto.WeekResponse
// @Security BearerAuth
// @Router /exchange-rates/week [get]
func (h *exchangeRateHandler) getWeek(c *gin.Context) {
	raw := c.Query("date")
	date, ok := optionalDate(c, &raw)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToWeekResponse(h.exchangeRateService.WeekOf(date)))
}

// upsertExchangeRate godoc
// @Summary Create or update a weekly rate
// @Description One record per pair, week and source; a second write for the same key updates it.
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.UpsertExchangeRateRequest true "Exchange rate"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown currency"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) upsertExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	stored, err := h.exchangeRateService.UpsertExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to save exchange rate")
		return
	}

	logger.Info("Exchange rate saved", slog.Int64("exchange_rate_id", stored.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(stored))
}

// bulkUpsertExchangeRates godoc
// @Summary Save a rate sheet
// @Description Writes every entry for one week and source in one transaction. Entries with unknown currencies are skipped and reported.
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   sheet body dto.BulkUpsertExchangeRatesRequest true "Rate sheet"
// @Success 201 {object} dto.BulkUpsertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /exchange-rates/bulk [post]
func (h *exchangeRateHandler) bulkUpsertExchangeRates(c *gin.Context) {
	var req dto.BulkUpsertExchangeRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.exchangeRateService.BulkUpsertExchangeRates(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to save exchange rates")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBulkUpsertResponse(result, len(req.Rates)))
}

// convert godoc
// @Summary Convert an amount
// @Description Multiplies by the resolved rate and rounds to the target currency's decimal places
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Amount and currencies"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown currency"
// @Failure 404 {object} map[string]interface{} "No applicable rate"
// @Security BearerAuth
// @Router /exchange-rates/convert [post]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.exchangeRateService.Convert(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
