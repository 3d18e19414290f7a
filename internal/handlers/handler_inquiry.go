package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/dto"
	"github.com/SscSPs/freight_desk/internal/middleware"
	"github.com/SscSPs/freight_desk/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

type inquiryHandler struct {
	inquiryService portssvc.InquiryExtractorSvc
	posthog        *utils.PosthogClientWrapper
}

// registerInquiryRoutes registers the extractor routes. The parse route runs a
// model call per request, so it gets its own limiter when one is given.
func registerInquiryRoutes(rg *gin.RouterGroup, inquiryService portssvc.InquiryExtractorSvc, parseLimiter *limiter.Limiter, posthog *utils.PosthogClientWrapper) {
	h := &inquiryHandler{inquiryService: inquiryService, posthog: posthog}

	inquiries := rg.Group("/inquiries")
	{
		parse := []gin.HandlerFunc{h.parseInquiry}
		if parseLimiter != nil {
			parse = append([]gin.HandlerFunc{middleware.RateLimit(parseLimiter)}, parse...)
		}
		inquiries.POST("/parse", parse...)
		inquiries.GET("/parser/status", h.parserStatus)
	}
}

// parseInquiry godoc
// @Summary Extract a draft inquiry from an email
// @Description Sends the email text to the language model and returns normalized fields matched against master data. Nothing is saved.
// @Tags inquiries
// @Accept  json
// @Produce  json
// @Param   email body dto.ParseInquiryRequest true "Email subject and body"
// @Success 200 {object} domain.ParsedInquiry
// @Failure 400 {object} map[string]string "Empty email content"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Model reply could not be read"
// @Failure 503 {object} map[string]string "Model backend unavailable"
// @Security BearerAuth
// @Router /inquiries/parse [post]
func (h *inquiryHandler) parseInquiry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	inquiry, err := h.inquiryService.ExtractInquiry(c.Request.Context(), req.EmailContent, req.Model)
	if err != nil {
		var extractionErr *apperrors.ExtractionError
		if errors.As(err, &extractionErr) {
			middleware.PosthogEvent(c, h.posthog, "inquiry_extraction_failed", map[string]any{
				"stage": extractionErr.Stage,
				"model": req.Model,
			})
		}
		respondWithError(c, err, "Failed to parse inquiry")
		return
	}

	logger.Info("Inquiry extracted",
		slog.String("model", inquiry.Model),
		slog.Bool("customer_matched", inquiry.CustomerID != nil),
		slog.Bool("pol_matched", inquiry.POLPortID != nil),
		slog.Bool("pod_matched", inquiry.PODPortID != nil))
	c.JSON(http.StatusOK, inquiry)
}

// parserStatus godoc
// @Summary Language model readiness
// @Tags inquiries
// @Produce  json
// @Success 200 {object} domain.ParserStatus
// @Security BearerAuth
// @Router /inquiries/parser/status [get]
func (h *inquiryHandler) parserStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.inquiryService.ParserStatus(c.Request.Context()))
}
