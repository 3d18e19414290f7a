package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownCurrency):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrRateNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, apperrors.ErrUnparsableResponse):
		return http.StatusBadGateway
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes the error body for err. Server-side failures are
// logged in full and replaced by fallback in the response.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	body := gin.H{"error": err.Error()}

	var notFound *apperrors.RateNotFoundError
	if errors.As(err, &notFound) {
		body["from"] = notFound.From
		body["to"] = notFound.To
		body["date"] = notFound.AsOf.Format("2006-01-02")
		if notFound.Source != "" {
			body["source"] = notFound.Source
		}
		body["tried"] = notFound.Tried
	}

	var extractionErr *apperrors.ExtractionError
	if errors.As(err, &extractionErr) {
		body["stage"] = extractionErr.Stage
	}

	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error(fallback, slog.String("error", err.Error()))
		if status == http.StatusInternalServerError {
			body["error"] = fallback
		}
	} else {
		logger.Warn(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

// bindError answers a request whose body or query could not be bound.
func bindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// requireUserID reads the authenticated user id, answering 401 when it is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
