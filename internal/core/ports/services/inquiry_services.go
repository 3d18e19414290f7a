package services

import (
	"context"

	"github.com/SscSPs/freight_desk/internal/core/domain"
)

// InquiryExtractorSvc turns raw inquiry email text into a pre-filled draft.
type InquiryExtractorSvc interface {
	// ExtractInquiry runs the full pipeline. model may be empty to use the configured one.
	ExtractInquiry(ctx context.Context, emailContent, model string) (*domain.ParsedInquiry, error)

	// ParserStatus reports whether the model backend and the model are ready.
	ParserStatus(ctx context.Context) domain.ParserStatus
}
