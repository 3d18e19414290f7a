package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
)

const (
	defaultInquiryModel   = "qwen2.5:7b"
	defaultInquiryTimeout = 90 * time.Second
)

// InquiryExtractorConfig holds the model tuning knobs.
type InquiryExtractorConfig struct {
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type inquiryExtractorService struct {
	BaseService
	llm     gateways.LanguageModel
	matcher portssvc.MasterDataMatcher
	cfg     InquiryExtractorConfig
}

// NewInquiryExtractorService creates the email-to-inquiry extractor.
func NewInquiryExtractorService(llm gateways.LanguageModel, matcher portssvc.MasterDataMatcher, cfg InquiryExtractorConfig) portssvc.InquiryExtractorSvc {
	if cfg.Model == "" {
		cfg.Model = defaultInquiryModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultInquiryTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	return &inquiryExtractorService{llm: llm, matcher: matcher, cfg: cfg}
}

var _ portssvc.InquiryExtractorSvc = (*inquiryExtractorService)(nil)

// modelInstalled accepts "name" for "name:latest" the way the backend does.
func modelInstalled(installed []string, model string) bool {
	for _, name := range installed {
		if name == model || name == model+":latest" || strings.TrimSuffix(name, ":latest") == model {
			return true
		}
	}
	return false
}

func (s *inquiryExtractorService) fail(ctx context.Context, stage domain.ExtractionStage, kind, err error) error {
	extractionErr := &apperrors.ExtractionError{Stage: string(stage), Kind: kind, Err: err}
	s.LogWarn(ctx, "Inquiry extraction failed",
		slog.String("stage", string(stage)),
		slog.String("error", extractionErr.Error()))
	return extractionErr
}

func (s *inquiryExtractorService) enter(ctx context.Context, stage domain.ExtractionStage) {
	s.LogDebug(ctx, "Inquiry extraction stage", slog.String("stage", string(stage)))
}

// ExtractInquiry runs AwaitingModel, Parsing, Normalizing and Matching in
// order. Any failure before Matching returns no inquiry at all; a matching
// failure only leaves that field unmatched.
func (s *inquiryExtractorService) ExtractInquiry(ctx context.Context, emailContent, model string) (*domain.ParsedInquiry, error) {
	if strings.TrimSpace(emailContent) == "" {
		return nil, fmt.Errorf("%w: email content is required", apperrors.ErrValidation)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = s.cfg.Model
	}

	s.enter(ctx, domain.StageAwaitingModel)
	reply, err := s.generate(ctx, model, buildInquiryPrompt(emailContent))
	if err != nil {
		return nil, s.fail(ctx, domain.StageAwaitingModel, apperrors.ErrModelUnavailable, err)
	}

	s.enter(ctx, domain.StageParsing)
	fields, err := parseModelResponse(reply)
	if err != nil {
		return nil, s.fail(ctx, domain.StageParsing, apperrors.ErrUnparsableResponse, err)
	}

	s.enter(ctx, domain.StageNormalizing)
	inquiry := normalizeInquiry(fields)
	inquiry.Model = model

	s.enter(ctx, domain.StageMatching)
	s.match(ctx, inquiry)

	s.enter(ctx, domain.StageDone)
	return inquiry, nil
}

// generate checks readiness and calls the model under one deadline.
func (s *inquiryExtractorService) generate(ctx context.Context, model, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	installed, err := s.llm.ListModels(ctx)
	if err != nil {
		return "", err
	}
	if !modelInstalled(installed, model) {
		return "", fmt.Errorf("model %q is not installed", model)
	}

	start := time.Now()
	reply, err := s.llm.Generate(ctx, model, prompt, gateways.GenerateOptions{
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("model call timed out after %s: %w", s.cfg.Timeout, err)
		}
		return "", err
	}
	s.LogDebug(ctx, "Model replied",
		slog.String("model", model),
		slog.Duration("latency", time.Since(start)),
		slog.Int("reply_length", len(reply)))
	return reply, nil
}

func (s *inquiryExtractorService) match(ctx context.Context, inquiry *domain.ParsedInquiry) {
	if s.matcher == nil {
		return
	}

	email, name := "", ""
	if inquiry.CustomerEmail != nil {
		email = *inquiry.CustomerEmail
	}
	if inquiry.CustomerName != nil {
		name = *inquiry.CustomerName
	}
	if email != "" || name != "" {
		customer, err := s.matcher.MatchCustomer(ctx, email, name)
		if err != nil {
			s.LogError(ctx, err, "Customer matching failed")
		} else if customer != nil {
			inquiry.MatchedCustomer = customer
			inquiry.CustomerID = &customer.CustomerID
		}
	}

	if inquiry.POL != nil {
		if port := s.matchPort(ctx, *inquiry.POL); port != nil {
			inquiry.MatchedPOL = port
			inquiry.POLPortID = &port.PortID
		}
	}
	if inquiry.POD != nil {
		if port := s.matchPort(ctx, *inquiry.POD); port != nil {
			inquiry.MatchedPOD = port
			inquiry.PODPortID = &port.PortID
		}
	}
}

func (s *inquiryExtractorService) matchPort(ctx context.Context, name string) *domain.Port {
	port, err := s.matcher.MatchPort(ctx, name)
	if err != nil {
		s.LogError(ctx, err, "Port matching failed", slog.String("port", name))
		return nil
	}
	return port
}

// ParserStatus reports whether the backend answers and has the configured model.
func (s *inquiryExtractorService) ParserStatus(ctx context.Context) domain.ParserStatus {
	status := domain.ParserStatus{Model: s.cfg.Model, Models: []string{}}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	installed, err := s.llm.ListModels(ctx)
	if err != nil {
		status.Error = fmt.Sprintf("%v: %v", apperrors.ErrModelUnavailable, err)
		return status
	}
	status.Models = installed
	status.Available = modelInstalled(installed, s.cfg.Model)
	if !status.Available {
		status.Error = fmt.Sprintf("model %q is not installed", s.cfg.Model)
	}
	return status
}
