package services

import (
	"github.com/SscSPs/freight_desk/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/freight_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, llm gateways.LanguageModel) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(
		repos.ExchangeRateRepo,
		repos.CurrencyRepo,
		WithSourcePriority(cfg.SourcePriority),
		WithBusinessLocation(cfg.BusinessLocation),
	)
	container.Port = NewPortService(repos.PortRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)

	matcher := NewMasterDataMatcher(repos.PortRepo, repos.CustomerRepo)
	container.Inquiry = NewInquiryExtractorService(llm, matcher, InquiryExtractorConfig{
		Model:       cfg.LLMModel,
		Timeout:     cfg.LLMTimeout,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
	})

	return container
}
