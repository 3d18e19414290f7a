package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/freight_desk/internal/core/ports/services"
	"github.com/SscSPs/freight_desk/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const sampleInquiry = `From: budi@majubersama.co.id
Subject: RFQ FCL Jakarta - Busan

Dear team, please quote 2 x 40HC furniture from Jakarta to Busan, FOB, ready end of month.`

const sampleReply = "```json\n" + `{
  "customer_name": "PT Maju Bersama",
  "customer_email": "budi@majubersama.co.id",
  "incoterm": "FOB",
  "service_type": "FCL",
  "pol": "jakarta",
  "pod": "busan",
  "commodity": "furniture",
  "is_dg": false,
  "dg_class": null,
  "weight_kg": null,
  "volume_cbm": null,
  "container_type": "40HC",
  "container_qty": 2,
  "required_date": "end of month",
  "special_requirements": null
}` + "\n```"

// --- Test Suite ---
type InquiryExtractorTestSuite struct {
	suite.Suite
	ctx     context.Context
	llm     *MockLanguageModel
	matcher *MockMasterDataMatcher
	service portssvc.InquiryExtractorSvc
}

func (suite *InquiryExtractorTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.llm = new(MockLanguageModel)
	suite.matcher = new(MockMasterDataMatcher)
	suite.service = services.NewInquiryExtractorService(suite.llm, suite.matcher, services.InquiryExtractorConfig{
		Model:       "qwen2.5:7b",
		Timeout:     200 * time.Millisecond,
		Temperature: 0.1,
		MaxTokens:   1024,
	})
}

func (suite *InquiryExtractorTestSuite) assertStage(err error, stage domain.ExtractionStage, kind error) {
	suite.Require().Error(err)
	suite.ErrorIs(err, kind)
	var extractionErr *apperrors.ExtractionError
	suite.Require().ErrorAs(err, &extractionErr)
	suite.Equal(string(stage), extractionErr.Stage)
}

// --- Test Cases ---

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_Success() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"llama3:latest", "qwen2.5:7b"}, nil).Once()
	suite.llm.On("Generate", mock.Anything, "qwen2.5:7b", mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > len(sampleInquiry)
	}), gateways.GenerateOptions{Temperature: 0.1, MaxTokens: 1024}).Return(sampleReply, nil).Once()

	customer := &domain.Customer{CustomerID: 9, Name: "PT Maju Bersama"}
	jakarta := &domain.Port{PortID: 1, Code: "IDJKT"}
	busan := &domain.Port{PortID: 2, Code: "KRPUS"}
	suite.matcher.On("MatchCustomer", mock.Anything, "budi@majubersama.co.id", "PT Maju Bersama").Return(customer, nil).Once()
	suite.matcher.On("MatchPort", mock.Anything, "JAKARTA").Return(jakarta, nil).Once()
	suite.matcher.On("MatchPort", mock.Anything, "BUSAN").Return(busan, nil).Once()

	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "")

	suite.Require().NoError(err)
	suite.Equal("qwen2.5:7b", inquiry.Model)
	suite.Equal("FCL", *inquiry.ServiceType)
	suite.Equal("40HC", *inquiry.ContainerType)
	suite.Equal(2, *inquiry.ContainerQty)
	suite.Equal(int64(9), *inquiry.CustomerID)
	suite.Equal(int64(1), *inquiry.POLPortID)
	suite.Equal(int64(2), *inquiry.PODPortID)
	suite.Same(busan, inquiry.MatchedPOD)
	suite.Equal(domain.ExtractionConfidence, inquiry.Confidence)

	suite.llm.AssertExpectations(suite.T())
	suite.matcher.AssertExpectations(suite.T())
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_EmptyContent() {
	inquiry, err := suite.service.ExtractInquiry(suite.ctx, "   ", "")

	suite.Nil(inquiry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.llm.AssertNotCalled(suite.T(), "ListModels", mock.Anything)
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_BackendDown() {
	suite.llm.On("ListModels", mock.Anything).Return(nil, errors.New("dial tcp 127.0.0.1:11434: connection refused")).Once()

	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "")

	suite.Nil(inquiry)
	suite.assertStage(err, domain.StageAwaitingModel, apperrors.ErrModelUnavailable)
	suite.llm.AssertNotCalled(suite.T(), "Generate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_ModelNotInstalled() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"llama3:latest"}, nil).Once()

	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "mistral")

	suite.Nil(inquiry)
	suite.assertStage(err, domain.StageAwaitingModel, apperrors.ErrModelUnavailable)
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_LatestTagMatchesBareName() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"llama3:latest"}, nil).Once()
	suite.llm.On("Generate", mock.Anything, "llama3", mock.Anything, mock.Anything).Return(`{"pol": null}`, nil).Once()

	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "llama3")

	suite.Require().NoError(err)
	suite.Equal("llama3", inquiry.Model)
	suite.matcher.AssertNotCalled(suite.T(), "MatchPort", mock.Anything, mock.Anything)
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_Timeout() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"qwen2.5:7b"}, nil).Once()
	suite.llm.On("Generate", mock.Anything, "qwen2.5:7b", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return("", context.DeadlineExceeded).Once()

	start := time.Now()
	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "")

	suite.Nil(inquiry)
	suite.assertStage(err, domain.StageAwaitingModel, apperrors.ErrModelUnavailable)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.Less(time.Since(start), 2*time.Second)
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_UnparsableReply() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"qwen2.5:7b"}, nil).Once()
	suite.llm.On("Generate", mock.Anything, "qwen2.5:7b", mock.Anything, mock.Anything).
		Return("I'm sorry, I can't find shipment details in this email.", nil).Once()

	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "")

	suite.Nil(inquiry)
	suite.assertStage(err, domain.StageParsing, apperrors.ErrUnparsableResponse)
	suite.matcher.AssertNotCalled(suite.T(), "MatchCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_WrongFieldType() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"qwen2.5:7b"}, nil).Once()
	suite.llm.On("Generate", mock.Anything, "qwen2.5:7b", mock.Anything, mock.Anything).
		Return(`{"pol": ["jakarta", "surabaya"]}`, nil).Once()

	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "")

	suite.Nil(inquiry)
	suite.assertStage(err, domain.StageParsing, apperrors.ErrUnparsableResponse)
}

func (suite *InquiryExtractorTestSuite) TestExtractInquiry_MatchingErrorLeavesFieldUnmatched() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"qwen2.5:7b"}, nil).Once()
	suite.llm.On("Generate", mock.Anything, "qwen2.5:7b", mock.Anything, mock.Anything).Return(sampleReply, nil).Once()

	suite.matcher.On("MatchCustomer", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db timeout")).Once()
	suite.matcher.On("MatchPort", mock.Anything, "JAKARTA").Return(nil, errors.New("db timeout")).Once()
	suite.matcher.On("MatchPort", mock.Anything, "BUSAN").Return(nil, nil).Once()

	inquiry, err := suite.service.ExtractInquiry(suite.ctx, sampleInquiry, "")

	suite.Require().NoError(err)
	suite.Equal("JAKARTA", *inquiry.POL)
	suite.Nil(inquiry.POLPortID)
	suite.Nil(inquiry.PODPortID)
	suite.Nil(inquiry.CustomerID)
	suite.Nil(inquiry.MatchedCustomer)
}

func (suite *InquiryExtractorTestSuite) TestParserStatus() {
	suite.llm.On("ListModels", mock.Anything).Return([]string{"qwen2.5:7b", "llama3:latest"}, nil).Once()

	status := suite.service.ParserStatus(suite.ctx)

	suite.True(status.Available)
	suite.Equal("qwen2.5:7b", status.Model)
	suite.Len(status.Models, 2)
	suite.Empty(status.Error)
}

func (suite *InquiryExtractorTestSuite) TestParserStatus_Unavailable() {
	suite.llm.On("ListModels", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	status := suite.service.ParserStatus(suite.ctx)

	suite.False(status.Available)
	suite.NotNil(status.Models)
	suite.Contains(status.Error, "connection refused")
}

// --- Run Suite ---
func TestInquiryExtractorService(t *testing.T) {
	suite.Run(t, new(InquiryExtractorTestSuite))
}
