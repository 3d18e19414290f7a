package domain

import "github.com/shopspring/decimal"

// ServiceType values produced by normalization.
const (
	ServiceTypeFCL = "FCL"
	ServiceTypeLCL = "LCL"
	ServiceTypeAir = "AIR"
)

// ExtractionConfidence is attached to every model-parsed inquiry. It is a
// constant, not derived from the response.
const ExtractionConfidence = 0.85

// ParsedInquiry is the normalized draft produced from an inquiry email.
// Nothing here is persisted; the caller confirms and promotes it.
type ParsedInquiry struct {
	CustomerName        *string          `json:"customerName"`
	CustomerEmail       *string          `json:"customerEmail"`
	CustomerID          *int64           `json:"customerID"`
	Incoterm            *string          `json:"incoterm"`
	ServiceType         *string          `json:"serviceType"`
	POL                 *string          `json:"pol"`
	POLPortID           *int64           `json:"polPortID"`
	POD                 *string          `json:"pod"`
	PODPortID           *int64           `json:"podPortID"`
	Commodity           *string          `json:"commodity"`
	IsDG                bool             `json:"isDG"`
	DGClass             *string          `json:"dgClass"`
	WeightKg            *decimal.Decimal `json:"weightKg"`
	VolumeCbm           *decimal.Decimal `json:"volumeCbm"`
	ContainerType       *string          `json:"containerType"`
	ContainerQty        *int             `json:"containerQty"`
	RequiredDate        *string          `json:"requiredDate"`
	SpecialRequirements *string          `json:"specialRequirements"`
	Confidence          float64          `json:"confidence"`
	Model               string           `json:"model"`

	MatchedCustomer *Customer `json:"matchedCustomer,omitempty"`
	MatchedPOL      *Port     `json:"matchedPol,omitempty"`
	MatchedPOD      *Port     `json:"matchedPod,omitempty"`
}

// ParserStatus reports whether the model backend is ready for extraction.
type ParserStatus struct {
	Available bool     `json:"available"`
	Model     string   `json:"model"`
	Models    []string `json:"models"`
	Error     string   `json:"error,omitempty"`
}

// ExtractionStage names a step of the inquiry extraction pipeline.
type ExtractionStage string

const (
	StageAwaitingModel ExtractionStage = "AwaitingModel"
	StageParsing       ExtractionStage = "Parsing"
	StageNormalizing   ExtractionStage = "Normalizing"
	StageMatching      ExtractionStage = "Matching"
	StageDone          ExtractionStage = "Done"
)
