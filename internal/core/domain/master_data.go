package domain

// PortType classifies a port.
type PortType string

const (
	PortTypeSea  PortType = "SEA"
	PortTypeAir  PortType = "AIR"
	PortTypeBoth PortType = "BOTH"
)

// Port is a sea or air port from the master data.
type Port struct {
	PortID      int64    `json:"portID"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	CountryCode *string  `json:"countryCode"`
	PortType    PortType `json:"portType"`
	Region      *string  `json:"region"`
	IsActive    bool     `json:"isActive"`
}

// Customer is a customer from the master data.
type Customer struct {
	CustomerID    int64   `json:"customerID"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	ContactPerson *string `json:"contactPerson"`
	PaymentTerms  int     `json:"paymentTerms"`
	IsActive      bool    `json:"isActive"`
	Notes         *string `json:"notes"`
	AuditFields
}
