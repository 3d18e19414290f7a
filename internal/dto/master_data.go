package dto

import "github.com/SscSPs/freight_desk/internal/core/domain"

// CreatePortRequest defines the data needed to create a port.
type CreatePortRequest struct {
	Code        string          `json:"code" binding:"required,max=10"`
	Name        string          `json:"name" binding:"required"`
	City        *string         `json:"city"`
	Country     *string         `json:"country"`
	CountryCode *string         `json:"countryCode" binding:"omitempty,len=2"`
	PortType    domain.PortType `json:"portType" binding:"required,oneof=SEA AIR BOTH"`
	Region      *string         `json:"region"`
}

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Code          string  `json:"code" binding:"required,max=20"`
	Name          string  `json:"name" binding:"required"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Country       *string `json:"country"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	ContactPerson *string `json:"contactPerson"`
	PaymentTerms  *int    `json:"paymentTerms" binding:"omitempty,min=0"`
	Notes         *string `json:"notes"`
}
