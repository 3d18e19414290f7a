package mapping

import (
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/models"
)

// ToDomainPort converts a model Port to a domain Port
func ToDomainPort(m models.Port) domain.Port {
	return domain.Port{
		PortID:      m.PortID,
		Code:        m.Code,
		Name:        m.Name,
		City:        stringPtr(m.City),
		Country:     stringPtr(m.Country),
		CountryCode: stringPtr(m.CountryCode),
		PortType:    domain.PortType(m.PortType),
		Region:      stringPtr(m.Region),
		IsActive:    m.IsActive,
	}
}

// ToModelPort converts a domain Port to a model Port
func ToModelPort(d domain.Port) models.Port {
	return models.Port{
		PortID:      d.PortID,
		Code:        d.Code,
		Name:        d.Name,
		City:        nullString(d.City),
		Country:     nullString(d.Country),
		CountryCode: nullString(d.CountryCode),
		PortType:    string(d.PortType),
		Region:      nullString(d.Region),
		IsActive:    d.IsActive,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:    m.CustomerID,
		Code:          m.Code,
		Name:          m.Name,
		Address:       stringPtr(m.Address),
		City:          stringPtr(m.City),
		Country:       stringPtr(m.Country),
		Phone:         stringPtr(m.Phone),
		Email:         stringPtr(m.Email),
		ContactPerson: stringPtr(m.ContactPerson),
		PaymentTerms:  m.PaymentTerms,
		IsActive:      m.IsActive,
		Notes:         stringPtr(m.Notes),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:    d.CustomerID,
		Code:          d.Code,
		Name:          d.Name,
		Address:       nullString(d.Address),
		City:          nullString(d.City),
		Country:       nullString(d.Country),
		Phone:         nullString(d.Phone),
		Email:         nullString(d.Email),
		ContactPerson: nullString(d.ContactPerson),
		PaymentTerms:  d.PaymentTerms,
		IsActive:      d.IsActive,
		Notes:         nullString(d.Notes),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}
