package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/freight_desk/internal/apperrors"
	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/SscSPs/freight_desk/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPort(t *testing.T) {
	ctx := context.Background()
	tanjungPriok := &domain.Port{PortID: 1, Code: "IDJKT", Name: "Tanjung Priok", City: strPtr("Jakarta"), PortType: domain.PortTypeSea}

	t.Run("exact code wins", func(t *testing.T) {
		ports := new(MockPortRepository)
		ports.On("FindPortByCode", ctx, "IDJKT").Return(tanjungPriok, nil).Once()

		port, err := services.NewMasterDataMatcher(ports, new(MockCustomerRepository)).MatchPort(ctx, " IDJKT ")

		require.NoError(t, err)
		assert.Equal(t, int64(1), port.PortID)
		ports.AssertNotCalled(t, "SearchPort", ctx, "IDJKT")
		ports.AssertExpectations(t)
	})

	t.Run("falls back to name or city", func(t *testing.T) {
		ports := new(MockPortRepository)
		ports.On("FindPortByCode", ctx, "JAKARTA").Return(nil, apperrors.ErrNotFound).Once()
		ports.On("SearchPort", ctx, "JAKARTA").Return(tanjungPriok, nil).Once()

		port, err := services.NewMasterDataMatcher(ports, new(MockCustomerRepository)).MatchPort(ctx, "JAKARTA")

		require.NoError(t, err)
		assert.Equal(t, "IDJKT", port.Code)
		ports.AssertExpectations(t)
	})

	t.Run("no match is nil without error", func(t *testing.T) {
		ports := new(MockPortRepository)
		ports.On("FindPortByCode", ctx, "ATLANTIS").Return(nil, apperrors.ErrNotFound).Once()
		ports.On("SearchPort", ctx, "ATLANTIS").Return(nil, apperrors.ErrNotFound).Once()

		port, err := services.NewMasterDataMatcher(ports, new(MockCustomerRepository)).MatchPort(ctx, "ATLANTIS")

		require.NoError(t, err)
		assert.Nil(t, port)
	})

	t.Run("blank name skips lookups", func(t *testing.T) {
		ports := new(MockPortRepository)

		port, err := services.NewMasterDataMatcher(ports, new(MockCustomerRepository)).MatchPort(ctx, "  ")

		require.NoError(t, err)
		assert.Nil(t, port)
		ports.AssertNotCalled(t, "FindPortByCode", ctx, "")
	})

	t.Run("storage error surfaces", func(t *testing.T) {
		ports := new(MockPortRepository)
		dbErr := errors.New("connection reset")
		ports.On("FindPortByCode", ctx, "SURABAYA").Return(nil, dbErr).Once()

		_, err := services.NewMasterDataMatcher(ports, new(MockCustomerRepository)).MatchPort(ctx, "SURABAYA")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestMatchCustomer(t *testing.T) {
	ctx := context.Background()
	acme := &domain.Customer{CustomerID: 42, Code: "ACME", Name: "PT Acme Indonesia", Email: strPtr("ops@acme.co.id")}

	t.Run("email first", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("FindCustomerByEmail", ctx, "ops@acme.co.id").Return(acme, nil).Once()

		customer, err := services.NewMasterDataMatcher(new(MockPortRepository), customers).MatchCustomer(ctx, "ops@acme.co.id", "Acme")

		require.NoError(t, err)
		assert.Equal(t, int64(42), customer.CustomerID)
		customers.AssertNotCalled(t, "SearchCustomerByName", ctx, "Acme")
	})

	t.Run("name when email is unknown", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("FindCustomerByEmail", ctx, "buyer@gmail.com").Return(nil, apperrors.ErrNotFound).Once()
		customers.On("SearchCustomerByName", ctx, "Acme").Return(acme, nil).Once()

		customer, err := services.NewMasterDataMatcher(new(MockPortRepository), customers).MatchCustomer(ctx, "buyer@gmail.com", "Acme")

		require.NoError(t, err)
		assert.Equal(t, "ACME", customer.Code)
		customers.AssertExpectations(t)
	})

	t.Run("nothing to match on", func(t *testing.T) {
		customers := new(MockCustomerRepository)

		customer, err := services.NewMasterDataMatcher(new(MockPortRepository), customers).MatchCustomer(ctx, "", "")

		require.NoError(t, err)
		assert.Nil(t, customer)
	})

	t.Run("unknown name", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("SearchCustomerByName", ctx, "Nobody Ltd").Return(nil, apperrors.ErrNotFound).Once()

		customer, err := services.NewMasterDataMatcher(new(MockPortRepository), customers).MatchCustomer(ctx, "", "Nobody Ltd")

		require.NoError(t, err)
		assert.Nil(t, customer)
	})
}
