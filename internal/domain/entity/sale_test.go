package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intertech/sales-automation-api/internal/domain"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
)

func validSale() *entity.Sale {
	return &entity.Sale{
		ID:                 "s-1",
		Campaign:           entity.CampaignHomeWarranty,
		DateOfSale:         time.Now(),
		CustomerName:       "John Customer",
		PrimaryPhone:       "555-123-4567",
		CampaignType:       "Home warranty 2",
		ConfirmationNumber: "CNF-100",
		PlanName:           "4 Year Plan",
		Address:            "1 Main St",
		Email:              "john@example.com",
		ActivationFee:      decimal.NewFromInt(50),
		PaymentMode:        "Credit Card",
		AgentID:            "agent-1",
	}
}

func TestSaleValidate_Valid(t *testing.T) {
	assert.NoError(t, validSale().Validate())
}

func TestSaleValidate_CollectsAllFailures(t *testing.T) {
	s := &entity.Sale{}
	err := s.Validate()
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("dateOfSale"))
	assert.True(t, verr.Has("customerName"))
	assert.True(t, verr.Has("primaryPhone"))
	assert.True(t, verr.Has("campaignType"))
	assert.True(t, verr.Has("planName"))
	assert.True(t, verr.Has("paymentMode"))
	assert.True(t, verr.Has("agent"))
	assert.Contains(t, verr.Error(), "Customer name is required")
}

func TestSaleValidate_Enumerations(t *testing.T) {
	s := validSale()
	s.CampaignType = "Roof warranty"
	s.PlanName = "99 Year Plan"
	s.PaymentMode = "Barter"

	var verr *domain.ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Contains(t, verr.Error(), "Invalid campaign type")
	assert.Contains(t, verr.Error(), "Invalid plan name")
	assert.Contains(t, verr.Error(), "Invalid payment mode")
}

func TestSaleValidate_Phone(t *testing.T) {
	s := validSale()
	s.PrimaryPhone = "123"
	var verr *domain.ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Contains(t, verr.Error(), "Invalid phone number")

	s = validSale()
	s.AlternativePhone = "abc"
	require.ErrorAs(t, s.Validate(), &verr)
	assert.True(t, verr.Has("alternativePhone"))

	// Alternative phone is optional when empty.
	s = validSale()
	s.AlternativePhone = ""
	assert.NoError(t, s.Validate())
}

func TestSaleValidate_NegativeActivationFee(t *testing.T) {
	s := validSale()
	s.ActivationFee = decimal.NewFromInt(-1)
	var verr *domain.ValidationError
	require.ErrorAs(t, s.Validate(), &verr)
	assert.Contains(t, verr.Error(), "Activation fee cannot be negative")
}

func TestLeadValidate(t *testing.T) {
	l := &entity.Lead{
		ID:               "l-1",
		DateOfSale:       time.Now(),
		CustomerName:     "John Customer",
		PrimaryPhone:     "555-123-4567",
		ExtendedWarranty: "yes",
		VehicleMileage:   "45000",
		CustomerAgreedForTransferToSeniorRepresentative: "no",
		Address:                 "1 Main St",
		Email:                   "john@example.com",
		VehicleMakeModelVariant: "Toyota Corolla LE",
		DialerName:              "VICIdial Dialer",
		AgentID:                 "agent-1",
	}
	assert.NoError(t, l.Validate())

	l.ExtendedWarranty = "maybe"
	l.DialerName = "Carrier Pigeon"
	var verr *domain.ValidationError
	require.ErrorAs(t, l.Validate(), &verr)
	assert.Contains(t, verr.Error(), "Extended warranty answer must be yes or no")
	assert.Contains(t, verr.Error(), "Invalid dialer name")
}
