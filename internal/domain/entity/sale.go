package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/intertech/sales-automation-api/internal/domain"
)

// Home-warranty campaign enumerations.
const CampaignHomeWarranty = "Home Warranty"

var (
	SaleCampaignTypes = []string{"Home warranty 2", "Inline home service"}
	SalePlanNames     = []string{"4 Year Plan"}
	PaymentModes      = []string{"Credit Card", "Cheque Book"}
)

// Sale is a home-warranty sale record owned by the agent that created it.
// Agent is populated on listings; AgentID is the owning reference and is
// immutable after creation.
type Sale struct {
	ID                    string
	Campaign              string
	DateOfSale            time.Time
	CustomerName          string
	PrimaryPhone          string
	CampaignType          string
	ConfirmationNumber    string
	PlanName              string
	Address               string
	Email                 string
	AgentName             string
	ActivationFee         decimal.Decimal
	PaymentMode           string
	BankName              string
	ChequeOrCardNumber    string
	CVV                   string
	ExpiryDate            string
	MerchantName          string
	CheckingAccountNumber string
	RoutingNumber         string
	AlternativePhone      string
	AgentID               string
	Agent                 *UserRef
	CreatedAt             time.Time

	Histories []*SaleHistory
}

// Validate checks every required field and enumeration, collecting all
// failures into one ValidationError.
func (s *Sale) Validate() error {
	v := &domain.ValidationError{}
	if s.DateOfSale.IsZero() {
		v.Add("dateOfSale", "Date of sale is required")
	}
	if s.CustomerName == "" {
		v.Add("customerName", "Customer name is required")
	}
	switch {
	case s.PrimaryPhone == "":
		v.Add("primaryPhone", "Primary phone number is required")
	case !IsValidPhone(s.PrimaryPhone):
		v.Add("primaryPhone", "Invalid phone number")
	}
	switch {
	case s.CampaignType == "":
		v.Add("campaignType", "Campaign type is required")
	case !contains(SaleCampaignTypes, s.CampaignType):
		v.Add("campaignType", "Invalid campaign type")
	}
	if s.ConfirmationNumber == "" {
		v.Add("confirmationNumber", "Confirmation number is required")
	}
	switch {
	case s.PlanName == "":
		v.Add("planName", "Plan name is required")
	case !contains(SalePlanNames, s.PlanName):
		v.Add("planName", "Invalid plan name")
	}
	if s.Address == "" {
		v.Add("address", "Address is required")
	}
	switch {
	case s.Email == "":
		v.Add("email", "Email is required")
	case !IsValidEmail(s.Email):
		v.Add("email", "Invalid email address")
	}
	if s.ActivationFee.IsNegative() {
		v.Add("activationFee", "Activation fee cannot be negative")
	}
	switch {
	case s.PaymentMode == "":
		v.Add("paymentMode", "Payment mode is required")
	case !contains(PaymentModes, s.PaymentMode):
		v.Add("paymentMode", "Invalid payment mode")
	}
	if s.AlternativePhone != "" && !IsValidPhone(s.AlternativePhone) {
		v.Add("alternativePhone", "Invalid phone number")
	}
	if s.AgentID == "" {
		v.Add("agent", "Agent is required")
	}
	return v.OrNil()
}
