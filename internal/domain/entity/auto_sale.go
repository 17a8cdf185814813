package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/intertech/sales-automation-api/internal/domain"
)

// Auto-warranty campaign enumerations.
const CampaignAutoWarranty = "Auto Warranty"

var (
	AutoSaleCampaignTypes = []string{"ASMB Auto Care", "Auto 2", "Inline auto service"}
	AutoSalePlanNames     = []string{"Power Train Plan", "Platinum Plan"}
)

// AutoSale is an auto-warranty sale record. Shares the customer/payment
// shape of Sale and adds vehicle and fronter/closer details.
type AutoSale struct {
	ID                    string
	Campaign              string
	DateOfSale            time.Time
	CustomerName          string
	PrimaryPhone          string
	ConfirmationNumber    string
	Address               string
	Email                 string
	AgentName             string
	ActivationFee         decimal.Decimal
	PaymentMode           string
	CampaignType          string
	PlanName              string
	BankName              string
	ChequeOrCardNumber    string
	CVV                   string
	ExpiryDate            string
	CheckingAccountNumber string
	RoutingNumber         string
	AlternativePhone      string
	VINNumber             string
	VehicleMileage        string
	VehicleModel          string
	FronterName           string
	CloserName            string
	AgentID               string
	Agent                 *UserRef
	CreatedAt             time.Time

	Histories []*SaleHistory
}

// Validate checks every required field and enumeration, collecting all
// failures into one ValidationError.
func (s *AutoSale) Validate() error {
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
	if s.ConfirmationNumber == "" {
		v.Add("confirmationNumber", "Confirmation number is required")
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
	switch {
	case s.CampaignType == "":
		v.Add("campaignType", "Campaign type is required")
	case !contains(AutoSaleCampaignTypes, s.CampaignType):
		v.Add("campaignType", "Invalid campaign type")
	}
	switch {
	case s.PlanName == "":
		v.Add("planName", "Plan name is required")
	case !contains(AutoSalePlanNames, s.PlanName):
		v.Add("planName", "Invalid plan name")
	}
	if s.AlternativePhone != "" && !IsValidPhone(s.AlternativePhone) {
		v.Add("alternativePhone", "Invalid phone number")
	}
	if s.VINNumber == "" {
		v.Add("vinNumber", "VIN number is required")
	}
	if s.VehicleMileage == "" {
		v.Add("vehicleMileage", "Vehicle mileage is required")
	}
	if s.VehicleModel == "" {
		v.Add("vehicleModel", "Vehicle model is required")
	}
	if s.FronterName == "" {
		v.Add("fronterName", "Fronter name is required")
	}
	if s.CloserName == "" {
		v.Add("closerName", "Closer name is required")
	}
	if s.AgentID == "" {
		v.Add("agent", "Agent is required")
	}
	return v.OrNil()
}
