package entity

import (
	"time"

	"github.com/intertech/sales-automation-api/internal/domain"
)

// Lead enumerations.
var (
	YesNo       = []string{"no", "yes"}
	DialerNames = []string{"VICIdial Dialer", "Omni Dialer"}
)

// Lead is an auto-warranty lead: customer and vehicle info captured by an
// agent before a sale closes, including transfer-consent answers.
type Lead struct {
	ID                   string
	DateOfSale           time.Time
	CustomerName         string
	PrimaryPhone         string
	ExtendedWarranty     string // yes | no
	VehicleMileage       string
	CustomerAgreedForTransferToSeniorRepresentative string // yes | no
	Address                 string
	Email                   string
	AgentName               string
	VehicleMakeModelVariant string
	DialerName              string
	AgentID                 string
	Agent                   *UserRef
	CreatedAt               time.Time

	Histories []*SaleHistory
}

// Validate checks every required field and enumeration, collecting all
// failures into one ValidationError.
func (l *Lead) Validate() error {
	v := &domain.ValidationError{}
	if l.DateOfSale.IsZero() {
		v.Add("dateOfSale", "Date of sale is required")
	}
	if l.CustomerName == "" {
		v.Add("customerName", "Customer name is required")
	}
	switch {
	case l.PrimaryPhone == "":
		v.Add("primaryPhone", "Primary phone number is required")
	case !IsValidPhone(l.PrimaryPhone):
		v.Add("primaryPhone", "Invalid phone number")
	}
	switch {
	case l.ExtendedWarranty == "":
		v.Add("extendedWarranty", "Extended warranty answer is required")
	case !contains(YesNo, l.ExtendedWarranty):
		v.Add("extendedWarranty", "Extended warranty answer must be yes or no")
	}
	if l.VehicleMileage == "" {
		v.Add("vehicleMileage", "Vehicle Mileage is required")
	}
	switch {
	case l.CustomerAgreedForTransferToSeniorRepresentative == "":
		v.Add("customerAgreedForTransferToSeniorRepresentative", "Customer consent for call transfer is required")
	case !contains(YesNo, l.CustomerAgreedForTransferToSeniorRepresentative):
		v.Add("customerAgreedForTransferToSeniorRepresentative", "Customer consent must be yes or no")
	}
	if l.Address == "" {
		v.Add("address", "Address is required")
	}
	switch {
	case l.Email == "":
		v.Add("email", "Email is required")
	case !IsValidEmail(l.Email):
		v.Add("email", "Invalid email address")
	}
	if l.VehicleMakeModelVariant == "" {
		v.Add("vehicleMakeModelVariant", "Vehicle make & model variant is required")
	}
	switch {
	case l.DialerName == "":
		v.Add("dialerName", "Dialer name is required")
	case !contains(DialerNames, l.DialerName):
		v.Add("dialerName", "Invalid dialer name")
	}
	if l.AgentID == "" {
		v.Add("agent", "Agent is required")
	}
	return v.OrNil()
}
