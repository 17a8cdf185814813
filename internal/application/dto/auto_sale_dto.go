package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAutoSaleRequest payload for creating an auto-warranty sale.
type CreateAutoSaleRequest struct {
	DateOfSale            Date            `json:"dateOfSale"`
	CustomerName          string          `json:"customerName"`
	PrimaryPhone          string          `json:"primaryPhone"`
	ConfirmationNumber    string          `json:"confirmationNumber"`
	Address               string          `json:"address"`
	Email                 string          `json:"email"`
	AgentName             string          `json:"agentName"`
	ActivationFee         decimal.Decimal `json:"activationFee"`
	PaymentMode           string          `json:"paymentMode"`
	CampaignType          string          `json:"campaignType"`
	PlanName              string          `json:"planName"`
	BankName              string          `json:"bankName"`
	ChequeOrCardNumber    string          `json:"chequeOrCardNumber"`
	CVV                   string          `json:"cvv"`
	ExpiryDate            string          `json:"expiryDate"`
	CheckingAccountNumber string          `json:"checkingAccountNumber"`
	RoutingNumber         string          `json:"routingNumber"`
	AlternativePhone      string          `json:"alternativePhone"`
	VINNumber             string          `json:"vinNumber"`
	VehicleMileage        string          `json:"vehicleMileage"`
	VehicleModel          string          `json:"vehicleModel"`
	FronterName           string          `json:"fronterName"`
	CloserName            string          `json:"closerName"`
}

// UpdateAutoSaleRequest partial update; nil fields unchanged. Agent and
// createdAt are not updatable.
type UpdateAutoSaleRequest struct {
	DateOfSale            *Date            `json:"dateOfSale"`
	CustomerName          *string          `json:"customerName"`
	PrimaryPhone          *string          `json:"primaryPhone"`
	ConfirmationNumber    *string          `json:"confirmationNumber"`
	Address               *string          `json:"address"`
	Email                 *string          `json:"email"`
	AgentName             *string          `json:"agentName"`
	ActivationFee         *decimal.Decimal `json:"activationFee"`
	PaymentMode           *string          `json:"paymentMode"`
	CampaignType          *string          `json:"campaignType"`
	PlanName              *string          `json:"planName"`
	BankName              *string          `json:"bankName"`
	ChequeOrCardNumber    *string          `json:"chequeOrCardNumber"`
	CVV                   *string          `json:"cvv"`
	ExpiryDate            *string          `json:"expiryDate"`
	CheckingAccountNumber *string          `json:"checkingAccountNumber"`
	RoutingNumber         *string          `json:"routingNumber"`
	AlternativePhone      *string          `json:"alternativePhone"`
	VINNumber             *string          `json:"vinNumber"`
	VehicleMileage        *string          `json:"vehicleMileage"`
	VehicleModel          *string          `json:"vehicleModel"`
	FronterName           *string          `json:"fronterName"`
	CloserName            *string          `json:"closerName"`
}

// AutoSaleResponse auto-sale output with agent expanded and histories
// attached.
type AutoSaleResponse struct {
	ID                    string                `json:"id"`
	Campaign              string                `json:"campaign"`
	DateOfSale            time.Time             `json:"dateOfSale"`
	CustomerName          string                `json:"customerName"`
	PrimaryPhone          string                `json:"primaryPhone"`
	ConfirmationNumber    string                `json:"confirmationNumber"`
	Address               string                `json:"address"`
	Email                 string                `json:"email"`
	AgentName             string                `json:"agentName,omitempty"`
	ActivationFee         decimal.Decimal       `json:"activationFee"`
	PaymentMode           string                `json:"paymentMode"`
	CampaignType          string                `json:"campaignType"`
	PlanName              string                `json:"planName"`
	BankName              string                `json:"bankName,omitempty"`
	ChequeOrCardNumber    string                `json:"chequeOrCardNumber,omitempty"`
	CVV                   string                `json:"cvv,omitempty"`
	ExpiryDate            string                `json:"expiryDate,omitempty"`
	CheckingAccountNumber string                `json:"checkingAccountNumber,omitempty"`
	RoutingNumber         string                `json:"routingNumber,omitempty"`
	AlternativePhone      string                `json:"alternativePhone,omitempty"`
	VINNumber             string                `json:"vinNumber"`
	VehicleMileage        string                `json:"vehicleMileage"`
	VehicleModel          string                `json:"vehicleModel"`
	FronterName           string                `json:"fronterName"`
	CloserName            string                `json:"closerName"`
	Agent                 *AgentRef             `json:"agent,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
	History               []SaleHistoryResponse `json:"history,omitempty"`
}

// AutoSaleListResponse listing body.
type AutoSaleListResponse struct {
	Sales []AutoSaleResponse `json:"sales"`
	Count int                `json:"count"`
}

// CreateAutoSaleResponse creation body.
type CreateAutoSaleResponse struct {
	Msg  string           `json:"msg"`
	Sale AutoSaleResponse `json:"sale"`
}
