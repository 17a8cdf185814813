package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgentRef agent identity attached to record listings.
type AgentRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CreateSaleRequest payload for creating a home-warranty sale. Any agent
// field in the raw payload is ignored: ownership is always the caller.
type CreateSaleRequest struct {
	DateOfSale            Date            `json:"dateOfSale"`
	CustomerName          string          `json:"customerName"`
	PrimaryPhone          string          `json:"primaryPhone"`
	CampaignType          string          `json:"campaignType"`
	ConfirmationNumber    string          `json:"confirmationNumber"`
	PlanName              string          `json:"planName"`
	Address               string          `json:"address"`
	Email                 string          `json:"email"`
	AgentName             string          `json:"agentName"`
	ActivationFee         decimal.Decimal `json:"activationFee"`
	PaymentMode           string          `json:"paymentMode"`
	BankName              string          `json:"bankName"`
	ChequeOrCardNumber    string          `json:"chequeOrCardNumber"`
	CVV                   string          `json:"cvv"`
	ExpiryDate            string          `json:"expiryDate"`
	MerchantName          string          `json:"merchantName"`
	CheckingAccountNumber string          `json:"checkingAccountNumber"`
	RoutingNumber         string          `json:"routingNumber"`
	AlternativePhone      string          `json:"alternativePhone"`
}

// UpdateSaleRequest partial update. Nil fields are left unchanged. Agent
// and createdAt are not updatable and deliberately have no counterpart
// here.
type UpdateSaleRequest struct {
	DateOfSale            *Date            `json:"dateOfSale"`
	CustomerName          *string          `json:"customerName"`
	PrimaryPhone          *string          `json:"primaryPhone"`
	CampaignType          *string          `json:"campaignType"`
	ConfirmationNumber    *string          `json:"confirmationNumber"`
	PlanName              *string          `json:"planName"`
	Address               *string          `json:"address"`
	Email                 *string          `json:"email"`
	AgentName             *string          `json:"agentName"`
	ActivationFee         *decimal.Decimal `json:"activationFee"`
	PaymentMode           *string          `json:"paymentMode"`
	BankName              *string          `json:"bankName"`
	ChequeOrCardNumber    *string          `json:"chequeOrCardNumber"`
	CVV                   *string          `json:"cvv"`
	ExpiryDate            *string          `json:"expiryDate"`
	MerchantName          *string          `json:"merchantName"`
	CheckingAccountNumber *string          `json:"checkingAccountNumber"`
	RoutingNumber         *string          `json:"routingNumber"`
	AlternativePhone      *string          `json:"alternativePhone"`
}

// SaleResponse sale record output with the agent expanded and any history
// documents attached.
type SaleResponse struct {
	ID                    string                `json:"id"`
	Campaign              string                `json:"campaign"`
	DateOfSale            time.Time             `json:"dateOfSale"`
	CustomerName          string                `json:"customerName"`
	PrimaryPhone          string                `json:"primaryPhone"`
	CampaignType          string                `json:"campaignType"`
	ConfirmationNumber    string                `json:"confirmationNumber"`
	PlanName              string                `json:"planName"`
	Address               string                `json:"address"`
	Email                 string                `json:"email"`
	AgentName             string                `json:"agentName,omitempty"`
	ActivationFee         decimal.Decimal       `json:"activationFee"`
	PaymentMode           string                `json:"paymentMode"`
	BankName              string                `json:"bankName,omitempty"`
	ChequeOrCardNumber    string                `json:"chequeOrCardNumber,omitempty"`
	CVV                   string                `json:"cvv,omitempty"`
	ExpiryDate            string                `json:"expiryDate,omitempty"`
	MerchantName          string                `json:"merchantName,omitempty"`
	CheckingAccountNumber string                `json:"checkingAccountNumber,omitempty"`
	RoutingNumber         string                `json:"routingNumber,omitempty"`
	AlternativePhone      string                `json:"alternativePhone,omitempty"`
	Agent                 *AgentRef             `json:"agent,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
	History               []SaleHistoryResponse `json:"history,omitempty"`
}

// SaleListResponse listing body.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Count int            `json:"count"`
}

// CreateSaleResponse creation body.
type CreateSaleResponse struct {
	Msg  string       `json:"msg"`
	Sale SaleResponse `json:"sale"`
}

// AgentSalesCountsResponse the caller's own Sale + AutoSale counts.
type AgentSalesCountsResponse struct {
	TodaySales     int `json:"todaySales"`
	LastWeekSales  int `json:"lastWeekSales"`
	LastMonthSales int `json:"lastMonthSales"`
}
