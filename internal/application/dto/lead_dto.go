package dto

import "time"

// CreateLeadRequest payload for creating an auto-warranty lead.
type CreateLeadRequest struct {
	DateOfSale       Date   `json:"dateOfSale"`
	CustomerName     string `json:"customerName"`
	PrimaryPhone     string `json:"primaryPhone"`
	ExtendedWarranty string `json:"extendedWarranty"`
	VehicleMileage   string `json:"vehicleMileage"`
	CustomerAgreedForTransferToSeniorRepresentative string `json:"customerAgreedForTransferToSeniorRepresentative"`
	Address                 string `json:"address"`
	Email                   string `json:"email"`
	AgentName               string `json:"agentName"`
	VehicleMakeModelVariant string `json:"vehicleMakeModelVariant"`
	DialerName              string `json:"dialerName"`
}

// UpdateLeadRequest partial update; nil fields unchanged. Agent and
// createdAt are not updatable.
type UpdateLeadRequest struct {
	DateOfSale       *Date   `json:"dateOfSale"`
	CustomerName     *string `json:"customerName"`
	PrimaryPhone     *string `json:"primaryPhone"`
	ExtendedWarranty *string `json:"extendedWarranty"`
	VehicleMileage   *string `json:"vehicleMileage"`
	CustomerAgreedForTransferToSeniorRepresentative *string `json:"customerAgreedForTransferToSeniorRepresentative"`
	Address                 *string `json:"address"`
	Email                   *string `json:"email"`
	AgentName               *string `json:"agentName"`
	VehicleMakeModelVariant *string `json:"vehicleMakeModelVariant"`
	DialerName              *string `json:"dialerName"`
}

// LeadResponse lead output with agent expanded and histories attached.
type LeadResponse struct {
	ID               string    `json:"id"`
	DateOfSale       time.Time `json:"dateOfSale"`
	CustomerName     string    `json:"customerName"`
	PrimaryPhone     string    `json:"primaryPhone"`
	ExtendedWarranty string    `json:"extendedWarranty"`
	VehicleMileage   string    `json:"vehicleMileage"`
	CustomerAgreedForTransferToSeniorRepresentative string `json:"customerAgreedForTransferToSeniorRepresentative"`
	Address                 string                `json:"address"`
	Email                   string                `json:"email"`
	AgentName               string                `json:"agentName,omitempty"`
	VehicleMakeModelVariant string                `json:"vehicleMakeModelVariant"`
	DialerName              string                `json:"dialerName"`
	Agent                   *AgentRef             `json:"agent,omitempty"`
	CreatedAt               time.Time             `json:"createdAt"`
	History                 []SaleHistoryResponse `json:"history,omitempty"`
}

// LeadListResponse listing body.
type LeadListResponse struct {
	Leads []LeadResponse `json:"leads"`
	Count int            `json:"count"`
}

// CreateLeadResponse creation body.
type CreateLeadResponse struct {
	Msg  string       `json:"msg"`
	Lead LeadResponse `json:"lead"`
}
