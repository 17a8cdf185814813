package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `s.id, s.campaign, s.date_of_sale, s.customer_name, s.primary_phone, s.campaign_type,
	s.confirmation_number, s.plan_name, s.address, s.email, s.agent_name, s.activation_fee, s.payment_mode,
	s.bank_name, s.cheque_or_card_number, s.cvv, s.expiry_date, s.merchant_name, s.checking_account_number,
	s.routing_number, s.alternative_phone, s.agent_id, s.created_at`

// SaleRepo PostgreSQL implementation of the SaleRepository port (usable
// with pool or tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the persistence adapter for home-warranty sales.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persists a new sale.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, campaign, date_of_sale, customer_name, primary_phone, campaign_type,
			confirmation_number, plan_name, address, email, agent_name, activation_fee, payment_mode,
			bank_name, cheque_or_card_number, cvv, expiry_date, merchant_name, checking_account_number,
			routing_number, alternative_phone, agent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Campaign, sale.DateOfSale, sale.CustomerName, sale.PrimaryPhone, sale.CampaignType,
		sale.ConfirmationNumber, sale.PlanName, sale.Address, sale.Email, sale.AgentName, sale.ActivationFee,
		sale.PaymentMode, sale.BankName, sale.ChequeOrCardNumber, sale.CVV, sale.ExpiryDate, sale.MerchantName,
		sale.CheckingAccountNumber, sale.RoutingNumber, sale.AlternativePhone, sale.AgentID, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID fetches a sale by id. (nil, nil) when no row matches.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales s WHERE s.id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(saleFields(&s)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	return &s, nil
}

// List returns sales newest first with the owning agent expanded, the
// filters narrowing by agent and dateOfSale lower bound.
func (r *SaleRepo) List(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `, u.name, u.email
		FROM sales s LEFT JOIN users u ON u.id = s.agent_id
		WHERE ($1 = '' OR s.agent_id::text = $1)
		  AND ($2::timestamptz IS NULL OR s.date_of_sale >= $2)
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(ctx, query, filter.AgentID, filter.Since)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var agentName, agentEmail *string
		fields := append(saleFields(&s), &agentName, &agentEmail)
		if err := rows.Scan(fields...); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if agentName != nil {
			s.Agent = &entity.UserRef{ID: s.AgentID, Name: *agentName}
			if agentEmail != nil {
				s.Agent.Email = *agentEmail
			}
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update rewrites the mutable sale fields. agent_id and created_at stay
// untouched.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET date_of_sale = $2, customer_name = $3, primary_phone = $4, campaign_type = $5,
			confirmation_number = $6, plan_name = $7, address = $8, email = $9, agent_name = $10,
			activation_fee = $11, payment_mode = $12, bank_name = $13, cheque_or_card_number = $14,
			cvv = $15, expiry_date = $16, merchant_name = $17, checking_account_number = $18,
			routing_number = $19, alternative_phone = $20
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.DateOfSale, sale.CustomerName, sale.PrimaryPhone, sale.CampaignType,
		sale.ConfirmationNumber, sale.PlanName, sale.Address, sale.Email, sale.AgentName,
		sale.ActivationFee, sale.PaymentMode, sale.BankName, sale.ChequeOrCardNumber, sale.CVV,
		sale.ExpiryDate, sale.MerchantName, sale.CheckingAccountNumber, sale.RoutingNumber,
		sale.AlternativePhone,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete removes a sale by id.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func saleFields(s *entity.Sale) []any {
	return []any{
		&s.ID, &s.Campaign, &s.DateOfSale, &s.CustomerName, &s.PrimaryPhone, &s.CampaignType,
		&s.ConfirmationNumber, &s.PlanName, &s.Address, &s.Email, &s.AgentName, &s.ActivationFee,
		&s.PaymentMode, &s.BankName, &s.ChequeOrCardNumber, &s.CVV, &s.ExpiryDate, &s.MerchantName,
		&s.CheckingAccountNumber, &s.RoutingNumber, &s.AlternativePhone, &s.AgentID, &s.CreatedAt,
	}
}
