package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

var _ repository.AutoSaleRepository = (*AutoSaleRepo)(nil)

const autoSaleColumns = `s.id, s.campaign, s.date_of_sale, s.customer_name, s.primary_phone,
	s.confirmation_number, s.address, s.email, s.agent_name, s.activation_fee, s.payment_mode,
	s.campaign_type, s.plan_name, s.bank_name, s.cheque_or_card_number, s.cvv, s.expiry_date,
	s.checking_account_number, s.routing_number, s.alternative_phone, s.vin_number, s.vehicle_mileage,
	s.vehicle_model, s.fronter_name, s.closer_name, s.agent_id, s.created_at`

// AutoSaleRepo PostgreSQL implementation of the AutoSaleRepository port
// (usable with pool or tx).
type AutoSaleRepo struct {
	q Querier
}

// NewAutoSaleRepository builds the persistence adapter for auto-warranty
// sales.
func NewAutoSaleRepository(q Querier) *AutoSaleRepo {
	return &AutoSaleRepo{q: q}
}

// Create persists a new auto sale.
func (r *AutoSaleRepo) Create(ctx context.Context, sale *entity.AutoSale) error {
	query := `
		INSERT INTO auto_sales (id, campaign, date_of_sale, customer_name, primary_phone,
			confirmation_number, address, email, agent_name, activation_fee, payment_mode,
			campaign_type, plan_name, bank_name, cheque_or_card_number, cvv, expiry_date,
			checking_account_number, routing_number, alternative_phone, vin_number, vehicle_mileage,
			vehicle_model, fronter_name, closer_name, agent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Campaign, sale.DateOfSale, sale.CustomerName, sale.PrimaryPhone,
		sale.ConfirmationNumber, sale.Address, sale.Email, sale.AgentName, sale.ActivationFee,
		sale.PaymentMode, sale.CampaignType, sale.PlanName, sale.BankName, sale.ChequeOrCardNumber,
		sale.CVV, sale.ExpiryDate, sale.CheckingAccountNumber, sale.RoutingNumber, sale.AlternativePhone,
		sale.VINNumber, sale.VehicleMileage, sale.VehicleModel, sale.FronterName, sale.CloserName,
		sale.AgentID, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auto sale: %w", err)
	}
	return nil
}

// GetByID fetches an auto sale by id. (nil, nil) when no row matches.
func (r *AutoSaleRepo) GetByID(ctx context.Context, id string) (*entity.AutoSale, error) {
	query := `SELECT ` + autoSaleColumns + ` FROM auto_sales s WHERE s.id = $1`
	var s entity.AutoSale
	err := r.q.QueryRow(ctx, query, id).Scan(autoSaleFields(&s)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auto sale by id: %w", err)
	}
	return &s, nil
}

// List returns every auto sale newest first with the owning agent
// expanded.
func (r *AutoSaleRepo) List(ctx context.Context) ([]*entity.AutoSale, error) {
	query := `
		SELECT ` + autoSaleColumns + `, u.name, u.email
		FROM auto_sales s LEFT JOIN users u ON u.id = s.agent_id
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list auto sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.AutoSale
	for rows.Next() {
		var s entity.AutoSale
		var agentName, agentEmail *string
		fields := append(autoSaleFields(&s), &agentName, &agentEmail)
		if err := rows.Scan(fields...); err != nil {
			return nil, fmt.Errorf("scan auto sale: %w", err)
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

// Update rewrites the mutable auto-sale fields. agent_id and created_at
// stay untouched.
func (r *AutoSaleRepo) Update(ctx context.Context, sale *entity.AutoSale) error {
	query := `
		UPDATE auto_sales SET date_of_sale = $2, customer_name = $3, primary_phone = $4,
			confirmation_number = $5, address = $6, email = $7, agent_name = $8, activation_fee = $9,
			payment_mode = $10, campaign_type = $11, plan_name = $12, bank_name = $13,
			cheque_or_card_number = $14, cvv = $15, expiry_date = $16, checking_account_number = $17,
			routing_number = $18, alternative_phone = $19, vin_number = $20, vehicle_mileage = $21,
			vehicle_model = $22, fronter_name = $23, closer_name = $24
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.DateOfSale, sale.CustomerName, sale.PrimaryPhone, sale.ConfirmationNumber,
		sale.Address, sale.Email, sale.AgentName, sale.ActivationFee, sale.PaymentMode,
		sale.CampaignType, sale.PlanName, sale.BankName, sale.ChequeOrCardNumber, sale.CVV,
		sale.ExpiryDate, sale.CheckingAccountNumber, sale.RoutingNumber, sale.AlternativePhone,
		sale.VINNumber, sale.VehicleMileage, sale.VehicleModel, sale.FronterName, sale.CloserName,
	)
	if err != nil {
		return fmt.Errorf("update auto sale: %w", err)
	}
	return nil
}

// Delete removes an auto sale by id.
func (r *AutoSaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM auto_sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete auto sale: %w", err)
	}
	return nil
}

func autoSaleFields(s *entity.AutoSale) []any {
	return []any{
		&s.ID, &s.Campaign, &s.DateOfSale, &s.CustomerName, &s.PrimaryPhone, &s.ConfirmationNumber,
		&s.Address, &s.Email, &s.AgentName, &s.ActivationFee, &s.PaymentMode, &s.CampaignType,
		&s.PlanName, &s.BankName, &s.ChequeOrCardNumber, &s.CVV, &s.ExpiryDate,
		&s.CheckingAccountNumber, &s.RoutingNumber, &s.AlternativePhone, &s.VINNumber,
		&s.VehicleMileage, &s.VehicleModel, &s.FronterName, &s.CloserName, &s.AgentID, &s.CreatedAt,
	}
}
