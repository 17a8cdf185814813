package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

const leadColumns = `l.id, l.date_of_sale, l.customer_name, l.primary_phone, l.extended_warranty,
	l.vehicle_mileage, l.customer_agreed_for_transfer, l.address, l.email, l.agent_name,
	l.vehicle_make_model_variant, l.dialer_name, l.agent_id, l.created_at`

// LeadRepo PostgreSQL implementation of the LeadRepository port (usable
// with pool or tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository builds the persistence adapter for leads.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// Create persists a new lead.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, date_of_sale, customer_name, primary_phone, extended_warranty,
			vehicle_mileage, customer_agreed_for_transfer, address, email, agent_name,
			vehicle_make_model_variant, dialer_name, agent_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.DateOfSale, lead.CustomerName, lead.PrimaryPhone, lead.ExtendedWarranty,
		lead.VehicleMileage, lead.CustomerAgreedForTransferToSeniorRepresentative, lead.Address,
		lead.Email, lead.AgentName, lead.VehicleMakeModelVariant, lead.DialerName, lead.AgentID,
		lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID fetches a lead by id. (nil, nil) when no row matches.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads l WHERE l.id = $1`
	var l entity.Lead
	err := r.q.QueryRow(ctx, query, id).Scan(leadFields(&l)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead by id: %w", err)
	}
	return &l, nil
}

// List returns every lead newest first with the owning agent expanded.
func (r *LeadRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `, u.name, u.email
		FROM leads l LEFT JOIN users u ON u.id = l.agent_id
		ORDER BY l.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		var agentName, agentEmail *string
		fields := append(leadFields(&l), &agentName, &agentEmail)
		if err := rows.Scan(fields...); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		if agentName != nil {
			l.Agent = &entity.UserRef{ID: l.AgentID, Name: *agentName}
			if agentEmail != nil {
				l.Agent.Email = *agentEmail
			}
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update rewrites the mutable lead fields. agent_id and created_at stay
// untouched.
func (r *LeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET date_of_sale = $2, customer_name = $3, primary_phone = $4,
			extended_warranty = $5, vehicle_mileage = $6, customer_agreed_for_transfer = $7,
			address = $8, email = $9, agent_name = $10, vehicle_make_model_variant = $11,
			dialer_name = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.DateOfSale, lead.CustomerName, lead.PrimaryPhone, lead.ExtendedWarranty,
		lead.VehicleMileage, lead.CustomerAgreedForTransferToSeniorRepresentative, lead.Address,
		lead.Email, lead.AgentName, lead.VehicleMakeModelVariant, lead.DialerName,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete removes a lead by id.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

func leadFields(l *entity.Lead) []any {
	return []any{
		&l.ID, &l.DateOfSale, &l.CustomerName, &l.PrimaryPhone, &l.ExtendedWarranty,
		&l.VehicleMileage, &l.CustomerAgreedForTransferToSeniorRepresentative, &l.Address,
		&l.Email, &l.AgentName, &l.VehicleMakeModelVariant, &l.DialerName, &l.AgentID, &l.CreatedAt,
	}
}
