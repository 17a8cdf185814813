package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregation queries for the dashboards.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the analytics adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SaleCounts counts sales per rolling window ending at now, by dateOfSale.
func (r *AnalyticsRepo) SaleCounts(ctx context.Context, now time.Time) (repository.WindowCounts, error) {
	return r.windowCounts(ctx, "sales", now)
}

// AutoSaleCounts counts auto sales per rolling window ending at now.
func (r *AnalyticsRepo) AutoSaleCounts(ctx context.Context, now time.Time) (repository.WindowCounts, error) {
	return r.windowCounts(ctx, "auto_sales", now)
}

func (r *AnalyticsRepo) windowCounts(ctx context.Context, table string, now time.Time) (repository.WindowCounts, error) {
	query := fmt.Sprintf(`
		SELECT
			count(*) FILTER (WHERE date_of_sale >= $1),
			count(*) FILTER (WHERE date_of_sale >= $2),
			count(*) FILTER (WHERE date_of_sale >= $3)
		FROM %s`, table)
	var c repository.WindowCounts
	err := r.q.QueryRow(ctx, query,
		now.Add(-24*time.Hour), now.Add(-7*24*time.Hour), now.Add(-30*24*time.Hour),
	).Scan(&c.Last24Hours, &c.Last7Days, &c.Last30Days)
	if err != nil {
		return repository.WindowCounts{}, fmt.Errorf("count %s windows: %w", table, err)
	}
	return c, nil
}

// AgentSaleCounts counts one agent's sales and auto sales for today, the
// trailing week and the trailing month. Today starts at local midnight,
// matching the agent dashboard's calendar framing.
func (r *AnalyticsRepo) AgentSaleCounts(ctx context.Context, agentID string, now time.Time) (repository.AgentCounts, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	lastWeek := today.AddDate(0, 0, -7)
	lastMonth := today.AddDate(0, 0, -30)

	query := `
		SELECT
			count(*) FILTER (WHERE date_of_sale >= $2),
			count(*) FILTER (WHERE date_of_sale >= $3),
			count(*)
		FROM (
			SELECT date_of_sale FROM sales WHERE agent_id = $1 AND date_of_sale >= $4
			UNION ALL
			SELECT date_of_sale FROM auto_sales WHERE agent_id = $1 AND date_of_sale >= $4
		) combined`
	var c repository.AgentCounts
	err := r.q.QueryRow(ctx, query, agentID, today, lastWeek, lastMonth).
		Scan(&c.Today, &c.LastWeek, &c.LastMonth)
	if err != nil {
		return repository.AgentCounts{}, fmt.Errorf("count agent sales: %w", err)
	}
	return c, nil
}

// SalesByDay groups sale creation counts by calendar day, ascending.
func (r *AnalyticsRepo) SalesByDay(ctx context.Context) ([]repository.DailyCount, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM-DD') AS day, count(*)
		FROM sales
		GROUP BY day
		ORDER BY day ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyCount
	for rows.Next() {
		var d repository.DailyCount
		if err := rows.Scan(&d.Date, &d.Total); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// RecentSales returns the latest sales with the agent identity attached.
// Sales whose agent is gone come back with empty identity fields.
func (r *AnalyticsRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSaleResult, error) {
	query := `
		SELECT s.id, coalesce(u.name, ''), coalesce(u.email, ''), s.campaign_type
		FROM sales s LEFT JOIN users u ON u.id = s.agent_id
		ORDER BY s.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentSaleResult
	for rows.Next() {
		var s repository.RecentSaleResult
		if err := rows.Scan(&s.SaleID, &s.AgentName, &s.AgentEmail, &s.CampaignType); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
