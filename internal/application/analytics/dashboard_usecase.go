// Package analytics serves the read-only dashboard aggregations.
package analytics

import (
	"context"
	"time"

	"github.com/intertech/sales-automation-api/internal/application/dto"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

const recentSalesLimit = 10

// DashboardUseCase aggregation queries behind the dashboard widgets.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
	users     repository.UserRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analytics repository.AnalyticsRepository, users repository.UserRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, users: users}
}

// DashboardStats rolling-window Sale counts plus agent and QA headcounts.
func (uc *DashboardUseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	counts, err := uc.analytics.SaleCounts(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	totalAgents, err := uc.users.CountByRole(ctx, entity.RoleAgent)
	if err != nil {
		return nil, err
	}
	totalQaAgents, err := uc.users.CountByRole(ctx, entity.RoleQAAgent)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		Sales24Hours:  counts.Last24Hours,
		Sales7Days:    counts.Last7Days,
		Sales30Days:   counts.Last30Days,
		TotalAgents:   totalAgents,
		TotalQaAgents: totalQaAgents,
	}, nil
}

// AutoSalesStats rolling-window AutoSale counts plus the agent headcount.
func (uc *DashboardUseCase) AutoSalesStats(ctx context.Context) (*dto.AutoSalesStatsResponse, error) {
	counts, err := uc.analytics.AutoSaleCounts(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	totalAgents, err := uc.users.CountByRole(ctx, entity.RoleAgent)
	if err != nil {
		return nil, err
	}
	return &dto.AutoSalesStatsResponse{
		Sales24Hours: counts.Last24Hours,
		Sales7Days:   counts.Last7Days,
		Sales30Days:  counts.Last30Days,
		TotalAgents:  totalAgents,
	}, nil
}

// GraphStats Sale creation counts grouped by calendar day, ascending.
func (uc *DashboardUseCase) GraphStats(ctx context.Context) (*dto.GraphStatsResponse, error) {
	daily, err := uc.analytics.SalesByDay(ctx)
	if err != nil {
		return nil, err
	}
	points := make([]dto.DailySalesPoint, 0, len(daily))
	for _, d := range daily {
		points = append(points, dto.DailySalesPoint{Date: d.Date, Total: d.Total})
	}
	return &dto.GraphStatsResponse{SalesByDate: points}, nil
}

// RecentSales the latest sales with the agent identity attached. Sales
// whose agent is gone render placeholder identity, not an error.
func (uc *DashboardUseCase) RecentSales(ctx context.Context) ([]dto.RecentSaleDTO, error) {
	rows, err := uc.analytics.RecentSales(ctx, recentSalesLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecentSaleDTO, 0, len(rows))
	for _, r := range rows {
		d := dto.RecentSaleDTO{
			ID:           r.SaleID,
			Name:         r.AgentName,
			Email:        r.AgentEmail,
			CampaignType: r.CampaignType,
		}
		if d.Name == "" {
			d.Name = "Unknown"
		}
		if d.Email == "" {
			d.Email = "N/A"
		}
		out = append(out, d)
	}
	return out, nil
}

// AgentSalesCounts the acting agent's own Sale + AutoSale counts for
// today, the trailing week and the trailing month.
func (uc *DashboardUseCase) AgentSalesCounts(ctx context.Context, agentID string) (*dto.AgentSalesCountsResponse, error) {
	counts, err := uc.analytics.AgentSaleCounts(ctx, agentID, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.AgentSalesCountsResponse{
		TodaySales:     counts.Today,
		LastWeekSales:  counts.LastWeek,
		LastMonthSales: counts.LastMonth,
	}, nil
}
