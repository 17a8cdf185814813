package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intertech/sales-automation-api/internal/application/analytics"
	"github.com/intertech/sales-automation-api/internal/domain/entity"
	"github.com/intertech/sales-automation-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	saleCounts     repository.WindowCounts
	autoSaleCounts repository.WindowCounts
	agentCounts    repository.AgentCounts
	daily          []repository.DailyCount
	recent         []repository.RecentSaleResult

	lastAgentID string
	lastLimit   int
}

func (f *fakeAnalyticsRepo) SaleCounts(_ context.Context, _ time.Time) (repository.WindowCounts, error) {
	return f.saleCounts, nil
}

func (f *fakeAnalyticsRepo) AutoSaleCounts(_ context.Context, _ time.Time) (repository.WindowCounts, error) {
	return f.autoSaleCounts, nil
}

func (f *fakeAnalyticsRepo) AgentSaleCounts(_ context.Context, agentID string, _ time.Time) (repository.AgentCounts, error) {
	f.lastAgentID = agentID
	return f.agentCounts, nil
}

func (f *fakeAnalyticsRepo) SalesByDay(_ context.Context) ([]repository.DailyCount, error) {
	return f.daily, nil
}

func (f *fakeAnalyticsRepo) RecentSales(_ context.Context, limit int) ([]repository.RecentSaleResult, error) {
	f.lastLimit = limit
	return f.recent, nil
}

type fakeUserCounts struct {
	repository.UserRepository
	byRole map[string]int
}

func (f *fakeUserCounts) CountByRole(_ context.Context, role string) (int, error) {
	return f.byRole[role], nil
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		saleCounts: repository.WindowCounts{Last24Hours: 3, Last7Days: 12, Last30Days: 40},
	}
	users := &fakeUserCounts{byRole: map[string]int{
		entity.RoleAgent:   7,
		entity.RoleQAAgent: 2,
	}}
	uc := analytics.NewDashboardUseCase(repo, users)

	stats, err := uc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Sales24Hours)
	assert.Equal(t, 12, stats.Sales7Days)
	assert.Equal(t, 40, stats.Sales30Days)
	assert.Equal(t, 7, stats.TotalAgents)
	assert.Equal(t, 2, stats.TotalQaAgents)
}

func TestAutoSalesStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		autoSaleCounts: repository.WindowCounts{Last24Hours: 1, Last7Days: 4, Last30Days: 9},
	}
	users := &fakeUserCounts{byRole: map[string]int{entity.RoleAgent: 5}}
	uc := analytics.NewDashboardUseCase(repo, users)

	stats, err := uc.AutoSalesStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Sales24Hours)
	assert.Equal(t, 4, stats.Sales7Days)
	assert.Equal(t, 9, stats.Sales30Days)
	assert.Equal(t, 5, stats.TotalAgents)
}

func TestGraphStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{daily: []repository.DailyCount{
		{Date: "2026-08-30", Total: 4},
		{Date: "2026-08-31", Total: 6},
	}}
	uc := analytics.NewDashboardUseCase(repo, &fakeUserCounts{})

	stats, err := uc.GraphStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats.SalesByDate, 2)
	assert.Equal(t, "2026-08-30", stats.SalesByDate[0].Date)
	assert.Equal(t, 6, stats.SalesByDate[1].Total)
}

func TestRecentSales_PlaceholdersForMissingAgent(t *testing.T) {
	repo := &fakeAnalyticsRepo{recent: []repository.RecentSaleResult{
		{SaleID: "s-1", AgentName: "Jane", AgentEmail: "jane@intertech.com", CampaignType: "Home warranty 2"},
		{SaleID: "s-2", CampaignType: "Inline home service"},
	}}
	uc := analytics.NewDashboardUseCase(repo, &fakeUserCounts{})

	out, err := uc.RecentSales(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Jane", out[0].Name)
	assert.Equal(t, "Unknown", out[1].Name)
	assert.Equal(t, "N/A", out[1].Email)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestAgentSalesCounts(t *testing.T) {
	repo := &fakeAnalyticsRepo{agentCounts: repository.AgentCounts{Today: 2, LastWeek: 8, LastMonth: 20}}
	uc := analytics.NewDashboardUseCase(repo, &fakeUserCounts{})

	out, err := uc.AgentSalesCounts(context.Background(), "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "agent-1", repo.lastAgentID)
	assert.Equal(t, 2, out.TodaySales)
	assert.Equal(t, 8, out.LastWeekSales)
	assert.Equal(t, 20, out.LastMonthSales)
}
