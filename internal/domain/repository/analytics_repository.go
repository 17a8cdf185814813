package repository

import (
	"context"
	"time"
)

// DailyCount one calendar day's record-creation count.
type DailyCount struct {
	Date  string // YYYY-MM-DD
	Total int
}

// RecentSaleResult raw row for the recent-sales dashboard widget.
type RecentSaleResult struct {
	SaleID       string
	AgentName    string
	AgentEmail   string
	CampaignType string
}

// WindowCounts record counts for the rolling dashboard windows.
type WindowCounts struct {
	Last24Hours int
	Last7Days   int
	Last30Days  int
}

// AgentCounts an agent's own record counts per window, Sale and AutoSale
// combined.
type AgentCounts struct {
	Today     int
	LastWeek  int
	LastMonth int
}

// AnalyticsRepository read-only aggregation queries for the dashboards.
// Implementations never mutate data.
type AnalyticsRepository interface {
	// SaleCounts / AutoSaleCounts count records whose dateOfSale falls in
	// the rolling 24h/7d/30d windows ending at now.
	SaleCounts(ctx context.Context, now time.Time) (WindowCounts, error)
	AutoSaleCounts(ctx context.Context, now time.Time) (WindowCounts, error)

	// AgentSaleCounts counts the agent's own Sale + AutoSale records for
	// today, the trailing 7 days and the trailing 30 days (by dateOfSale).
	AgentSaleCounts(ctx context.Context, agentID string, now time.Time) (AgentCounts, error)

	// SalesByDay groups Sale creation counts by calendar day, ascending.
	SalesByDay(ctx context.Context) ([]DailyCount, error)

	// RecentSales returns the most recently created sales with the agent
	// identity attached.
	RecentSales(ctx context.Context, limit int) ([]RecentSaleResult, error)
}
