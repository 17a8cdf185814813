package dto

// DashboardStatsResponse rolling-window Sale counts plus user totals.
type DashboardStatsResponse struct {
	Sales24Hours  int `json:"sales24Hours"`
	Sales7Days    int `json:"sales7Days"`
	Sales30Days   int `json:"sales30Days"`
	TotalAgents   int `json:"totalAgents"`
	TotalQaAgents int `json:"totalQaAgents"`
}

// AutoSalesStatsResponse rolling-window AutoSale counts plus agent total.
type AutoSalesStatsResponse struct {
	Sales24Hours int `json:"sales24Hours"`
	Sales7Days   int `json:"sales7Days"`
	Sales30Days  int `json:"sales30Days"`
	TotalAgents  int `json:"totalAgents"`
}

// DailySalesPoint one calendar day in the creation time series.
type DailySalesPoint struct {
	Date  string `json:"_id"` // YYYY-MM-DD, field name kept for the chart frontend
	Total int    `json:"total"`
}

// GraphStatsResponse 30-day Sale creation time series.
type GraphStatsResponse struct {
	SalesByDate []DailySalesPoint `json:"salesByDate"`
}

// RecentSaleDTO one row of the recent-sales widget.
type RecentSaleDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	CampaignType string `json:"campaignType"`
}
