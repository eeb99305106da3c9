package dto

type DashboardStatsDTO struct {
	TotalMesses         int     `json:"total_messes"`
	ActiveSubscriptions int     `json:"active_subscriptions"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageRating       float64 `json:"average_rating"`
}
