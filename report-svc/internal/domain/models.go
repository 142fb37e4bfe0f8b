package domain

import "time"

// MonthsInSeries is the length of the trailing monthly revenue series.
const MonthsInSeries = 6

type RevenueSummary struct {
	Week    int64 `json:"week"`
	Month   int64 `json:"month"`
	Year    int64 `json:"year"`
	AllTime int64 `json:"all_time"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type TopReward struct {
	RewardID    int64  `json:"reward_id"`
	Name        string `json:"name"`
	Redemptions int64  `json:"redemptions"`
}

// Dashboard is the admin summary. Revenue figures count completed orders only.
type Dashboard struct {
	Revenue      RevenueSummary   `json:"revenue"`
	Monthly      []MonthlyRevenue `json:"monthly"`
	StatusCounts map[string]int   `json:"status_counts"`
	TopRewards   []TopReward      `json:"top_rewards"`
	GeneratedAt  time.Time        `json:"generated_at"`
}
