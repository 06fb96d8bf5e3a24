package dto

// LeaderboardRow is one user's standing, recomputed from source records on
// every read. Position is 1-based.
type LeaderboardRow struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	Position        int    `json:"position"`
	TotalActivities int64  `json:"total_activities"`
	TotalDuration   int64  `json:"total_duration"`
	ActiveDays      int64  `json:"active_days"`
	ActivityPoints  int64  `json:"activity_points"`
	ChecklistPoints int64  `json:"checklist_points"`
	TotalPoints     int64  `json:"total_points"`
}
