package dto

type LogWeightInput struct {
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	WeightLbs float64 `json:"weight_lbs" binding:"required,gt=0"`
}

type WeightFilter struct {
	Date string `uri:"date" binding:"required,datetime=2006-01-02"`
}

// WeightProgress is computed from a user's full history: the baseline is the
// chronologically earliest entry, not the first-inserted row.
type WeightProgress struct {
	InitialWeight  float64 `json:"initial_weight"`
	CurrentWeight  float64 `json:"current_weight"`
	WeightLoss     float64 `json:"weight_loss"`
	PercentageLoss float64 `json:"percentage_loss"`
	Entries        int     `json:"entries"`
}

type AdminWeightRow struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Position int    `json:"position"`
	WeightProgress
}
