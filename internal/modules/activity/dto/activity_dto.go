package dto

type CreateActivityInput struct {
	ActivityType string `json:"activity_type" binding:"required,max=50"`
	Duration     int    `json:"duration" binding:"omitempty,gte=0"`
	Notes        string `json:"notes" binding:"omitempty,max=2000"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
}

type ActivityFilter struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type SearchActivitiesFilter struct {
	Query string `form:"q" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}
