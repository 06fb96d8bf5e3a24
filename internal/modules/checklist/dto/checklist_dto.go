package dto

// ChecklistFlags carries the six daily habit checkboxes.
type ChecklistFlags struct {
	Workout30Min       bool `json:"workout_30min"`
	WorkoutExtra15Min  bool `json:"workout_extra_15min"`
	FamilyGroupWorkout bool `json:"family_group_workout"`
	Water82Oz          bool `json:"water_82oz"`
	Sleep6Hours        bool `json:"sleep_6hours"`
	PersonalGoalHit    bool `json:"personal_goal_hit"`
}

type SaveChecklistInput struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	ChecklistFlags
}

type CompleteChecklistInput struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	ChecklistFlags
}

type ChecklistFilter struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}
