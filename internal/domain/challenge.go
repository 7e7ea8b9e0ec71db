package domain

import "time"

type Challenge struct {
	ID          int32     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	GoalPoints  int32     `json:"goal_points"`
	Rewards     string    `json:"rewards"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active"`
	CreatedOn   string    `json:"created_on"`
}

type ChallengeParticipant struct {
	ChallengeID       int32  `json:"challenge_id"`
	AccountID         int32  `json:"account_id"`
	PointsContributed int32  `json:"points_contributed"`
	JoinedOn          string `json:"joined_on"`
}

// ChallengeProgress is the aggregate view of a challenge.
type ChallengeProgress struct {
	Challenge        Challenge `json:"challenge"`
	TotalContributed int32     `json:"total_contributed"`
	ParticipantCount int32     `json:"participant_count"`
}
