package domain

type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleMember TeamRole = "member"
)

type Team struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	GoalPoints  int32  `json:"goal_points"`
	IsPublic    bool   `json:"is_public"`
	CreatedBy   int32  `json:"created_by"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}

type TeamMember struct {
	TeamID    int32    `json:"team_id"`
	AccountID int32    `json:"account_id"`
	Role      TeamRole `json:"role"`
	JoinedOn  string   `json:"joined_on"`
}
