package domain

type Post struct {
	ID           int32  `json:"id"`
	AccountID    int32  `json:"account_id"`
	Content      string `json:"content"`
	ActivityType string `json:"activity_type,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	PointsEarned int32  `json:"points_earned"`
	LikesCount   int32  `json:"likes_count"`
	CreatedOn    string `json:"created_on"`
}
