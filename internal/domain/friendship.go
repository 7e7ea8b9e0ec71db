package domain

type FriendshipStatus string

const (
	FriendshipStatusPending  FriendshipStatus = "pending"
	FriendshipStatusAccepted FriendshipStatus = "accepted"
)

type Friendship struct {
	ID        int32            `json:"id"`
	AccountID int32            `json:"account_id"` // requester
	FriendID  int32            `json:"friend_id"`
	Status    FriendshipStatus `json:"status"`
	CreatedOn string           `json:"created_on"`
}
