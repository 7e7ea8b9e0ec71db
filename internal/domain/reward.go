package domain

import "time"

type Reward struct {
	ID             int32  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	Provider       string `json:"provider"`
	Value          string `json:"value"`
	PointsRequired int32  `json:"points_required"`
	ValidityDays   *int32 `json:"validity_days,omitempty"`
	Active         bool   `json:"active"`
	CreatedOn      string `json:"created_on"`
}

type RedemptionStatus string

const (
	RedemptionStatusProcessed RedemptionStatus = "processed"
	RedemptionStatusExpired   RedemptionStatus = "expired"
	RedemptionStatusCancelled RedemptionStatus = "cancelled"
)

// Redemption is an append-only debit event in the points ledger. PointsSpent
// and Code are fixed at creation; only Status may change afterwards, and only
// processed → expired or processed → cancelled.
type Redemption struct {
	ID          int32            `json:"id"`
	AccountID   int32            `json:"account_id"`
	RewardID    int32            `json:"reward_id"`
	PointsSpent int32            `json:"points_spent"`
	Code        string           `json:"redemption_code"`
	Status      RedemptionStatus `json:"status"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// EffectiveStatus evaluates time-driven expiry lazily: a processed redemption
// whose expiry has passed reads as expired even before the sweep runs.
func (r *Redemption) EffectiveStatus(now time.Time) RedemptionStatus {
	if r.Status == RedemptionStatusProcessed && r.ExpiresAt != nil && now.After(*r.ExpiresAt) {
		return RedemptionStatusExpired
	}
	return r.Status
}
