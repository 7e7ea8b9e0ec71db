package domain

type AccountRole string

const (
	AccountRoleUser  AccountRole = "user"
	AccountRoleAdmin AccountRole = "admin"
)

type Account struct {
	ID           int32       `json:"id"`
	Email        string      `json:"email"`
	PhoneNumber  string      `json:"phone_number"`
	PasswordHash string      `json:"-"`
	FullName     string      `json:"full_name"`
	Location     string      `json:"location"`
	Role         AccountRole `json:"role"`
	// TotalPoints is a cached projection of the account's ledger history.
	// The ledger service is its sole writer.
	TotalPoints int32  `json:"total_points"`
	CreatedOn   string `json:"created_on"`
	UpdatedOn   string `json:"updated_on"`
}

// LeaderboardEntry is a read-only ranking row derived from account points.
type LeaderboardEntry struct {
	Rank        int32  `json:"rank"`
	AccountID   int32  `json:"account_id"`
	FullName    string `json:"full_name"`
	TotalPoints int32  `json:"total_points"`
}

// BalanceDrift reports an account whose cached balance disagrees with the
// sum of its ledger events. A non-empty audit result is a correctness bug.
type BalanceDrift struct {
	AccountID     int32 `json:"account_id"`
	CachedBalance int32 `json:"cached_balance"`
	LedgerBalance int32 `json:"ledger_balance"`
}
