package domain

type WasteCategory string

const (
	WastePlastic WasteCategory = "plastic"
	WasteMetal   WasteCategory = "metal"
	WastePaper   WasteCategory = "paper"
	WasteGlass   WasteCategory = "glass"
	WasteOrganic WasteCategory = "organic"
)

// WasteCategories lists every valid category. The points value per category
// comes from configuration, not from this package.
var WasteCategories = []WasteCategory{
	WastePlastic,
	WasteMetal,
	WastePaper,
	WasteGlass,
	WasteOrganic,
}

// ValidWasteCategory reports whether s names a known waste category.
func ValidWasteCategory(s string) bool {
	for _, c := range WasteCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// RecyclingSession is an append-only credit event in the points ledger.
// It is never edited or deleted after creation.
type RecyclingSession struct {
	ID           int32         `json:"id"`
	AccountID    int32         `json:"account_id"`
	BinID        int32         `json:"bin_id"`
	Category     WasteCategory `json:"waste_category"`
	PointsEarned int32         `json:"points_earned"`
	Verified     bool          `json:"verified"`
	PhotoURL     string        `json:"photo_url,omitempty"`
	CreatedOn    string        `json:"created_on"`
}
