package domain

type BinStatus string

const (
	BinStatusActive      BinStatus = "active"
	BinStatusFull        BinStatus = "full"
	BinStatusMaintenance BinStatus = "maintenance"
	BinStatusOffline     BinStatus = "offline"
)

type Bin struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	QRCode        string    `json:"qr_code"`
	Status        BinStatus `json:"status"`
	FillLevel     int32     `json:"fill_level"` // 0-100
	Capacity      int32     `json:"capacity"`
	AcceptedTypes []WasteCategory `json:"accepted_waste_types"`
	CreatedOn     string    `json:"created_on"`
	UpdatedOn     string    `json:"updated_on"`
}

// Accepts reports whether the bin currently takes the given waste category.
// A bin that is full, offline or in maintenance accepts nothing.
func (b *Bin) Accepts(category WasteCategory) bool {
	if b.Status != BinStatusActive {
		return false
	}
	for _, t := range b.AcceptedTypes {
		if t == category {
			return true
		}
	}
	return false
}
