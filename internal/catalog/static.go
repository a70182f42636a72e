package catalog

import "time"

// StaticData carries manually configured hints layered over live store
// data: inventory display hints, listing badges and sale countdowns.
// These are marketing inputs, not inventory authority.
type StaticData struct {
	Inventory *int
	Badge     string
	SaleEnds  *time.Time
}

func intPtr(v int) *int { return &v }

func inHours(h int) *time.Time {
	t := time.Now().Add(time.Duration(h) * time.Hour)
	return &t
}

var staticData = map[string]StaticData{
	"cinematic-hoodie": {
		Inventory: intPtr(50),
		Badge:     "Best Seller",
		SaleEnds:  inHours(5),
	},
	"jesus-hoodie": {
		Inventory: intPtr(5),
		Badge:     "Best Seller",
		SaleEnds:  inHours(2),
	},
	"jesus-saves-hoodie": {
		Inventory: intPtr(50),
		SaleEnds:  inHours(8),
	},
	"faith-driven-bag": {
		Inventory: intPtr(50),
		SaleEnds:  inHours(2),
	},
	"quality-sweater": {
		Inventory: intPtr(2),
		SaleEnds:  inHours(2),
	},
	"fear-yah-carry-bag": {
		Inventory: intPtr(6),
		SaleEnds:  inHours(2),
	},
}

// StaticDataFor returns the configured overrides for a handle, or nil.
func StaticDataFor(handle string) *StaticData {
	if data, ok := staticData[handle]; ok {
		return &data
	}
	return nil
}

// ConfiguredHandles lists every handle with static configuration.
func ConfiguredHandles() []string {
	handles := make([]string, 0, len(staticData))
	for handle := range staticData {
		handles = append(handles, handle)
	}
	return handles
}
