package cart

// Item is one cart line, keyed by variant ID. Price is a snapshot taken
// at add-time and never re-fetched; Size and Color are display-only
// snapshots of the selected option values.
type Item struct {
	VariantID string  `json:"variant_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}
