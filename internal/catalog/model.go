package catalog

import "time"

// Money is a decimal amount with its currency code.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// SelectedOption is one (dimension, value) pair on a variant.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Option is a named axis of product configuration with its allowed values.
type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Variant is one purchasable combination of option values. Its ID is
// the unit of purchase; the cart references variants, never products.
type Variant struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	AvailableForSale  bool             `json:"available_for_sale"`
	QuantityAvailable int              `json:"quantity_available"`
	Price             Money            `json:"price"`
	CompareAtPrice    *Money           `json:"compare_at_price,omitempty"`
	SelectedOptions   []SelectedOption `json:"selected_options"`
}

type Product struct {
	ID              string     `json:"id"`
	Handle          string     `json:"handle"`
	Title           string     `json:"title"`
	DescriptionHTML string     `json:"description_html"`
	Images          []string   `json:"images"`
	Price           Money      `json:"price"`
	CompareAtPrice  *Money     `json:"compare_at_price,omitempty"`
	Options         []Option   `json:"options"`
	Variants        []Variant  `json:"variants"`
	AvailableForSale bool      `json:"available_for_sale"`
	TotalInventory  int        `json:"total_inventory"`
	Category        string     `json:"category"`
	Badge           string     `json:"badge,omitempty"`
	SaleEnds        *time.Time `json:"sale_ends,omitempty"`
}

// Sizes returns the values of the size dimension, if the product has one.
func (p *Product) Sizes() []string {
	if opt := findOption(p.Options, sizeAliases); opt != nil {
		return opt.Values
	}
	return nil
}

// Colors returns the values of the color dimension, if the product has one.
func (p *Product) Colors() []string {
	if opt := findOption(p.Options, colorAliases); opt != nil {
		return opt.Values
	}
	return nil
}
