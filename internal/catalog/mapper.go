package catalog

import (
	"strconv"
	"strings"

	"noir-be/internal/shopify"
)

// Dimension aliases observed in real store data. Matching is always
// case-insensitive.
var (
	sizeAliases  = []string{"size", "sizes", "taille"}
	colorAliases = []string{"color", "colour", "colors", "couleur"}
)

func matchesAlias(name string, aliases []string) bool {
	for _, a := range aliases {
		if strings.EqualFold(name, a) {
			return true
		}
	}
	return false
}

func findOption(options []Option, aliases []string) *Option {
	for i := range options {
		if matchesAlias(options[i].Name, aliases) {
			return &options[i]
		}
	}
	return nil
}

func parseMoney(m shopify.MoneyV2) Money {
	amount, _ := strconv.ParseFloat(m.Amount, 64)
	return Money{Amount: amount, Currency: m.CurrencyCode}
}

func parseMoneyPtr(m *shopify.MoneyV2) *Money {
	if m == nil || m.Amount == "" {
		return nil
	}
	parsed := parseMoney(*m)
	return &parsed
}

// FromShopifyProduct maps a Storefront API payload into the closed
// Product model and applies any static per-handle overrides.
func FromShopifyProduct(node *shopify.ProductNode) Product {
	images := make([]string, 0, len(node.Images.Edges))
	for _, edge := range node.Images.Edges {
		images = append(images, edge.Node.URL)
	}

	variants := make([]Variant, 0, len(node.Variants.Edges))
	for _, edge := range node.Variants.Edges {
		v := edge.Node
		selected := make([]SelectedOption, 0, len(v.SelectedOptions))
		for _, opt := range v.SelectedOptions {
			selected = append(selected, SelectedOption{Name: opt.Name, Value: opt.Value})
		}

		variants = append(variants, Variant{
			ID:                v.ID,
			Title:             v.Title,
			AvailableForSale:  v.AvailableForSale,
			QuantityAvailable: v.QuantityAvailable,
			Price:             parseMoney(v.Price),
			CompareAtPrice:    parseMoneyPtr(v.CompareAtPrice),
			SelectedOptions:   selected,
		})
	}

	options := make([]Option, 0, len(node.Options))
	for _, opt := range node.Options {
		options = append(options, Option{Name: opt.Name, Values: opt.Values})
	}
	options = dropDefaultTitle(deriveOptions(options, variants))

	price := parseMoney(node.PriceRange.MinVariantPrice)

	var compareAt *Money
	if node.CompareAtPriceRange != nil {
		compareAt = parseMoneyPtr(&node.CompareAtPriceRange.MinVariantPrice)
	}
	// A compare-at price only means something when it undercuts nothing.
	if compareAt != nil && compareAt.Amount <= price.Amount {
		compareAt = nil
	}

	category := node.ProductType
	if category == "" {
		category = "General"
	}

	product := Product{
		ID:               node.ID,
		Handle:           node.Handle,
		Title:            node.Title,
		DescriptionHTML:  node.DescriptionHTML,
		Images:           images,
		Price:            price,
		CompareAtPrice:   compareAt,
		Options:          options,
		Variants:         variants,
		AvailableForSale: node.AvailableForSale,
		TotalInventory:   node.TotalInventory,
		Category:         category,
	}

	if static := StaticDataFor(node.Handle); static != nil {
		product.Badge = static.Badge
		product.SaleEnds = static.SaleEnds
		if static.Inventory != nil {
			product.TotalInventory = *static.Inventory
		}
	}

	return product
}

// dropDefaultTitle removes Shopify's placeholder dimension for
// products that have no real options (a single "Title" option whose
// only value is "Default Title").
func dropDefaultTitle(options []Option) []Option {
	kept := options[:0]
	for _, opt := range options {
		if strings.EqualFold(opt.Name, "Title") &&
			len(opt.Values) == 1 && opt.Values[0] == "Default Title" {
			continue
		}
		kept = append(kept, opt)
	}
	return kept
}

// deriveOptions backfills option dimensions by scanning variant
// selected-options when the declared list is empty or missing a
// dimension the variants actually use. Best-effort recovery for
// inconsistent store data; name matching is case-insensitive and the
// first-seen casing wins.
func deriveOptions(declared []Option, variants []Variant) []Option {
	options := make([]Option, len(declared))
	copy(options, declared)

	indexOf := func(name string) int {
		for i := range options {
			if strings.EqualFold(options[i].Name, name) {
				return i
			}
		}
		return -1
	}

	hasValue := func(values []string, value string) bool {
		for _, v := range values {
			if v == value {
				return true
			}
		}
		return false
	}

	for _, variant := range variants {
		for _, sel := range variant.SelectedOptions {
			idx := indexOf(sel.Name)
			if idx < 0 {
				options = append(options, Option{Name: sel.Name, Values: []string{sel.Value}})
				continue
			}
			if !hasValue(options[idx].Values, sel.Value) {
				options[idx].Values = append(options[idx].Values, sel.Value)
			}
		}
	}

	return options
}
