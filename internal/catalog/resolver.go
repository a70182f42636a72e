package catalog

import (
	"fmt"
	"strings"
)

// Selection maps option dimension names to chosen values. Dimension
// names are matched case-insensitively; unset dimensions act as
// wildcards during resolution.
type Selection map[string]string

func (s Selection) valueFor(dimension string) (string, bool) {
	for name, value := range s {
		if strings.EqualFold(name, dimension) && value != "" {
			return value, true
		}
	}
	return "", false
}

// ValueForAliases returns the selected value for a dimension known
// under any of the given alias names (used to snapshot size/color onto
// cart lines).
func (s Selection) ValueForAliases(aliases []string) (string, bool) {
	for _, alias := range aliases {
		if value, ok := s.valueFor(alias); ok {
			return value, true
		}
	}
	return "", false
}

// SizeAliases exposes the size dimension aliases.
func SizeAliases() []string { return sizeAliases }

// ColorAliases exposes the color dimension aliases.
func ColorAliases() []string { return colorAliases }

// variantMatches reports whether the variant carries the given value on
// the given dimension.
func variantMatches(v *Variant, dimension, value string) bool {
	for _, opt := range v.SelectedOptions {
		if strings.EqualFold(opt.Name, dimension) && opt.Value == value {
			return true
		}
	}
	return false
}

// matchesSelection reports whether the variant satisfies every set
// dimension of the selection.
func matchesSelection(v *Variant, p *Product, sel Selection) bool {
	for _, opt := range p.Options {
		value, ok := sel.valueFor(opt.Name)
		if !ok {
			continue
		}
		if !variantMatches(v, opt.Name, value) {
			return false
		}
	}
	return true
}

// Resolve reduces (product, selection) to a single variant. Unset
// dimensions are wildcards: the result is non-nil only when exactly one
// variant satisfies the set dimensions. A product with no option
// dimensions resolves trivially to its single variant.
func Resolve(p *Product, sel Selection) *Variant {
	var match *Variant
	for i := range p.Variants {
		if !matchesSelection(&p.Variants[i], p, sel) {
			continue
		}
		if match != nil {
			return nil // ambiguous
		}
		match = &p.Variants[i]
	}
	return match
}

// IsValueAvailable reports whether choosing value on dimension, while
// keeping the other set selections, can still reach a sellable variant.
// Drives greying out incompatible combinations in the UI.
func IsValueAvailable(p *Product, dimension, value string, sel Selection) bool {
	for i := range p.Variants {
		v := &p.Variants[i]
		if !variantMatches(v, dimension, value) {
			continue
		}

		compatible := true
		for _, opt := range p.Options {
			if strings.EqualFold(opt.Name, dimension) {
				continue
			}
			other, ok := sel.valueFor(opt.Name)
			if ok && !variantMatches(v, opt.Name, other) {
				compatible = false
				break
			}
		}

		if compatible && v.AvailableForSale {
			return true
		}
	}
	return false
}

// DisplayPrice returns the price and compare-at price to show for the
// current selection: the resolved variant's when resolution succeeds,
// otherwise the product-level range minimum. The fallback is a range
// proxy, not a specific variant's price.
func DisplayPrice(p *Product, sel Selection) (Money, *Money) {
	if v := Resolve(p, sel); v != nil {
		return v.Price, v.CompareAtPrice
	}
	return p.Price, p.CompareAtPrice
}

// Precondition failure reasons for add-to-cart.
const (
	ReasonMissingSelection = "missing_selection"
	ReasonSoldOut          = "sold_out"
	ReasonUnavailable      = "unavailable"
)

// PreconditionError names the exact add-to-cart precondition that
// failed so the UI can prompt the next step.
type PreconditionError struct {
	Reason    string
	Dimension string
}

func (e *PreconditionError) Error() string {
	switch e.Reason {
	case ReasonMissingSelection:
		return fmt.Sprintf("select a %s", strings.ToLower(e.Dimension))
	case ReasonSoldOut:
		return "sold out"
	default:
		return "combination unavailable"
	}
}

// CheckAddToCart validates that the selection identifies a unique,
// sellable variant of a sellable product. Returns the resolved variant
// on success, or a *PreconditionError naming what is missing.
func CheckAddToCart(p *Product, sel Selection) (*Variant, error) {
	v := Resolve(p, sel)
	if v == nil {
		for _, opt := range p.Options {
			if _, ok := sel.valueFor(opt.Name); !ok {
				return nil, &PreconditionError{Reason: ReasonMissingSelection, Dimension: opt.Name}
			}
		}
		// Every dimension set but no variant carries that combination.
		return nil, &PreconditionError{Reason: ReasonUnavailable}
	}

	if !v.AvailableForSale || !p.AvailableForSale {
		return nil, &PreconditionError{Reason: ReasonSoldOut}
	}

	return v, nil
}
