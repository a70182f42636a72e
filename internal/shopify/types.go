package shopify

// Wire types mirroring the Storefront API response shapes. The catalog
// package maps these into the closed domain model.

type MoneyV2 struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type ImageNode struct {
	URL     string  `json:"url"`
	AltText *string `json:"altText"`
}

type ImageEdge struct {
	Node ImageNode `json:"node"`
}

type ImageConnection struct {
	Edges []ImageEdge `json:"edges"`
}

type PriceRange struct {
	MinVariantPrice MoneyV2 `json:"minVariantPrice"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type VariantNode struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	AvailableForSale  bool             `json:"availableForSale"`
	QuantityAvailable int              `json:"quantityAvailable"`
	Price             MoneyV2          `json:"price"`
	CompareAtPrice    *MoneyV2         `json:"compareAtPrice"`
	SelectedOptions   []SelectedOption `json:"selectedOptions"`
}

type VariantEdge struct {
	Node VariantNode `json:"node"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges"`
}

type ProductNode struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Handle              string            `json:"handle"`
	Description         string            `json:"description"`
	DescriptionHTML     string            `json:"descriptionHtml"`
	AvailableForSale    bool              `json:"availableForSale"`
	TotalInventory      int               `json:"totalInventory"`
	ProductType         string            `json:"productType"`
	Images              ImageConnection   `json:"images"`
	PriceRange          PriceRange        `json:"priceRange"`
	CompareAtPriceRange *PriceRange       `json:"compareAtPriceRange"`
	Options             []ProductOption   `json:"options"`
	Variants            VariantConnection `json:"variants"`
}

type ProductEdge struct {
	Node ProductNode `json:"node"`
}

type productsResponse struct {
	Products struct {
		Edges []ProductEdge `json:"edges"`
	} `json:"products"`
}

type productByHandleResponse struct {
	Product *ProductNode `json:"product"`
}

// CartLine is one {merchandiseId, quantity} pair for cartCreate.
type CartLine struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

type cartCreateResponse struct {
	CartCreate struct {
		Cart *struct {
			ID          string `json:"id"`
			CheckoutURL string `json:"checkoutUrl"`
		} `json:"cart"`
		UserErrors []struct {
			Field   []string `json:"field"`
			Message string   `json:"message"`
		} `json:"userErrors"`
	} `json:"cartCreate"`
}
