// Package export shapes finalized orders into the payloads third-party
// ordering platforms ingest.
//
// Formatting is pure: everything comes off the stored order record, so an
// export can be regenerated at any time.
package export

import (
	"fmt"

	"github.com/wingworks/catering-configurator-backend/internal/domain/boxes"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

// Supported platforms.
const (
	PlatformMarketplace = "marketplace"
	PlatformDeliveryHub = "deliveryhub"
)

// ForPlatform formats an order for the named platform.
func ForPlatform(platform string, order *storage.OrderRecord) (interface{}, error) {
	switch platform {
	case PlatformMarketplace:
		return Marketplace(order), nil
	case PlatformDeliveryHub:
		return DeliveryHub(order), nil
	default:
		return nil, fmt.Errorf("unknown export platform %q", platform)
	}
}

// MarketplaceOrder is the compact marketplace payload: one line per price
// group rather than one per box.
type MarketplaceOrder struct {
	ExternalID string            `json:"external_id"`
	Currency   string            `json:"currency"`
	Total      string            `json:"total"`
	Lines      []MarketplaceLine `json:"lines"`
	Notes      string            `json:"notes,omitempty"`
}

// MarketplaceLine is one priced line of a marketplace order.
type MarketplaceLine struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// Marketplace formats an order as a MarketplaceOrder.
func Marketplace(order *storage.OrderRecord) MarketplaceOrder {
	out := MarketplaceOrder{
		ExternalID: order.ID,
		Currency:   "USD",
		Total:      order.Total,
		Notes:      order.Notes,
	}

	for _, g := range order.PriceGroups {
		out.Lines = append(out.Lines, MarketplaceLine{
			Description: fmt.Sprintf("%d-piece catering box", order.PiecesPerBox),
			Quantity:    g.BoxCount,
			UnitPrice:   g.Price,
		})
	}

	return out
}

// DeliveryHubOrder is the delivery-platform payload: one fully described
// item per box, since drivers assemble boxes individually.
type DeliveryHubOrder struct {
	Reference string            `json:"reference"`
	Total     string            `json:"total"`
	Items     []DeliveryHubItem `json:"items"`
}

// DeliveryHubItem is one box with its choices flattened into modifiers.
type DeliveryHubItem struct {
	Index     int      `json:"index"`
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Modifiers []string `json:"modifiers"`
}

// DeliveryHub formats an order as a DeliveryHubOrder.
func DeliveryHub(order *storage.OrderRecord) DeliveryHubOrder {
	out := DeliveryHubOrder{
		Reference: order.ID,
		Total:     order.Total,
	}

	for _, b := range order.Boxes {
		out.Items = append(out.Items, DeliveryHubItem{
			Index:     b.Index,
			Name:      fmt.Sprintf("%d-piece catering box", order.PiecesPerBox),
			Price:     b.Price,
			Modifiers: boxModifiers(b.Config),
		})
	}

	return out
}

// boxModifiers flattens a box configuration into the modifier strings the
// delivery platform displays.
func boxModifiers(cfg boxes.Configuration) []string {
	var mods []string

	if cfg.Mix.Boneless > 0 {
		mods = append(mods, fmt.Sprintf("%dx boneless", cfg.Mix.Boneless))
	}
	if cfg.Mix.BoneIn.Count > 0 {
		mods = append(mods, fmt.Sprintf("%dx bone-in (%s)", cfg.Mix.BoneIn.Count, cfg.Mix.BoneIn.Style))
	}
	if cfg.Mix.PlantBased.Count > 0 {
		mods = append(mods, fmt.Sprintf("%dx plant-based (%s)", cfg.Mix.PlantBased.Count, cfg.Mix.PlantBased.Prep))
	}

	if cfg.Split != nil {
		mods = append(mods,
			fmt.Sprintf("flavor: %s x%d", cfg.Split.First.FlavorID, cfg.Split.First.Count),
			fmt.Sprintf("flavor: %s x%d", cfg.Split.Second.FlavorID, cfg.Split.Second.Count))
	} else if cfg.FlavorID != "" {
		mods = append(mods, "flavor: "+cfg.FlavorID)
	}

	for _, dip := range cfg.Dips {
		if dip != "" {
			mods = append(mods, "dip: "+dip)
		}
	}
	if cfg.SideID != "" {
		mods = append(mods, "side: "+cfg.SideID)
	}
	if cfg.Dessert != "" {
		mods = append(mods, "dessert: "+cfg.Dessert)
	}

	return mods
}
