// Package pricelist prices one box configuration from the restaurant's
// price list: a base price per box size plus per-piece and per-item
// upcharges.
//
// PriceBox satisfies the pricing.PriceFunc contract: it is deterministic
// for a given configuration and returns an error rather than guessing when
// the price list has no entry for the box.
package pricelist

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/wingworks/catering-configurator-backend/internal/domain/allocator"
	"github.com/wingworks/catering-configurator-backend/internal/domain/boxes"
	"github.com/wingworks/catering-configurator-backend/internal/domain/menu"
)

// PriceList prices boxes against a catalog.
type PriceList struct {
	basePrices map[int]decimal.Decimal
	perPiece   map[allocator.Category]decimal.Decimal
	catalog    *menu.Catalog
}

type rawPriceList struct {
	// Keys are box sizes in pieces; values are decimal strings.
	BasePrices map[string]string `yaml:"base_prices"`
	// Per-piece upcharges keyed by category.
	PerPieceUpcharges map[string]string `yaml:"per_piece_upcharges"`
}

// Load reads and validates a price list file.
func Load(path string, catalog *menu.Catalog) (*PriceList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price list: %w", err)
	}
	return Parse(data, catalog)
}

// Parse validates price list yaml against the catalog.
func Parse(data []byte, catalog *menu.Catalog) (*PriceList, error) {
	var raw rawPriceList
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse price list: %w", err)
	}
	if len(raw.BasePrices) == 0 {
		return nil, fmt.Errorf("price list has no base prices")
	}

	p := &PriceList{
		basePrices: make(map[int]decimal.Decimal, len(raw.BasePrices)),
		perPiece:   make(map[allocator.Category]decimal.Decimal, len(raw.PerPieceUpcharges)),
		catalog:    catalog,
	}

	for sizeStr, priceStr := range raw.BasePrices {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			return nil, fmt.Errorf("bad box size %q", sizeStr)
		}
		price, err := parsePrice(priceStr)
		if err != nil {
			return nil, fmt.Errorf("base price for %d-piece box: %w", size, err)
		}
		p.basePrices[size] = price
	}

	for catStr, priceStr := range raw.PerPieceUpcharges {
		cat := allocator.Category(catStr)
		if !cat.Valid() {
			return nil, fmt.Errorf("unknown category %q in per-piece upcharges", catStr)
		}
		price, err := parsePrice(priceStr)
		if err != nil {
			return nil, fmt.Errorf("per-piece upcharge for %s: %w", cat, err)
		}
		p.perPiece[cat] = price
	}

	return p, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad price %q: %w", s, err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %s", price)
	}
	return price, nil
}

// PriceBox computes the price of one box: base price for its size, per-piece
// category upcharges, flavor upcharges (prorated across a split), and any
// priced dips, side, or dessert.
func (p *PriceList) PriceBox(cfg boxes.Configuration) (decimal.Decimal, error) {
	size := cfg.Mix.Sum()
	base, ok := p.basePrices[size]
	if !ok {
		return decimal.Zero, fmt.Errorf("no base price for a %d-piece box", size)
	}

	total := base
	for _, c := range allocator.Categories() {
		up, ok := p.perPiece[c]
		if !ok {
			continue
		}
		total = total.Add(up.Mul(decimal.NewFromInt(int64(cfg.Mix.Count(c)))))
	}

	flavorUp, err := p.flavorUpcharge(cfg)
	if err != nil {
		return decimal.Zero, err
	}
	total = total.Add(flavorUp)

	for _, id := range cfg.Dips {
		if id == "" {
			continue
		}
		up, err := p.entryUpcharge(id)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(up)
	}
	for _, id := range []string{cfg.SideID, cfg.Dessert} {
		if id == "" {
			continue
		}
		up, err := p.entryUpcharge(id)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(up)
	}

	return total.Round(2), nil
}

// flavorUpcharge prices the flavor choice. A split box pays each slot's
// flavor upcharge in proportion to the pieces carrying that flavor.
func (p *PriceList) flavorUpcharge(cfg boxes.Configuration) (decimal.Decimal, error) {
	if cfg.Split == nil {
		if cfg.FlavorID == "" {
			return decimal.Zero, nil
		}
		return p.entryUpcharge(cfg.FlavorID)
	}

	slotTotal := cfg.Split.First.Count + cfg.Split.Second.Count
	if slotTotal == 0 {
		return decimal.Zero, nil
	}

	total := decimal.Zero
	for _, slot := range []struct {
		flavorID string
		count    int
	}{
		{cfg.Split.First.FlavorID, cfg.Split.First.Count},
		{cfg.Split.Second.FlavorID, cfg.Split.Second.Count},
	} {
		if slot.flavorID == "" {
			continue
		}
		up, err := p.entryUpcharge(slot.flavorID)
		if err != nil {
			return decimal.Zero, err
		}
		share := up.Mul(decimal.NewFromInt(int64(slot.count))).Div(decimal.NewFromInt(int64(slotTotal)))
		total = total.Add(share)
	}
	return total, nil
}

func (p *PriceList) entryUpcharge(id string) (decimal.Decimal, error) {
	entry, ok := p.catalog.Lookup(id)
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown catalog item %q", id)
	}
	return entry.Upcharge(), nil
}
