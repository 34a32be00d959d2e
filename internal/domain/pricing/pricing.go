// Package pricing turns a box collection into a compact price breakdown.
//
// Every box is priced through a caller-supplied price function, boxes with
// the same cent-rounded price are grouped, and the total is the sum of the
// group subtotals so it always matches the per-box prices exactly.
package pricing

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wingworks/catering-configurator-backend/internal/domain/boxes"
)

// PriceFunc computes the price of one box configuration. It must be
// deterministic within a single aggregation pass.
type PriceFunc func(boxes.Configuration) (decimal.Decimal, error)

// Group is a set of boxes sharing one computed price.
type Group struct {
	Price      decimal.Decimal `json:"price"`
	BoxCount   int             `json:"box_count"`
	BoxIndices []int           `json:"box_indices"`
}

// Subtotal returns price times box count.
func (g Group) Subtotal() decimal.Decimal {
	return g.Price.Mul(decimal.NewFromInt(int64(g.BoxCount)))
}

// Breakdown is the aggregated price view of a collection. It is a pure
// projection, recomputed on demand and never stored.
type Breakdown struct {
	Groups []Group         `json:"groups"`
	Total  decimal.Decimal `json:"total"`
}

// ComputationError reports a price function returning an unusable value for
// one box. It is the only fatal condition in the engine: substituting a
// default price would silently corrupt the total.
type ComputationError struct {
	BoxIndex int
	Err      error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("price computation failed for box %d: %v", e.BoxIndex, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// Aggregate prices every box in the collection and groups boxes by their
// cent-rounded price. Groups are sorted by price descending and their box
// indices ascending. The total is the sum of group subtotals.
func Aggregate(c boxes.Collection, priceFn PriceFunc) (*Breakdown, error) {
	byPrice := make(map[string]*Group)

	for i := 1; i <= c.BoxCount; i++ {
		price, err := priceFn(boxes.EffectiveConfig(c, i))
		if err != nil {
			return nil, &ComputationError{BoxIndex: i, Err: err}
		}
		if price.IsNegative() {
			return nil, &ComputationError{BoxIndex: i, Err: fmt.Errorf("negative price %s", price)}
		}

		// Cent rounding is the grouping key, so two prices within
		// rounding of each other land in the same group.
		price = price.Round(2)
		key := price.StringFixed(2)
		g, ok := byPrice[key]
		if !ok {
			g = &Group{Price: price}
			byPrice[key] = g
		}
		g.BoxCount++
		g.BoxIndices = append(g.BoxIndices, i)
	}

	groups := make([]Group, 0, len(byPrice))
	for _, g := range byPrice {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Price.GreaterThan(groups[b].Price)
	})

	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Subtotal())
	}

	return &Breakdown{Groups: groups, Total: total}, nil
}
