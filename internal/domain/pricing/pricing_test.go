package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-configurator-backend/internal/domain/boxes"
)

func flavorPricer(prices map[string]string) PriceFunc {
	return func(cfg boxes.Configuration) (decimal.Decimal, error) {
		p, ok := prices[cfg.FlavorID]
		if !ok {
			return decimal.Zero, errors.New("unknown flavor")
		}
		return decimal.RequireFromString(p), nil
	}
}

func TestAggregate_GroupsByPriceDescending(t *testing.T) {
	c := boxes.NewCollection(5, boxes.Configuration{FlavorID: "bbq"})
	c = boxes.SetOverride(c, 2, boxes.Configuration{FlavorID: "truffle"})
	c = boxes.SetOverride(c, 4, boxes.Configuration{FlavorID: "truffle"})

	b, err := Aggregate(c, flavorPricer(map[string]string{
		"bbq":     "39.99",
		"truffle": "44.99",
	}))
	require.NoError(t, err)

	require.Len(t, b.Groups, 2)
	assert.True(t, b.Groups[0].Price.Equal(decimal.RequireFromString("44.99")))
	assert.Equal(t, []int{2, 4}, b.Groups[0].BoxIndices)
	assert.Equal(t, 2, b.Groups[0].BoxCount)

	assert.True(t, b.Groups[1].Price.Equal(decimal.RequireFromString("39.99")))
	assert.Equal(t, []int{1, 3, 5}, b.Groups[1].BoxIndices)
}

func TestAggregate_TotalIdentity(t *testing.T) {
	c := boxes.NewCollection(7, boxes.Configuration{FlavorID: "bbq"})
	c = boxes.SetOverride(c, 1, boxes.Configuration{FlavorID: "truffle"})
	c = boxes.SetOverride(c, 6, boxes.Configuration{FlavorID: "plain"})

	fn := flavorPricer(map[string]string{
		"bbq":     "39.99",
		"truffle": "44.99",
		"plain":   "34.49",
	})

	b, err := Aggregate(c, fn)
	require.NoError(t, err)

	// Total equals the sum of the individually computed per-box prices.
	perBox := decimal.Zero
	boxCount := 0
	for i := 1; i <= c.BoxCount; i++ {
		p, perr := fn(boxes.EffectiveConfig(c, i))
		require.NoError(t, perr)
		perBox = perBox.Add(p.Round(2))
	}
	for _, g := range b.Groups {
		boxCount += g.BoxCount
	}

	assert.True(t, b.Total.Equal(perBox), "total %s != per-box sum %s", b.Total, perBox)
	assert.Equal(t, c.BoxCount, boxCount)
}

func TestAggregate_NearbyPricesShareAGroup(t *testing.T) {
	// Sub-cent differences collapse into one group after cent rounding.
	fn := func(cfg boxes.Configuration) (decimal.Decimal, error) {
		if cfg.FlavorID == "a" {
			return decimal.RequireFromString("39.9901"), nil
		}
		return decimal.RequireFromString("39.9899"), nil
	}

	c := boxes.NewCollection(2, boxes.Configuration{FlavorID: "a"})
	c = boxes.SetOverride(c, 2, boxes.Configuration{FlavorID: "b"})

	b, err := Aggregate(c, fn)
	require.NoError(t, err)

	require.Len(t, b.Groups, 1)
	assert.Equal(t, 2, b.Groups[0].BoxCount)
}

func TestAggregate_FailsFastOnBadPrice(t *testing.T) {
	t.Run("price function error", func(t *testing.T) {
		c := boxes.NewCollection(3, boxes.Configuration{FlavorID: "bbq"})
		c = boxes.SetOverride(c, 2, boxes.Configuration{FlavorID: "ghost"})

		_, err := Aggregate(c, flavorPricer(map[string]string{"bbq": "39.99"}))
		require.Error(t, err)

		var cerr *ComputationError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 2, cerr.BoxIndex)
	})

	t.Run("negative price", func(t *testing.T) {
		c := boxes.NewCollection(1, boxes.Configuration{FlavorID: "bbq"})

		_, err := Aggregate(c, func(boxes.Configuration) (decimal.Decimal, error) {
			return decimal.RequireFromString("-1.00"), nil
		})

		var cerr *ComputationError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 1, cerr.BoxIndex)
	})
}

func TestAggregate_SingleGroupWhenNoOverrides(t *testing.T) {
	c := boxes.NewCollection(12, boxes.Configuration{FlavorID: "bbq"})

	b, err := Aggregate(c, flavorPricer(map[string]string{"bbq": "39.99"}))
	require.NoError(t, err)

	require.Len(t, b.Groups, 1)
	assert.Equal(t, 12, b.Groups[0].BoxCount)
	assert.True(t, b.Total.Equal(decimal.RequireFromString("479.88")))
}
