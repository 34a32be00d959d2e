package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingworks/catering-configurator-backend/internal/domain/allocator"
	"github.com/wingworks/catering-configurator-backend/internal/domain/boxes"
	"github.com/wingworks/catering-configurator-backend/internal/domain/splitter"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

func sampleOrder() *storage.OrderRecord {
	split, _ := splitter.New(24)
	split = splitter.SetSlotFlavor(split, 1, "bbq")
	split = splitter.SetSlotFlavor(split, 2, "lemon-pepper")

	return &storage.OrderRecord{
		ID:           "ord-1",
		Status:       storage.StatusFinalized,
		CreatedAt:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
		BoxCount:     3,
		PiecesPerBox: 24,
		Total:        "124.77",
		Boxes: []storage.BoxRecord{
			{
				Index: 1,
				Config: boxes.Configuration{
					Mix:      allocator.Distribution{Boneless: 24},
					FlavorID: "bbq",
					Dips:     [2]string{"ranch", "blue-cheese"},
					SideID:   "fries",
				},
				Price: "39.99",
			},
			{
				Index: 2,
				Config: boxes.Configuration{
					Mix:   allocator.Distribution{Boneless: 24},
					Split: &split,
					Dips:  [2]string{"ranch", "ranch"},
				},
				Price: "39.99",
			},
			{
				Index:      3,
				Overridden: true,
				Config: boxes.Configuration{
					Mix: allocator.Distribution{
						Boneless: 12,
						BoneIn:   allocator.BoneInChoice{Count: 12, Style: allocator.StyleFlats},
					},
					FlavorID: "truffle",
					Dips:     [2]string{"ranch", "blue-cheese"},
					Dessert:  "brownie",
				},
				Price: "44.79",
			},
		},
		PriceGroups: []storage.PriceGroupRecord{
			{Price: "44.79", BoxCount: 1, BoxIndices: []int{3}},
			{Price: "39.99", BoxCount: 2, BoxIndices: []int{1, 2}},
		},
	}
}

func TestMarketplace_OneLinePerPriceGroup(t *testing.T) {
	out := Marketplace(sampleOrder())

	assert.Equal(t, "ord-1", out.ExternalID)
	assert.Equal(t, "124.77", out.Total)
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "44.79", out.Lines[0].UnitPrice)
	assert.Equal(t, 1, out.Lines[0].Quantity)
	assert.Equal(t, "24-piece catering box", out.Lines[0].Description)
	assert.Equal(t, 2, out.Lines[1].Quantity)
}

func TestDeliveryHub_OneItemPerBox(t *testing.T) {
	out := DeliveryHub(sampleOrder())

	require.Len(t, out.Items, 3)

	plain := out.Items[0]
	assert.Contains(t, plain.Modifiers, "24x boneless")
	assert.Contains(t, plain.Modifiers, "flavor: bbq")
	assert.Contains(t, plain.Modifiers, "side: fries")

	withSplit := out.Items[1]
	assert.Contains(t, withSplit.Modifiers, "flavor: bbq x12")
	assert.Contains(t, withSplit.Modifiers, "flavor: lemon-pepper x12")

	overridden := out.Items[2]
	assert.Contains(t, overridden.Modifiers, "12x bone-in (flats)")
	assert.Contains(t, overridden.Modifiers, "dessert: brownie")
	assert.Equal(t, "44.79", overridden.Price)
}

func TestForPlatform(t *testing.T) {
	order := sampleOrder()

	mp, err := ForPlatform(PlatformMarketplace, order)
	require.NoError(t, err)
	assert.IsType(t, MarketplaceOrder{}, mp)

	dh, err := ForPlatform(PlatformDeliveryHub, order)
	require.NoError(t, err)
	assert.IsType(t, DeliveryHubOrder{}, dh)

	_, err = ForPlatform("fax-machine", order)
	assert.Error(t, err)
}
