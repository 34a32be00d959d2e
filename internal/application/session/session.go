// Package session orchestrates one catering ordering flow.
//
// A session owns the working distribution, the optional flavor split, and
// the box collection. Every edit runs the same sequence: apply the edit,
// re-derive validation messages, then re-aggregate pricing, so handlers
// always observe post-edit state.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wingworks/catering-configurator-backend/internal/domain/allocator"
	"github.com/wingworks/catering-configurator-backend/internal/domain/boxes"
	"github.com/wingworks/catering-configurator-backend/internal/domain/menu"
	"github.com/wingworks/catering-configurator-backend/internal/domain/pricing"
	"github.com/wingworks/catering-configurator-backend/internal/domain/splitter"
	"github.com/wingworks/catering-configurator-backend/internal/domain/validator"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

// Session is one in-progress catering order. It is not safe for concurrent
// use; the manager serializes access.
type Session struct {
	ID           string
	CreatedAt    time.Time
	PiecesPerBox int

	collection boxes.Collection
	messages   []validator.Message
	breakdown  *pricing.Breakdown

	catalog *menu.Catalog
	priceFn pricing.PriceFunc
}

// Snapshot is the plain-data view of a session handed to presentation code.
type Snapshot struct {
	ID              string                 `json:"id"`
	PiecesPerBox    int                    `json:"pieces_per_box"`
	BoxCount        int                    `json:"box_count"`
	Mix             allocator.Distribution `json:"mix"`
	Split           *splitter.Selection    `json:"split,omitempty"`
	Template        boxes.Configuration    `json:"template"`
	OverriddenBoxes []int                  `json:"overridden_boxes"`
	Messages        []validator.Message    `json:"messages"`
	Valid           bool                   `json:"valid"`
	Pricing         *pricing.Breakdown     `json:"pricing,omitempty"`
}

// New starts a session of boxCount boxes of piecesPerBox pieces, beginning
// from an all-boneless distribution.
func New(piecesPerBox, boxCount int, catalog *menu.Catalog, priceFn pricing.PriceFunc) (*Session, error) {
	if piecesPerBox < 1 {
		return nil, fmt.Errorf("pieces per box must be positive, got %d", piecesPerBox)
	}

	template := boxes.Configuration{
		Mix: allocator.Distribution{Boneless: piecesPerBox},
	}

	s := &Session{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		PiecesPerBox: piecesPerBox,
		collection:   boxes.NewCollection(boxCount, template),
		catalog:      catalog,
		priceFn:      priceFn,
	}
	if err := s.refresh(); err != nil {
		return nil, fmt.Errorf("default box cannot be priced: %w", err)
	}
	return s, nil
}

// refresh re-derives messages and pricing from current state. Pricing is
// cleared when the price function rejects a box; the triggering edit
// reports that error to its caller.
func (s *Session) refresh() error {
	s.messages = validator.Validate(s.collection.Template.Mix, s.PiecesPerBox)

	breakdown, err := pricing.Aggregate(s.collection, s.priceFn)
	if err != nil {
		s.breakdown = nil
		return err
	}
	s.breakdown = breakdown
	return nil
}

// Snapshot returns the current plain-data state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:              s.ID,
		PiecesPerBox:    s.PiecesPerBox,
		BoxCount:        s.collection.BoxCount,
		Mix:             s.collection.Template.Mix,
		Split:           s.collection.Template.Split,
		Template:        s.collection.Template,
		OverriddenBoxes: s.collection.OverriddenIndices(),
		Messages:        s.messages,
		Valid:           validator.IsValid(s.messages),
		Pricing:         s.breakdown,
	}
}

// setTemplate swaps the template and reruns the edit sequence.
func (s *Session) setTemplate(template boxes.Configuration) error {
	s.collection = boxes.SetTemplate(s.collection, template)
	return s.refresh()
}

// SetQuantity edits one category of the template's distribution; the other
// categories rebalance to keep the box full.
func (s *Session) SetQuantity(category allocator.Category, quantity int) error {
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}
	template := s.collection.Template
	template.Mix = allocator.SetQuantity(template.Mix, category, quantity, s.PiecesPerBox)
	template.Split = s.rebalancedSplit(template)
	return s.setTemplate(template)
}

// ApplyPreset replaces the template distribution with a named preset.
func (s *Session) ApplyPreset(preset allocator.Preset) error {
	template := s.collection.Template
	mix, err := allocator.ApplyPreset(template.Mix, preset, s.PiecesPerBox)
	if err != nil {
		return err
	}
	template.Mix = mix
	template.Split = s.rebalancedSplit(template)
	return s.setTemplate(template)
}

// SetPrep chooses the preparation method for plant-based pieces.
func (s *Session) SetPrep(prep allocator.PrepMethod) error {
	template := s.collection.Template
	template.Mix = template.Mix.WithPrep(prep)
	return s.setTemplate(template)
}

// SetStyle chooses the wing style for bone-in pieces.
func (s *Session) SetStyle(style allocator.WingStyle) error {
	template := s.collection.Template
	template.Mix = template.Mix.WithStyle(style)
	return s.setTemplate(template)
}

// SetFlavor picks a single flavor for the template, dropping any split.
func (s *Session) SetFlavor(flavorID string) error {
	if !s.catalog.HasFlavor(flavorID) {
		return fmt.Errorf("unknown flavor %q", flavorID)
	}
	template := s.collection.Template
	template.FlavorID = flavorID
	template.Split = nil
	return s.setTemplate(template)
}

// EnableSplit switches the template to a two-flavor split. Fails when the
// box's flavor-bearing quantity is too small for one.
func (s *Session) EnableSplit() error {
	template := s.collection.Template
	sel, ok := splitter.New(s.flavorSlotTotal(template))
	if !ok {
		return fmt.Errorf("box too small to split flavors")
	}
	template.Split = &sel
	template.FlavorID = ""
	return s.setTemplate(template)
}

// SetSplitCount edits the first slot's piece count; the second slot
// rebalances automatically.
func (s *Session) SetSplitCount(firstCount int) error {
	template := s.collection.Template
	if template.Split == nil {
		return fmt.Errorf("no active flavor split")
	}
	sel := splitter.SetFirstSlot(*template.Split, firstCount, s.flavorSlotTotal(template))
	template.Split = &sel
	return s.setTemplate(template)
}

// SetSplitFlavor assigns a flavor to one split slot (1 or 2).
func (s *Session) SetSplitFlavor(slot int, flavorID string) error {
	template := s.collection.Template
	if template.Split == nil {
		return fmt.Errorf("no active flavor split")
	}
	if !s.catalog.HasFlavor(flavorID) {
		return fmt.Errorf("unknown flavor %q", flavorID)
	}
	sel := splitter.SetSlotFlavor(*template.Split, slot, flavorID)
	template.Split = &sel
	return s.setTemplate(template)
}

// SetDips, SetSide, SetDessert, and SetNotes complete the template.
func (s *Session) SetDips(first, second string) error {
	for _, id := range []string{first, second} {
		if !s.catalog.HasDip(id) {
			return fmt.Errorf("unknown dip %q", id)
		}
	}
	template := s.collection.Template
	template.Dips = [2]string{first, second}
	return s.setTemplate(template)
}

func (s *Session) SetSide(sideID string) error {
	if !s.catalog.HasSide(sideID) {
		return fmt.Errorf("unknown side %q", sideID)
	}
	template := s.collection.Template
	template.SideID = sideID
	return s.setTemplate(template)
}

func (s *Session) SetDessert(dessertID string) error {
	if !s.catalog.HasDessert(dessertID) {
		return fmt.Errorf("unknown dessert %q", dessertID)
	}
	template := s.collection.Template
	template.Dessert = dessertID
	return s.setTemplate(template)
}

func (s *Session) SetNotes(notes string) error {
	template := s.collection.Template
	template.Notes = notes
	return s.setTemplate(template)
}

// SetBoxOverride pins a full configuration to one box.
func (s *Session) SetBoxOverride(boxIndex int, cfg boxes.Configuration) error {
	s.collection = boxes.SetOverride(s.collection, boxIndex, cfg)
	return s.refresh()
}

// ClearBoxOverride reverts one box to the template.
func (s *Session) ClearBoxOverride(boxIndex int) error {
	s.collection = boxes.ClearOverride(s.collection, boxIndex)
	return s.refresh()
}

// EffectiveBox resolves the configuration one box will be made to.
func (s *Session) EffectiveBox(boxIndex int) boxes.Configuration {
	return boxes.EffectiveConfig(s.collection, boxIndex)
}

// flavorSlotTotal is the number of flavor-bearing pieces in a box: the
// sauced proteins, so everything except plant-based.
func (s *Session) flavorSlotTotal(template boxes.Configuration) int {
	return template.Mix.Boneless + template.Mix.BoneIn.Count
}

// rebalancedSplit re-fits an active split to a changed distribution. The
// split collapses back to a single flavor choice when the flavor-bearing
// quantity drops below the split minimum.
func (s *Session) rebalancedSplit(template boxes.Configuration) *splitter.Selection {
	if template.Split == nil {
		return nil
	}
	total := s.flavorSlotTotal(template)
	if !splitter.Offered(total) {
		return nil
	}
	sel := splitter.SetFirstSlot(*template.Split, template.Split.First.Count, total)
	return &sel
}

// Finalize freezes the session into a persistable order. It refuses while
// validation errors remain, while an active split is missing a flavor, or
// while the template has no flavor at all.
func (s *Session) Finalize() (*storage.OrderRecord, error) {
	if !validator.IsValid(s.messages) {
		return nil, fmt.Errorf("order is not valid yet")
	}
	template := s.collection.Template
	if template.Split != nil {
		if !template.Split.Complete() {
			return nil, fmt.Errorf("flavor split is missing a flavor")
		}
	} else if template.FlavorID == "" {
		return nil, fmt.Errorf("no flavor chosen")
	}

	breakdown, err := pricing.Aggregate(s.collection, s.priceFn)
	if err != nil {
		return nil, err
	}

	order := &storage.OrderRecord{
		ID:           uuid.NewString(),
		Status:       storage.StatusFinalized,
		CreatedAt:    time.Now().UTC(),
		BoxCount:     s.collection.BoxCount,
		PiecesPerBox: s.PiecesPerBox,
		Total:        breakdown.Total.StringFixed(2),
		Notes:        template.Notes,
	}

	for i := 1; i <= s.collection.BoxCount; i++ {
		cfg := boxes.EffectiveConfig(s.collection, i)
		price, err := s.priceFn(cfg)
		if err != nil {
			return nil, &pricing.ComputationError{BoxIndex: i, Err: err}
		}
		order.Boxes = append(order.Boxes, storage.BoxRecord{
			Index:      i,
			Overridden: s.collection.Overridden(i),
			Config:     cfg,
			Price:      price.Round(2).StringFixed(2),
		})
	}

	for _, g := range breakdown.Groups {
		order.PriceGroups = append(order.PriceGroups, storage.PriceGroupRecord{
			Price:      g.Price.StringFixed(2),
			BoxCount:   g.BoxCount,
			BoxIndices: g.BoxIndices,
		})
	}

	return order, nil
}
