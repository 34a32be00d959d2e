// Package validator derives the message list shown next to the box
// customizer.
//
// Messages are recomputed from scratch on every edit; nothing here keeps
// state or diffs against a previous run, so identical input always yields
// an identical list.
package validator

import (
	"fmt"

	"github.com/wingworks/catering-configurator-backend/internal/domain/allocator"
)

// Kind classifies a validation message.
type Kind string

const (
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
)

// Message is one entry in the customizer's feedback list.
type Message struct {
	Kind        Kind   `json:"kind"`
	Summary     string `json:"summary"`
	Detail      string `json:"detail,omitempty"`
	Dismissible bool   `json:"dismissible"`
}

// headroomWarningThreshold is how close a category's count may get to the
// box total before an advisory warning fires.
const headroomWarningThreshold = 10

// Validate evaluates every rule against the distribution and returns all
// messages that fire. The distribution carries its own conditional
// sub-selections, so prep method and wing style are checked here too.
func Validate(d allocator.Distribution, requiredTotal int) []Message {
	var msgs []Message

	if sum := d.Sum(); sum != requiredTotal {
		detail := ""
		if diff := requiredTotal - sum; diff > 0 {
			detail = fmt.Sprintf("need %d more", diff)
		} else {
			detail = fmt.Sprintf("%d too many", -diff)
		}
		msgs = append(msgs, Message{
			Kind:    KindError,
			Summary: fmt.Sprintf("Total must equal %d", requiredTotal),
			Detail:  detail,
		})
	}

	if d.PlantBased.Count > 0 && d.PlantBased.Prep == allocator.PrepUnset {
		msgs = append(msgs, Message{
			Kind:    KindError,
			Summary: "Preparation method required",
			Detail:  "choose baked, fried, or split for plant-based pieces",
		})
	}

	// Style defaults to mixed upstream, so this only fires when that
	// default was bypassed.
	if d.BoneIn.Count > 0 && d.BoneIn.Style == allocator.StyleUnset {
		msgs = append(msgs, Message{
			Kind:    KindError,
			Summary: "Wing style required",
			Detail:  "choose mixed, flats, or drums for bone-in pieces",
		})
	}

	if len(msgs) == 0 {
		msgs = append(msgs, Message{
			Kind:    KindSuccess,
			Summary: fmt.Sprintf("Box complete: %d pieces", requiredTotal),
		})
	}

	// Advisory only: a category running out of headroom never blocks.
	for _, c := range allocator.Categories() {
		count := d.Count(c)
		if count == 0 {
			continue
		}
		if headroom := requiredTotal - count; headroom <= headroomWarningThreshold {
			msgs = append(msgs, Message{
				Kind:        KindWarning,
				Summary:     fmt.Sprintf("%s is close to filling the box", categoryLabel(c)),
				Detail:      fmt.Sprintf("only %d pieces left for other categories", headroom),
				Dismissible: true,
			})
			break
		}
	}

	return msgs
}

// IsValid reports overall validity: true iff no error-kind message fired.
func IsValid(msgs []Message) bool {
	for _, m := range msgs {
		if m.Kind == KindError {
			return false
		}
	}
	return true
}

func categoryLabel(c allocator.Category) string {
	switch c {
	case allocator.CategoryBoneless:
		return "Boneless"
	case allocator.CategoryBoneIn:
		return "Bone-in"
	case allocator.CategoryPlantBased:
		return "Plant-based"
	}
	return string(c)
}
