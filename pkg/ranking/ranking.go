// Package ranking decides rank-slot assignments. It is the pure half of
// the curation engine: it validates, detects conflicts, and plans the
// gateway writes, but never touches storage itself.
package ranking

import (
	"errors"
)

// ErrInvalidRank rejects desired ranks outside {1,2,3,nil} before any
// remote call is made.
var ErrInvalidRank = errors.New("rank must be 1, 2, 3 or null")

// Item is the engine's view of a curated record. Category is empty for
// restaurants, whose scope is the municipality alone.
type Item struct {
	ID             uint
	MunicipalityID uint
	Category       string
	Rank           *int
}

type Scope struct {
	MunicipalityID uint
	Category       string
}

func (i Item) Scope() Scope {
	return Scope{MunicipalityID: i.MunicipalityID, Category: i.Category}
}

// Decision is the curator's answer to a pending conflict.
type Decision int

const (
	Unasked Decision = iota
	Approved
	Declined
)

// Write is one gateway update the caller must issue. Writes are ordered:
// the conflicting holder is cleared before the new holder is set, so a
// failure between the two leaves the slot empty, never doubled, and the
// whole operation stays retryable.
type Write struct {
	ID       uint
	Rank     *int
	Featured bool
}

type Outcome int

const (
	// Applied: no conflict (or it was approved); issue Writes in order.
	Applied Outcome = iota
	// NeedsConfirmation: a conflicting holder exists and no decision was
	// given; nothing may be written until the curator answers.
	NeedsConfirmation
	// DeclinedNoop: the curator declined; state is untouched.
	DeclinedNoop
)

type Result struct {
	Outcome  Outcome
	Conflict *Item
	Writes   []Write
}

// SetRank plans the rank change for item within its scope. scopeItems
// should be every item sharing the scope; entries from other scopes are
// ignored, so slightly stale caller-side filtering is harmless.
// Re-selecting the currently held rank clears it (toggle rule).
func SetRank(item Item, desired *int, scopeItems []Item, decision Decision) (Result, error) {
	if desired != nil && (*desired < 1 || *desired > 3) {
		return Result{}, ErrInvalidRank
	}

	// toggle: same slot again means "remove"
	if desired != nil && item.Rank != nil && *item.Rank == *desired {
		desired = nil
	}

	if desired != nil {
		if conflict := findConflict(item, *desired, scopeItems); conflict != nil {
			switch decision {
			case Approved:
				return Result{
					Outcome: Applied,
					Writes: []Write{
						{ID: conflict.ID, Rank: nil, Featured: false},
						{ID: item.ID, Rank: desired, Featured: true},
					},
				}, nil
			case Declined:
				return Result{Outcome: DeclinedNoop}, nil
			default:
				return Result{Outcome: NeedsConfirmation, Conflict: conflict}, nil
			}
		}
	}

	return Result{
		Outcome: Applied,
		Writes:  []Write{{ID: item.ID, Rank: desired, Featured: desired != nil}},
	}, nil
}

func findConflict(item Item, desired int, scopeItems []Item) *Item {
	for i := range scopeItems {
		s := scopeItems[i]
		if s.ID == item.ID || s.Scope() != item.Scope() {
			continue
		}
		if s.Rank != nil && *s.Rank == desired {
			return &s
		}
	}
	return nil
}
