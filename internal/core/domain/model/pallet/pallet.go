// Package pallet provides the Pallet aggregate: the physical grouping of
// completed panels for shipment. Finalization marks a pallet's assignments
// immutable; some closure rule sets require every pallet of an order to be
// finalized before the order may close.
package pallet

import (
	"errors"
	"fmt"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/pkg/errs"
)

var (
	// ErrPalletIsNotConstructed is returned when a Pallet instance was not
	// created through the NewPallet factory method.
	ErrPalletIsNotConstructed = errors.New("Pallet must be created via NewPallet constructor")

	// ErrPalletIsFinalized is returned when mutating a finalized pallet.
	ErrPalletIsFinalized = errors.New("pallet is finalized and its assignments are immutable")
)

// Pallet groups panels of one order for shipment. Assignments are mutable
// until Finalize is called; finalization is one-way.
type Pallet struct {
	id       kernel.UUID
	orderID  kernel.UUID
	capacity int
	panelIDs []kernel.UUID
	final    bool

	isConstructed bool
}

// NewPallet creates an empty, non-finalized pallet with the given capacity.
func NewPallet(id kernel.UUID, orderID kernel.UUID, capacity int) (*Pallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}

	return &Pallet{
		id:            id,
		orderID:       orderID,
		capacity:      capacity,
		isConstructed: true,
	}, nil
}

// RestorePallet reconstructs a pallet from persistence.
func RestorePallet(
	id kernel.UUID,
	orderID kernel.UUID,
	capacity int,
	panelIDs []kernel.UUID,
	final bool,
) (*Pallet, error) {
	p, err := NewPallet(id, orderID, capacity)
	if err != nil {
		return nil, err
	}
	if len(panelIDs) > capacity {
		return nil, errs.NewValueIsOutOfRangeError("assigned panels", len(panelIDs), 0, capacity)
	}

	p.panelIDs = append([]kernel.UUID(nil), panelIDs...)
	p.final = final
	return p, nil
}

// Validate ensures the Pallet instance was properly constructed.
func (p *Pallet) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPalletIsNotConstructed
	}
	return nil
}

// ID returns the pallet's unique identifier.
func (p *Pallet) ID() kernel.UUID {
	return p.id
}

// OrderID returns the owning order's identifier.
func (p *Pallet) OrderID() kernel.UUID {
	return p.orderID
}

// Capacity returns the maximum number of panels the pallet holds.
func (p *Pallet) Capacity() int {
	return p.capacity
}

// AssignedCount returns the number of panels assigned to the pallet.
func (p *Pallet) AssignedCount() int {
	return len(p.panelIDs)
}

// PanelIDs returns a copy of the assigned panel identifiers.
func (p *Pallet) PanelIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), p.panelIDs...)
}

// IsEqual compares two pallets by their unique identifiers.
func (p *Pallet) IsEqual(other *Pallet) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// IsFinalized reports whether the pallet's assignments are immutable.
func (p *Pallet) IsFinalized() bool {
	return p.final
}

// AssignPanel adds a panel to the pallet. Fails on a finalized pallet,
// a full pallet, or a duplicate assignment.
func (p *Pallet) AssignPanel(panelID kernel.UUID) error {
	if err := panelID.Validate(); err != nil {
		return err
	}
	if p.final {
		return ErrPalletIsFinalized
	}
	if len(p.panelIDs) >= p.capacity {
		return errs.NewValueIsOutOfRangeError("assigned panels", len(p.panelIDs)+1, 0, p.capacity)
	}
	for _, id := range p.panelIDs {
		if id.IsEqual(panelID) {
			return errs.NewValueIsInvalidErrorWithCause("panelID",
				fmt.Errorf("panel %s is already assigned to pallet %s", panelID, p.id))
		}
	}

	p.panelIDs = append(p.panelIDs, panelID)
	return nil
}

// Finalize marks the pallet's assignments immutable. One-way; finalizing an
// already finalized pallet fails.
func (p *Pallet) Finalize() error {
	if p.final {
		return ErrPalletIsFinalized
	}

	p.final = true
	return nil
}
