// Package audit provides the immutable closure audit trail. Every closure
// and every rollback of a manufacturing order appends a ClosureRecord that
// captures who acted, which rule set version was in force, whether the
// closure was forced, and a snapshot of the order's statistics at that
// moment. Records are never updated or deleted; a rollback record points
// at the closure record it reverses.
package audit

import (
	"errors"
	"fmt"
	"time"

	"paneltrack/internal/core/domain/model/kernel"
	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/pkg/errs"
)

// ErrClosureRecordIsNotConstructed is returned when a ClosureRecord was not
// created through a package constructor.
var ErrClosureRecordIsNotConstructed = errors.New(
	"ClosureRecord must be created via NewClosureRecord or NewRollbackRecord constructor")

// Kind classifies an audit record.
type Kind int

const (
	KindUnknown Kind = iota
	// KindAutomaticClose marks a closure performed by the background scan job.
	KindAutomaticClose
	// KindManualClose marks a closure requested by an operator.
	KindManualClose
	// KindRollback marks the reversal of a prior closure.
	KindRollback
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:        "Unknown",
		KindAutomaticClose: "AutomaticClose",
		KindManualClose:    "ManualClose",
		KindRollback:       "Rollback",
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	s, ok := kindStrings()[k]
	if !ok {
		return kindStrings()[KindUnknown]
	}
	return s
}

// Validate checks that the kind is one of the known values.
func (k Kind) Validate() error {
	if k != KindAutomaticClose && k != KindManualClose && k != KindRollback {
		return errs.NewValueIsInvalidErrorWithCause("kind",
			fmt.Errorf("%d is not a valid audit record kind", int(k)))
	}
	return nil
}

// ClosureRecord is an append-only audit entry for a closure or rollback.
type ClosureRecord struct {
	id          kernel.UUID
	orderID     kernel.UUID
	kind        Kind
	actor       kernel.UUID
	forced      bool
	ruleVersion int
	priorStatus order.Status
	reason      string
	reverses    *kernel.UUID
	snapshot    order.Statistics
	createdAt   time.Time

	isConstructed bool
}

// NewClosureRecord creates the audit entry for a closure. priorStatus is the
// order status the closure replaced, so a later rollback can restore it.
func NewClosureRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	actor kernel.UUID,
	forced bool,
	ruleVersion int,
	priorStatus order.Status,
	reason string,
	snapshot order.Statistics,
	createdAt time.Time,
) (*ClosureRecord, error) {
	if kind == KindRollback {
		return nil, errs.NewValueIsInvalidErrorWithCause("kind",
			errors.New("rollback records are created via NewRollbackRecord"))
	}
	r, err := newRecord(id, orderID, kind, actor, ruleVersion, priorStatus, snapshot, createdAt)
	if err != nil {
		return nil, err
	}

	r.forced = forced
	r.reason = reason
	return r, nil
}

// NewRollbackRecord creates the audit entry reversing the closure recorded
// by reversesRecordID. A reason is mandatory.
func NewRollbackRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	actor kernel.UUID,
	reversesRecordID kernel.UUID,
	ruleVersion int,
	restoredStatus order.Status,
	reason string,
	snapshot order.Statistics,
	createdAt time.Time,
) (*ClosureRecord, error) {
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if err := reversesRecordID.Validate(); err != nil {
		return nil, err
	}
	r, err := newRecord(id, orderID, KindRollback, actor, ruleVersion, restoredStatus, snapshot, createdAt)
	if err != nil {
		return nil, err
	}

	r.reason = reason
	r.reverses = &reversesRecordID
	return r, nil
}

func newRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	actor kernel.UUID,
	ruleVersion int,
	priorStatus order.Status,
	snapshot order.Statistics,
	createdAt time.Time,
) (*ClosureRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if ruleVersion <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("ruleVersion",
			fmt.Errorf("%d is not greater than 0", ruleVersion))
	}
	if err := priorStatus.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &ClosureRecord{
		id:            id,
		orderID:       orderID,
		kind:          kind,
		actor:         actor,
		ruleVersion:   ruleVersion,
		priorStatus:   priorStatus,
		snapshot:      snapshot,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreClosureRecord reconstructs an audit record from persistence.
func RestoreClosureRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	actor kernel.UUID,
	forced bool,
	ruleVersion int,
	priorStatus order.Status,
	reason string,
	reverses *kernel.UUID,
	snapshot order.Statistics,
	createdAt time.Time,
) (*ClosureRecord, error) {
	r, err := newRecord(id, orderID, kind, actor, ruleVersion, priorStatus, snapshot, createdAt)
	if err != nil {
		return nil, err
	}
	if kind == KindRollback && reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	r.forced = forced
	r.reason = reason
	r.reverses = reverses
	return r, nil
}

// Validate ensures the ClosureRecord instance was properly constructed.
func (r *ClosureRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrClosureRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *ClosureRecord) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the order the record belongs to.
func (r *ClosureRecord) OrderID() kernel.UUID {
	return r.orderID
}

// Kind returns the record's classification.
func (r *ClosureRecord) Kind() Kind {
	return r.kind
}

// Actor returns who performed the closure or rollback. The background scan
// job uses a fixed system actor identifier.
func (r *ClosureRecord) Actor() kernel.UUID {
	return r.actor
}

// Forced reports whether the closure bypassed the completion check.
func (r *ClosureRecord) Forced() bool {
	return r.forced
}

// RuleVersion returns the version of the closure rule set in force.
func (r *ClosureRecord) RuleVersion() int {
	return r.ruleVersion
}

// PriorStatus returns the order status the operation replaced. For a
// rollback record this is the status the rollback restored.
func (r *ClosureRecord) PriorStatus() order.Status {
	return r.priorStatus
}

// Reason returns the operator-supplied reason. Empty except for forced
// closures and rollbacks.
func (r *ClosureRecord) Reason() string {
	return r.reason
}

// ReversesRecordID returns the closure record a rollback reverses, or nil
// for closure records.
func (r *ClosureRecord) ReversesRecordID() *kernel.UUID {
	return r.reverses
}

// Snapshot returns the order statistics captured at record time.
func (r *ClosureRecord) Snapshot() order.Statistics {
	return r.snapshot
}

// CreatedAt returns the record's creation time.
func (r *ClosureRecord) CreatedAt() time.Time {
	return r.createdAt
}
