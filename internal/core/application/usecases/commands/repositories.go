// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"paneltrack/internal/core/domain/model/order"
	"paneltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends only on the narrow interface it actually needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PanelRepoFactory provides access to the panel repository within a transaction.
	PanelRepoFactory interface {
		PanelRepository() ports.PanelRepository
	}

	// InspectionRepoFactory provides access to the inspection repository within a transaction.
	InspectionRepoFactory interface {
		InspectionRepository() ports.InspectionRepository
	}

	// PalletRepoFactory provides access to the pallet repository within a transaction.
	PalletRepoFactory interface {
		PalletRepository() ports.PalletRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// RuleSetRepoFactory provides access to the rule set repository within a transaction.
	RuleSetRepoFactory interface {
		RuleSetRepository() ports.RuleSetRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ScanUoW manages transactions for panel intake, which touches the panel
	// and the owning order.
	ScanUoW interface {
		TxManager
		PanelRepoFactory
		OrderRepoFactory
	}

	// ScanUoWFactory creates new scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// InspectionUoW manages transactions for inspection recording, which
	// touches the panel, its inspections and the owning order.
	InspectionUoW interface {
		TxManager
		PanelRepoFactory
		InspectionRepoFactory
		OrderRepoFactory
	}

	// InspectionUoWFactory creates new inspection unit of work instances.
	InspectionUoWFactory interface {
		Create() InspectionUoW
	}

	// PanelUoW manages transactions for panel-only operations.
	PanelUoW interface {
		TxManager
		PanelRepoFactory
	}

	// PanelUoWFactory creates new panel unit of work instances.
	PanelUoWFactory interface {
		Create() PanelUoW
	}

	// ClosureUoW manages the closure transaction, which spans the order, its
	// panels and pallets, the audit trail and the rule set store.
	ClosureUoW interface {
		TxManager
		OrderRepoFactory
		PanelRepoFactory
		PalletRepoFactory
		AuditRepoFactory
		RuleSetRepoFactory
	}

	// ClosureUoWFactory creates new closure unit of work instances.
	ClosureUoWFactory interface {
		Create() ClosureUoW
	}

	// RollbackUoW manages the rollback transaction.
	RollbackUoW interface {
		TxManager
		OrderRepoFactory
		PanelRepoFactory
		AuditRepoFactory
	}

	// RollbackUoWFactory creates new rollback unit of work instances.
	RollbackUoWFactory interface {
		Create() RollbackUoW
	}

	// RulesUoW manages transactions for rule set amendments.
	RulesUoW interface {
		TxManager
		RuleSetRepoFactory
	}

	// RulesUoWFactory creates new rules unit of work instances.
	RulesUoWFactory interface {
		Create() RulesUoW
	}
)

// ProgressInvalidator drops cached progress statistics for an order.
// Handlers that change panel or order state invalidate synchronously after
// a successful commit.
type ProgressInvalidator interface {
	Invalidate(ctx context.Context, orderID string) error
}

// ReportGenerator is the external collaborator that renders a closure
// report from the final statistics snapshot.
type ReportGenerator interface {
	Generate(ctx context.Context, stats order.Statistics) error
}
