// Package order provides domain entities and business logic for
// manufacturing order management. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that manages order identity, target
//     quantity, completed-panel count and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - Statistics: the progress read model computed from panel phases
//
// Key business rules:
//   - Orders must have a valid unique identifier, order number and a
//     positive target quantity
//   - Order status follows a defined workflow: Open -> InProgress -> Completed
//   - The completed-panel count never exceeds the target quantity
//   - Completed with a count below target is only reachable through a
//     forced closure; rollback restores the pre-closure status exactly once
//     per closure event
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation to ensure business rules
// are enforced.
package order
