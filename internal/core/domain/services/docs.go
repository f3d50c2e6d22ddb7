// Package services provides stateless domain services for the production
// workflow. These services encapsulate business logic that spans aggregates
// and does not naturally belong to a single entity.
//
// Services:
//   - StationGate: the pure predicate deciding whether a panel may enter a
//     station, naming the missing pass inspection on denial
//   - ReadinessAssessor: evaluates a closure rule set against an order's
//     progress statistics and produces a weighted readiness score with a
//     deterministic blocker list
//
// Both services are pure: they take domain objects as input and never touch
// persistence, which keeps them trivially testable.
package services
