// Package purchase provides the domain model for procurement requests. It
// implements the Purchase aggregate root together with the two coupled state
// machines that govern its lifecycle.
//
// The package includes:
//   - Purchase: the aggregate root owning identity, requester-supplied
//     fields, derived values, and every cross-machine invariant
//   - ApprovalStatus: the two-stage approval workflow
//     (sublead -> executive -> fully approved, with rejection)
//   - Status: the fulfillment pipeline
//     (not yet purchased -> purchased -> shipped -> arrived, with cancellation)
//   - Urgency and the subteam/subproject vocabulary
//
// Key business rules:
//   - Orders must name an item, a vendor, and a valid subteam; quantity is
//     positive and monetary amounts are non-negative
//   - An order skips the executive approval stage unless it is flagged
//     special/large or its price exceeds the configured threshold
//   - Purchasing requires full approval; rejection permanently blocks it
//   - Arrival requires an arrival photo artifact reference
//   - Soft delete hides an order reversibly without touching either machine
//
// Both machines are expressed as explicit transition tables; the tables are
// the primary unit-test target. The package follows Domain-Driven Design
// principles, with private fields and validated methods enforcing all rules.
package purchase
