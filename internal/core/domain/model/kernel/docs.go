// Package kernel contains shared value objects used across the procurement
// domain model.
//
// The package includes:
//   - Money: a non-negative monetary amount stored as integer cents, so
//     that cost totals and rollup sums are exact
//   - ArtifactRef: an opaque reference to an externally stored file, such
//     as the arrival photo attached when an order is marked as arrived
//
// Value objects in this package are immutable and validated on
// construction. The engine never stores or uploads artifacts itself; it
// only carries their references.
package kernel
