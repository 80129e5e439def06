// Package queries contains read-only operations in the CQRS architecture.
// Query handlers go straight to the database and map rows into response
// structs; they never mutate state. Actor scoping mirrors the authorization
// policy: requesters see only their own orders, everyone else sees all.
package queries
