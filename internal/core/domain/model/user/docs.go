// Package user provides the User entity and the role vocabulary. Users are
// actors on purchase orders; their role decides their capabilities via the
// authorization policy in the services layer.
package user
