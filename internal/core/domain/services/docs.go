// Package services contains stateless domain services operating across
// aggregates: the role-based authorization policy and the statistics
// aggregator. Both are pure; persistence and transport stay outside.
package services
