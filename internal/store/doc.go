// Package store defines the persistence interfaces for the shopping
// list service along with common store errors and transaction helpers.
package store
