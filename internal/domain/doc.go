// Package domain defines the core business entities of the shopping
// list service: users, shopping lists, and their items.
package domain
