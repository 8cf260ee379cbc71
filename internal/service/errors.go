// Package service implements the shopping list business rules on top
// of the store interfaces.
package service

import "errors"

// Shopping list business rule errors.
var (
	// ErrOpenListExists is returned when creating or reopening a list
	// would leave the user with more than one open list.
	ErrOpenListExists = errors.New("cannot have more than one open list")

	// ErrEmptyList is returned when a list would be created without items.
	ErrEmptyList = errors.New("cannot create an empty shopping list")
)
