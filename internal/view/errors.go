package view

import "errors"

// Sentinel errors for registry and cell operations.
var (
	// ErrTypeMismatch is returned when a checked cell inspection asks
	// for a concrete view type the cell does not hold.
	ErrTypeMismatch = errors.New("view: cell holds a different view type")

	// ErrTagNotFound is returned when a tag lookup finds no live cell.
	ErrTagNotFound = errors.New("view: no cell registered under tag")
)
