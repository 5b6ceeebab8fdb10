package engine

import "errors"

var (
	// ErrShipNotReady is returned by ship operations before a ship is spawned
	ErrShipNotReady = errors.New("ship not ready")
	// ErrInvalidCategory is returned when an entity does not carry exactly one known category
	ErrInvalidCategory = errors.New("invalid collision category")
)
