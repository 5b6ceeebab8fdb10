package core

// Entity is a unique identifier for a world entity
type Entity uint64

// NoEntity is never assigned by the world
const NoEntity Entity = 0
