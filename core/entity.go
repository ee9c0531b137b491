package core

// Entity is a unique identifier for an entity
// Zero is never allocated and doubles as the "no entity" value
type Entity uint64
