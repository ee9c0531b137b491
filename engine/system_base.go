package engine

// System is a per-tick processor; lower Priority runs first
type System interface {
	Name() string
	Priority() int
	Update()
}
