package vmath

// SequenceSource replays a fixed list of draws, cycling when exhausted
// Used to script spawn decisions deterministically
type SequenceSource struct {
	values []float64
	pos    int
	Draws  int
}

// NewSequenceSource creates a source that yields values in order
// An empty list yields 0 forever
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	s.Draws++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// ConstSource always returns the same draw
type ConstSource float64

func (c ConstSource) Float64() float64 {
	return float64(c)
}
