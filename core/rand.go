package core

// Linear congruential generator constants (numerical recipes variant).
const (
	lcgMultiplier uint64 = 1664525
	lcgIncrement  uint64 = 1013904223
	lcgModulus    uint64 = 1 << 32
)

// Stream is a deterministic pseudo-random source seeded from a catalog
// identifier. Two streams built from the same identifier always produce the
// same sequence, which keeps every synthetic artifact reproducible without
// any persisted state. Not safe for concurrent use; batch workers each own
// their streams.
type Stream struct {
	state uint64
}

// NewStream seeds a stream by summing the identifier's character codes.
func NewStream(identifier string) *Stream {
	var seed uint64
	for _, r := range identifier {
		seed += uint64(r)
	}
	return &Stream{state: seed % lcgModulus}
}

// Next advances the stream and returns a value in [0, 1).
func (s *Stream) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / float64(lcgModulus)
}

// Range advances the stream and returns a value in [min, max).
func (s *Stream) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}
