package testutils

// ScriptedSource replays fixed random values so draws are predictable.
// Once a script runs out it keeps returning zero.
type ScriptedSource struct {
	Ints   []int
	Floats []float64
}

// IntN returns the next scripted integer modulo n
func (s *ScriptedSource) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}

// Float64 returns the next scripted float
func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
