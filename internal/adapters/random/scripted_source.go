package random

// ScriptedSource replays fixed draws in order. Once a queue is exhausted it returns zero.
type ScriptedSource struct {
	Ints   []int
	Floats []float64
}

func NewScriptedSource(ints []int, floats []float64) *ScriptedSource {
	return &ScriptedSource{Ints: ints, Floats: floats}
}

func (s *ScriptedSource) IntN(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v % n
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
