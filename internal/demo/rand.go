package demo

// modulus is the Park-Miller prime 2^31 - 1.
const (
	modulus    = 2147483647
	multiplier = 16807
)

// source is a Park-Miller minimal standard generator. Each Generate call owns
// its own source so runs never interfere.
type source struct {
	state int64
}

func newSource(seed int64) *source {
	s := seed % modulus
	if s <= 0 {
		s += modulus - 1
	}
	return &source{state: s}
}

// next advances the state and returns a value in [0, 1).
func (s *source) next() float64 {
	s.state = s.state * multiplier % modulus
	return float64(s.state-1) / float64(modulus-1)
}

// intn returns a value in [0, n).
func (s *source) intn(n int) int {
	return int(s.next() * float64(n))
}
