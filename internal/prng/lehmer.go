package prng

const (
	lehmerModulus    = 2147483647
	lehmerMultiplier = 16807
)

// Lehmer is the minimal standard multiplicative congruential generator.
//
// Seeds are reduced into [0, 2^31-1) with Euclidean modulo and a residue of
// zero is replaced by one, so every int64 seed yields a valid state.
type Lehmer struct {
	state int64
}

func NewLehmer() *Lehmer {
	l := &Lehmer{}
	l.Seed(1)
	return l
}

func (l *Lehmer) Seed(v int64) {
	s := v % lehmerModulus
	if s < 0 {
		s += lehmerModulus
	}
	if s == 0 {
		s = 1
	}
	l.state = s
}

// Draw advances the generator and returns the raw state.
func (l *Lehmer) Draw() int64 {
	l.state = l.state * lehmerMultiplier % lehmerModulus
	return l.state
}

func (l *Lehmer) Next() float64 {
	return float64(l.Draw()) / lehmerModulus
}
