package shortener

func NewWithSeed(length int, seed func() [12]byte) *Shortener {
	s := New(length)
	s.seed = seed
	return s
}
