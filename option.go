package promptwire

// FitterOption configures Fitter (functional options pattern).
type FitterOption func(*Fitter)

// WithReserve sets the number of tokens reserved for the model answer.
// Defaults to DefaultReserve.
func WithReserve(n int) FitterOption {
	return func(f *Fitter) {
		f.reserve = n
	}
}
