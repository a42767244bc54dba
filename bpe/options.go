package bpe

// TieBreakFunc reports whether pair x should be preferred over pair y when
// both are tied for the highest count during Fit. It must be a pure
// function of (x, y) so that Fit is reproducible given identical input.
type TieBreakFunc func(x, y [2]int) bool

// lexicographicTieBreak is the default tie-break: the pair that is smaller
// lexicographically (compare a, then b) wins.
func lexicographicTieBreak(x, y [2]int) bool {
	if x[0] != y[0] {
		return x[0] < y[0]
	}
	return x[1] < y[1]
}

// tokenizerConfig holds configuration gathered from Option values before a
// Tokenizer is constructed.
type tokenizerConfig struct {
	tieBreak TieBreakFunc
}

func defaultConfig() *tokenizerConfig {
	return &tokenizerConfig{
		tieBreak: lexicographicTieBreak,
	}
}

// Option configures a Tokenizer at construction time.
type Option func(*tokenizerConfig) error

// WithTieBreak overrides the rule used to pick a winner among pairs tied
// for the highest count during Fit. The default is lexicographic: the pair
// with the smaller (a, b) wins.
func WithTieBreak(f TieBreakFunc) Option {
	return func(cfg *tokenizerConfig) error {
		if f == nil {
			return ErrInvalidOption
		}
		cfg.tieBreak = f
		return nil
	}
}
