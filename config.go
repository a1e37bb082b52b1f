package trimatch

// Config controls pattern compilation: which safety limits apply and
// whether the literal prefilter runs ahead of the DFA scan.
//
// Example:
//
//	config := trimatch.DefaultConfig()
//	config.EnablePrefilter = false // force a full DFA scan always
//	re, err := trimatch.CompileWithConfig(`\d{3}-\d{4}`, config)
type Config struct {
	// EnablePrefilter builds and consults a literal prefilter ahead of
	// MatchString's DFA scan, skipping subjects that cannot possibly
	// match. Patterns with no extractable required literal (AnyChar,
	// ZeroOrMore, inverted classes at the top level, ...) simply run
	// without one regardless of this setting.
	// Default: true
	EnablePrefilter bool

	// MaxPatternLength rejects patterns longer than this many bytes
	// before parsing, so pathological input fails fast.
	// Default: 4096
	MaxPatternLength int

	// MaxNFAStates caps the number of states Thompson construction may
	// produce, passed through to nfa.WithMaxStates.
	// Default: 100000
	MaxNFAStates int

	// MaxDFAStates caps the number of states subset construction may
	// produce, passed through to dfa.WithMaxStates, guarding against
	// the state-count blowup some patterns trigger under determinization.
	// Default: 100000
	MaxDFAStates int
}

// DefaultConfig returns a Config with sensible defaults: prefiltering
// on, and generous but bounded state limits.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:  true,
		MaxPatternLength: 4096,
		MaxNFAStates:     100_000,
		MaxDFAStates:     100_000,
	}
}

// Validate checks that c's fields fall within supported ranges.
//
// Valid ranges:
//   - MaxPatternLength: 1 to 1,000,000
//   - MaxNFAStates: 1 to 10,000,000
//   - MaxDFAStates: 1 to 10,000,000
func (c Config) Validate() error {
	if c.MaxPatternLength < 1 || c.MaxPatternLength > 1_000_000 {
		return &ConfigError{Field: "MaxPatternLength", Message: "must be between 1 and 1,000,000"}
	}
	if c.MaxNFAStates < 1 || c.MaxNFAStates > 10_000_000 {
		return &ConfigError{Field: "MaxNFAStates", Message: "must be between 1 and 10,000,000"}
	}
	if c.MaxDFAStates < 1 || c.MaxDFAStates > 10_000_000 {
		return &ConfigError{Field: "MaxDFAStates", Message: "must be between 1 and 10,000,000"}
	}
	return nil
}
