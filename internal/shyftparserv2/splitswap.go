package shyftparserv2

// SplitResult is the result of a SplitSwapDetector run.
type SplitResult struct {
	EntryIsCore   bool
	ExitIsCore    bool
	SplitRequired bool
}

// SplitSwapDetector flags whether the swap moves entirely between two
// non-core tokens, in which case a future extension may decompose it into
// two ParsedSwaps (reserved; not yet implemented).
type SplitSwapDetector struct {
	cfg *Config
}

// NewSplitSwapDetector builds a SplitSwapDetector bound to cfg's
// CORE_TOKENS.
func NewSplitSwapDetector(cfg *Config) *SplitSwapDetector {
	return &SplitSwapDetector{cfg: cfg}
}

// Detect reads entry/exit core membership off the Role-tagged assets.
func (d *SplitSwapDetector) Detect(entry, exit AssetDelta) SplitResult {
	entryIsCore := d.cfg.IsCoreToken(entry.Mint)
	exitIsCore := d.cfg.IsCoreToken(exit.Mint)
	return SplitResult{
		EntryIsCore:   entryIsCore,
		ExitIsCore:    exitIsCore,
		SplitRequired: !entryIsCore && !exitIsCore,
	}
}
