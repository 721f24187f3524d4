package shyftparserv2

// RentRefundFilter drops small positive SOL credits that represent rent
// refunds rather than swap economics.
type RentRefundFilter struct {
	cfg *Config
}

// NewRentRefundFilter builds a RentRefundFilter bound to cfg's SOL_MINT; the
// cutoff is the package constant RentThreshold.
func NewRentRefundFilter(cfg *Config) *RentRefundFilter {
	return &RentRefundFilter{cfg: cfg}
}

// Filter returns the surviving changes and whether any rent refund was
// dropped.
func (f *RentRefundFilter) Filter(changes []BalanceChange) ([]BalanceChange, bool) {
	hasNonSolDelta := false
	for _, bc := range changes {
		if bc.Mint != f.cfg.SolMint && bc.Delta() != 0 {
			hasNonSolDelta = true
			break
		}
	}

	out := make([]BalanceChange, 0, len(changes))
	filtered := false
	for _, bc := range changes {
		if bc.Mint == f.cfg.SolMint {
			d := bc.Delta()
			if d > 0 && d < RentThreshold && hasNonSolDelta {
				filtered = true
				continue
			}
		}
		out = append(out, bc)
	}

	return out, filtered
}
