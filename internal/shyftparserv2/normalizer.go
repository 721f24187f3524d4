package shyftparserv2

// SolNormalizer collapses every SOL-equivalent mint (native + wrapped
// variants) per owner into a single synthetic SOL balance change, so every
// later stage sees at most one SOL-denominated row per owner.
type SolNormalizer struct {
	cfg *Config
}

// NewSolNormalizer builds a SolNormalizer bound to cfg's SOL_EQUIVALENTS set.
func NewSolNormalizer(cfg *Config) *SolNormalizer {
	return &SolNormalizer{cfg: cfg}
}

// Normalize cannot fail: every input row is either passed through or folded
// into a synthetic SOL row.
func (n *SolNormalizer) Normalize(changes []BalanceChange) []BalanceChange {
	out := make([]BalanceChange, 0, len(changes))
	solSum := make(map[string]int64)
	seenOwner := make(map[string]bool)
	var ownerOrder []string

	for _, bc := range changes {
		if !n.cfg.IsSolEquivalent(bc.Mint) {
			out = append(out, bc)
			continue
		}
		if !seenOwner[bc.Owner] {
			seenOwner[bc.Owner] = true
			ownerOrder = append(ownerOrder, bc.Owner)
		}
		solSum[bc.Owner] += bc.Delta()
	}

	for _, owner := range ownerOrder {
		summed := solSum[owner]
		if summed == 0 {
			continue
		}
		out = append(out, BalanceChange{
			Mint:      n.cfg.SolMint,
			Owner:     owner,
			PreDelta:  0,
			PostDelta: summed,
			Decimals:  SolDecimals,
			Scale:     SolScale,
		})
	}

	return out
}
