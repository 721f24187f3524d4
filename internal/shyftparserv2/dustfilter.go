package shyftparserv2

// DustFilter drops entries whose absolute delta is at or below the
// decimals-dependent dust threshold.
type DustFilter struct{}

// NewDustFilter builds a DustFilter. It has no configuration: the dust
// threshold is a pure function of decimals (DustThreshold), not a value
// carried in Config.
func NewDustFilter() *DustFilter {
	return &DustFilter{}
}

// Filter keeps a change iff |delta| strictly exceeds DustThreshold(decimals).
func (f *DustFilter) Filter(changes []BalanceChange) []BalanceChange {
	out := make([]BalanceChange, 0, len(changes))
	for _, bc := range changes {
		d := bc.Delta()
		if d < 0 {
			d = -d
		}
		if d > DustThreshold(bc.Decimals) {
			out = append(out, bc)
		}
	}
	return out
}
