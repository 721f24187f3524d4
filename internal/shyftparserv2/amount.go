package shyftparserv2

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/AlekSi/pointer"
)

// formatAmount converts an exact atomic-unit delta into its minimal decimal
// string representation: trailing fractional zeros stripped, the decimal
// point itself omitted when nothing survives the strip. big.Int division
// is used rather than int64 arithmetic so the same code path is safe if a
// future caller feeds amounts beyond the 64-bit range explored by this
// package's tests.
func formatAmount(delta int64, decimals uint8, scale int64) string {
	abs := big.NewInt(delta)
	abs.Abs(abs)

	intPart := new(big.Int)
	rem := new(big.Int)
	intPart.QuoRem(abs, big.NewInt(scale), rem)

	if rem.Sign() == 0 {
		return intPart.String()
	}

	padded := fmt.Sprintf("%0*s", int(decimals), rem.String())
	stripped := strings.TrimRight(padded, "0")
	if stripped == "" {
		return intPart.String()
	}
	return intPart.String() + "." + stripped
}

// AmountNormalizer converts the verified entry/exit pair into decimal-string
// amounts.
type AmountNormalizer struct{}

// NewAmountNormalizer builds the normalizer. It carries no configuration.
func NewAmountNormalizer() *AmountNormalizer {
	return &AmountNormalizer{}
}

// Normalize returns Amounts for the given direction: BUY sets
// total_wallet_cost from entry, SELL sets net_wallet_received from exit.
// Callers must ensure entry.Delta < 0 and exit.Delta > 0 before calling.
func (n *AmountNormalizer) Normalize(direction Direction, entry, exit AssetDelta) Amounts {
	entryFormatted := formatAmount(entry.Delta, entry.Decimals, entry.Scale)
	exitFormatted := formatAmount(exit.Delta, exit.Decimals, exit.Scale)

	if direction == DirectionBuy {
		return Amounts{BaseAmount: exitFormatted, TotalWalletCost: pointer.ToString(entryFormatted)}
	}

	return Amounts{BaseAmount: entryFormatted, NetWalletReceived: pointer.ToString(exitFormatted)}
}
