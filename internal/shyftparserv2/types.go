// Package shyftparserv2 turns a raw Solana transaction's balance deltas into
// a canonical description of any token swap it contains.
package shyftparserv2

import (
	"encoding/json"
	"fmt"
)

// Role classifies one AssetDelta's part in a swap.
type Role int

const (
	RoleIntermediate Role = iota
	RoleEntry
	RoleExit
)

func (r Role) String() string {
	switch r {
	case RoleEntry:
		return "entry"
	case RoleExit:
		return "exit"
	default:
		return "intermediate"
	}
}

// MarshalJSON serializes Role as its lowercase snake_case identifier — the
// serialized representation required for every enum in this package.
func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Direction is the economic direction of a swap from the swapper's point of view.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionBuy
	DirectionSell
)

func (d Direction) String() string {
	switch d {
	case DirectionBuy:
		return "buy"
	case DirectionSell:
		return "sell"
	default:
		return "unknown"
	}
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// IdentificationMethod records how the swapper was selected.
//
// Tier1 is reserved for a future upstream hint; no stage in this
// implementation produces it, but it must remain a valid value so callers
// can round-trip it.
type IdentificationMethod int

const (
	MethodUnknown IdentificationMethod = iota
	MethodTier1
	MethodTier2
	MethodLargestDelta
)

func (m IdentificationMethod) String() string {
	switch m {
	case MethodTier1:
		return "tier1"
	case MethodTier2:
		return "tier2"
	case MethodLargestDelta:
		return "largest_delta"
	default:
		return "unknown"
	}
}

func (m IdentificationMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// BalanceChange is one raw row from upstream: a single account's net change
// in one mint over the lifetime of a transaction.
type BalanceChange struct {
	Mint      string `json:"mint"`
	Owner     string `json:"owner"`
	PreDelta  int64  `json:"pre_delta"`
	PostDelta int64  `json:"post_delta"`
	Decimals  uint8  `json:"decimals"`
	Scale     int64  `json:"scale"` // invariant: Scale == 10^Decimals
}

// Delta is the signed net change represented by this row.
func (b BalanceChange) Delta() int64 {
	return b.PostDelta - b.PreDelta
}

// AssetDelta is an owner's net change in one mint, annotated with its role
// in the swap once the pipeline has classified it.
type AssetDelta struct {
	Mint     string `json:"mint"`
	Owner    string `json:"owner"`
	Decimals uint8  `json:"decimals"`
	Scale    int64  `json:"scale"`
	Delta    int64  `json:"delta"`
	Role     Role   `json:"role"`
}

// Instruction is a decoded instruction reference: a program id and an
// optional human name (e.g. "transfer", "transferChecked"). Raw instruction
// bytes are not part of this data model — decoding the wire format is
// upstream's job.
type Instruction struct {
	ProgramID string `json:"program_id"`
	Name      string `json:"name,omitempty"` // optional; empty if unknown
}

// TransactionMeta carries the signer set the pipeline needs to identify
// the fee payer and to gate HybridRecovery.
type TransactionMeta struct {
	Signers      []string      `json:"signers"`
	FeePayer     string        `json:"fee_payer"` // invariant: FeePayer is one of Signers
	Instructions []Instruction `json:"instructions"`
}

// RawTransaction is the complete input to the pipeline.
type RawTransaction struct {
	Signature       string          `json:"signature"`
	Timestamp       *int64          `json:"timestamp,omitempty"`
	Protocol        *string         `json:"protocol,omitempty"`
	BalanceChanges  []BalanceChange `json:"balance_changes"`
	TransactionMeta TransactionMeta `json:"transaction_meta"`
}

// Asset identifies a mint for output purposes.
type Asset struct {
	Mint     string `json:"mint"`
	Decimals uint8  `json:"decimals"`
}

// Amounts carries the decimal-string amounts for a parsed swap. Exactly one
// of TotalWalletCost / NetWalletReceived is set, driven by Direction.
type Amounts struct {
	BaseAmount        string  `json:"base_amount"`
	TotalWalletCost   *string `json:"total_wallet_cost,omitempty"`
	NetWalletReceived *string `json:"net_wallet_received,omitempty"`
}

// ParsedSwap is the canonical output of one successful pipeline run.
type ParsedSwap struct {
	Signature                   string               `json:"signature"`
	Timestamp                   int64                `json:"timestamp"`
	Swapper                     string               `json:"swapper"`
	Direction                   Direction            `json:"direction"`
	BaseAsset                   Asset                `json:"base_asset"`
	QuoteAsset                  Asset                `json:"quote_asset"`
	Amounts                     Amounts              `json:"amounts"`
	Confidence                  int                  `json:"confidence"`
	Protocol                    string               `json:"protocol"`
	SwapperIdentificationMethod IdentificationMethod `json:"swapper_identification_method"`
	RentRefundsFiltered         bool                 `json:"rent_refunds_filtered"`
	IntermediateAssetsCollapsed bool                 `json:"intermediate_assets_collapsed"`
}

// String renders a ParsedSwap for log lines and debugging; it is never used
// for the JSON serialized representation.
func (p ParsedSwap) String() string {
	return fmt.Sprintf("ParsedSwap{signature=%s swapper=%s direction=%s base=%s quote=%s}",
		p.Signature, p.Swapper, p.Direction, p.BaseAsset.Mint, p.QuoteAsset.Mint)
}
