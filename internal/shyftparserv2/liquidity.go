package shyftparserv2

import "strings"

// LiquidityOp classifies an instruction list as touching an AMM's liquidity
// pool, as opposed to trading against it. This never changes a pipeline
// outcome — it only adds a liquidity_shape field to the orchestrator's log
// line for both successes and rejections, so a reader of the log can tell
// "rejected because it was a pool deposit" from "rejected, cause unclear"
// without the closed EraseReason set growing an eighth variant. It is not
// part of a ParseError's debug_info.
type LiquidityOp int

const (
	LiquidityOpNone LiquidityOp = iota
	LiquidityOpAdd
	LiquidityOpRemove
)

func (l LiquidityOp) String() string {
	switch l {
	case LiquidityOpAdd:
		return "add_liquidity"
	case LiquidityOpRemove:
		return "remove_liquidity"
	default:
		return "none"
	}
}

// addLiquidityNames / removeLiquidityNames are the decoded instruction
// names known to represent pool deposits/withdrawals across the common AMM
// programs (Raydium, Orca, Meteora-family). Matching is case-insensitive
// substring, since different upstream decoders normalize casing
// differently (e.g. "addLiquidity" vs "AddLiquidity").
var (
	addLiquidityNames = []string{
		"addliquidity",
		"increaseliquidity",
		"deposit",
	}
	removeLiquidityNames = []string{
		"removeliquidity",
		"decreaseliquidity",
		"withdraw",
	}
)

func matchesAny(name string, candidates []string) bool {
	lower := strings.ToLower(name)
	for _, c := range candidates {
		if strings.Contains(lower, c) {
			return true
		}
	}
	return false
}

// ClassifyInstructionShape inspects the decoded instruction names for
// liquidity-pool operations. It operates on Instruction.Name rather than
// raw instruction bytes, since the pipeline's data model never carries raw
// bytes (decoding the wire format is upstream's job).
func ClassifyInstructionShape(instructions []Instruction) LiquidityOp {
	sawAdd, sawRemove := false, false
	for _, ix := range instructions {
		if ix.Name == "" {
			continue
		}
		if matchesAny(ix.Name, removeLiquidityNames) {
			sawRemove = true
		} else if matchesAny(ix.Name, addLiquidityNames) {
			sawAdd = true
		}
	}
	switch {
	case sawRemove:
		return LiquidityOpRemove
	case sawAdd:
		return LiquidityOpAdd
	default:
		return LiquidityOpNone
	}
}
