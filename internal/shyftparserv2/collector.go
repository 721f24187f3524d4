package shyftparserv2

import "math/big"

// AssetCollection is the result of a successful AssetDeltaCollector (or
// HybridRecovery) run: exactly two active assets, one Entry and one Exit.
type AssetCollection struct {
	Assets                      [2]AssetDelta
	IntermediateAssetsCollapsed bool
}

// AssetDeltaCollector reduces the swapper's post-filter changes to exactly
// two AssetDeltas.
type AssetDeltaCollector struct {
	cfg *Config
}

// NewAssetDeltaCollector builds an AssetDeltaCollector.
func NewAssetDeltaCollector(cfg *Config) *AssetDeltaCollector {
	return &AssetDeltaCollector{cfg: cfg}
}

// magnitudeGreater reports whether a's delta magnitude, normalized to
// 10^decimals, exceeds c's: |a.delta|*c.scale > |c.delta|*a.scale. Computed
// with math/big because the cross-multiplication can overflow 64 bits for
// high-decimals tokens with deltas near the int64 range.
func magnitudeGreater(a, c AssetDelta) bool {
	absA := big.NewInt(a.Delta)
	absA.Abs(absA)
	absC := big.NewInt(c.Delta)
	absC.Abs(absC)

	lhs := new(big.Int).Mul(absA, big.NewInt(c.Scale))
	rhs := new(big.Int).Mul(absC, big.NewInt(a.Scale))
	return lhs.Cmp(rhs) > 0
}

// Collect filters changes to the swapper's own rows and picks the two
// assets (Entry, Exit) that represent the swap. On fewer than two qualifying
// assets it signals ok=false so the caller can attempt HybridRecovery before
// erasing with ReasonInvalidAssetCount.
func (c *AssetDeltaCollector) Collect(changes []BalanceChange, swapper string) (AssetCollection, bool) {
	var swapperAssets []AssetDelta
	for _, bc := range changes {
		if bc.Owner != swapper {
			continue
		}
		swapperAssets = append(swapperAssets, AssetDelta{
			Mint:     bc.Mint,
			Owner:    bc.Owner,
			Decimals: bc.Decimals,
			Scale:    bc.Scale,
			Delta:    bc.Delta(),
			Role:     RoleIntermediate,
		})
	}

	if len(swapperAssets) < 2 {
		return AssetCollection{}, false
	}

	if len(swapperAssets) == 2 {
		return assignEntryExit(swapperAssets[0], swapperAssets[1], false), true
	}

	var entry, exit AssetDelta
	haveEntry, haveExit := false, false
	for _, a := range swapperAssets {
		switch {
		case a.Delta < 0:
			if !haveEntry || magnitudeGreater(a, entry) {
				entry = a
				haveEntry = true
			}
		case a.Delta > 0:
			if !haveExit || magnitudeGreater(a, exit) {
				exit = a
				haveExit = true
			}
		}
	}

	if !haveEntry || !haveExit {
		return assignEntryExit(swapperAssets[0], swapperAssets[1], true), true
	}

	entry.Role = RoleEntry
	exit.Role = RoleExit
	return AssetCollection{Assets: [2]AssetDelta{entry, exit}, IntermediateAssetsCollapsed: true}, true
}

// assignEntryExit assigns roles by sign when exactly two candidates are in
// play, falling back deterministically (first as Entry, second as Exit)
// when the signs don't cleanly separate — the subsequent sign validator
// rejects the result if it still doesn't meet requirements.
func assignEntryExit(a, b AssetDelta, collapsed bool) AssetCollection {
	switch {
	case a.Delta < 0 && b.Delta > 0:
		a.Role, b.Role = RoleEntry, RoleExit
	case b.Delta < 0 && a.Delta > 0:
		a.Role, b.Role = RoleExit, RoleEntry
	default:
		a.Role, b.Role = RoleEntry, RoleExit
	}
	return AssetCollection{Assets: [2]AssetDelta{a, b}, IntermediateAssetsCollapsed: collapsed}
}

// HybridRecovery rescues transactions where the swapper's token account
// didn't round-trip through the expected two-asset balance model, by
// borrowing the largest core-token movement from anywhere in the
// transaction.
type HybridRecovery struct {
	cfg *Config
}

// NewHybridRecovery builds a HybridRecovery bound to cfg.
func NewHybridRecovery(cfg *Config) *HybridRecovery {
	return &HybridRecovery{cfg: cfg}
}

func isAllTransferInstructions(instructions []Instruction, tokenProgramID string) bool {
	if len(instructions) == 0 {
		return false
	}
	for _, ix := range instructions {
		if ix.ProgramID != tokenProgramID {
			return false
		}
		if ix.Name != "transfer" && ix.Name != "transferChecked" {
			return false
		}
	}
	return true
}

// Recover attempts the hybrid reconstruction. ok is false if any gate
// condition fails, in which case the caller must surface the original
// ReasonInvalidAssetCount erase.
func (h *HybridRecovery) Recover(allChanges []BalanceChange, swapper string, meta TransactionMeta) (AssetCollection, bool) {
	if swapper != meta.FeePayer {
		return AssetCollection{}, false
	}
	if isAllTransferInstructions(meta.Instructions, h.cfg.TokenProgramID) {
		return AssetCollection{}, false
	}

	swapperByMint := make(map[string]int64)
	var mintOrder []string
	for _, bc := range allChanges {
		if bc.Owner != swapper {
			continue
		}
		if _, ok := swapperByMint[bc.Mint]; !ok {
			mintOrder = append(mintOrder, bc.Mint)
		}
		swapperByMint[bc.Mint] += bc.Delta()
	}

	var nonZeroMint string
	nonZeroCount := 0
	for _, mint := range mintOrder {
		if swapperByMint[mint] != 0 {
			nonZeroCount++
			nonZeroMint = mint
		}
	}
	if nonZeroCount != 1 || h.cfg.IsCoreToken(nonZeroMint) {
		return AssetCollection{}, false
	}

	var nonCoreDecimals uint8
	var nonCoreScale int64
	for _, bc := range allChanges {
		if bc.Owner == swapper && bc.Mint == nonZeroMint {
			nonCoreDecimals = bc.Decimals
			nonCoreScale = bc.Scale
			break
		}
	}

	var bestCore BalanceChange
	haveCore := false
	for _, bc := range allChanges {
		if !h.cfg.IsCoreToken(bc.Mint) {
			continue
		}
		d := bc.Delta()
		if d == 0 {
			continue
		}
		if !haveCore {
			bestCore = bc
			haveCore = true
			continue
		}
		abs := d
		if abs < 0 {
			abs = -abs
		}
		bestAbs := bestCore.Delta()
		if bestAbs < 0 {
			bestAbs = -bestAbs
		}
		if abs > bestAbs {
			bestCore = bc
		}
	}
	if !haveCore {
		return AssetCollection{}, false
	}

	nonCoreDelta := swapperByMint[nonZeroMint]
	coreAbs := bestCore.Delta()
	if coreAbs < 0 {
		coreAbs = -coreAbs
	}

	nonCore := AssetDelta{
		Mint:     nonZeroMint,
		Owner:    swapper,
		Decimals: nonCoreDecimals,
		Scale:    nonCoreScale,
		Delta:    nonCoreDelta,
	}
	core := AssetDelta{
		Mint:     bestCore.Mint,
		Owner:    bestCore.Owner,
		Decimals: bestCore.Decimals,
		Scale:    bestCore.Scale,
	}
	if nonCoreDelta > 0 {
		core.Delta = -coreAbs
		nonCore.Role = RoleExit
		core.Role = RoleEntry
	} else {
		core.Delta = coreAbs
		nonCore.Role = RoleEntry
		core.Role = RoleExit
	}

	return AssetCollection{Assets: [2]AssetDelta{nonCore, core}, IntermediateAssetsCollapsed: false}, true
}
