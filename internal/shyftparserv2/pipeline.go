package shyftparserv2

import "github.com/sirupsen/logrus"

// Pipeline wires every stage in the fixed order the swap-detection contract
// requires and owns the single structured log line emitted per invocation.
// Stage swapping is not a valid configuration: the order is part of the
// contract (e.g. dust filtering before SOL normalization would break
// wrapped-SOL netting).
type Pipeline struct {
	cfg *Config
	log *logrus.Logger

	solNormalizer         *SolNormalizer
	swapperIdentifier     *SwapperIdentifier
	rentRefundFilter      *RentRefundFilter
	dustFilter            *DustFilter
	assetDeltaCollector   *AssetDeltaCollector
	hybridRecovery        *HybridRecovery
	economicDeltaValidator *SwapperEconomicDeltaValidator
	signValidator         *DeltaSignValidator
	transferDetector      *TransferDetector
	splitSwapDetector     *SplitSwapDetector
	directionClassifier   *DirectionClassifier
	amountNormalizer      *AmountNormalizer
	outputGenerator       *OutputGenerator
}

// NewPipeline builds a Pipeline bound to cfg. cfg must outlive every call to
// Run: the pipeline never copies or mutates it.
func NewPipeline(cfg *Config) *Pipeline {
	return &Pipeline{
		cfg:                   cfg,
		log:                   newLogger(),
		solNormalizer:         NewSolNormalizer(cfg),
		swapperIdentifier:     NewSwapperIdentifier(cfg, newLogger()),
		rentRefundFilter:      NewRentRefundFilter(cfg),
		dustFilter:            NewDustFilter(),
		assetDeltaCollector:   NewAssetDeltaCollector(cfg),
		hybridRecovery:        NewHybridRecovery(cfg),
		economicDeltaValidator: NewSwapperEconomicDeltaValidator(),
		signValidator:         NewDeltaSignValidator(),
		transferDetector:      NewTransferDetector(cfg),
		splitSwapDetector:     NewSplitSwapDetector(cfg),
		directionClassifier:   NewDirectionClassifier(),
		amountNormalizer:      NewAmountNormalizer(),
		outputGenerator:       NewOutputGenerator(),
	}
}

func countSwapperAssets(changes []BalanceChange, swapper string) int {
	n := 0
	for _, bc := range changes {
		if bc.Owner == swapper {
			n++
		}
	}
	return n
}

func findByRole(assets [2]AssetDelta, role Role) (AssetDelta, bool) {
	for _, a := range assets {
		if a.Role == role {
			return a, true
		}
	}
	return AssetDelta{}, false
}

func (p *Pipeline) erase(tx *RawTransaction, reason EraseReason, debug DebugInfo) Outcome {
	p.log.WithFields(logrus.Fields{
		"signature": tx.Signature,
		"outcome":   "erase",
		"reason":    reason.String(),
		"liquidity_shape": ClassifyInstructionShape(tx.TransactionMeta.Instructions).String(),
	}).Info("shyftparserv2: transaction rejected as swap")
	return Erase{Error: ParseError{Signature: tx.Signature, Reason: reason, Debug: debug}}
}

// Run executes the pipeline against one RawTransaction. The returned
// *FatalError is non-nil only for invariant violations — malformed input or
// an unreachable internal state — and must never be treated as a business
// rejection: callers should fail loudly rather than fold it into Erase.
func (p *Pipeline) Run(tx *RawTransaction) (Outcome, *FatalError) {
	if fatal := ValidateRawTransaction(tx); fatal != nil {
		return nil, fatal
	}

	normalized := p.solNormalizer.Normalize(tx.BalanceChanges)

	ident, ok := p.swapperIdentifier.Identify(normalized, tx.TransactionMeta)
	if !ok {
		return p.erase(tx, ReasonNoEconomicDelta, DebugInfo{}), nil
	}

	rentFiltered, rentFlag := p.rentRefundFilter.Filter(normalized)
	dustFiltered := p.dustFilter.Filter(rentFiltered)

	collection, ok := p.assetDeltaCollector.Collect(dustFiltered, ident.Swapper)
	if !ok {
		recovered, recoveredOk := p.hybridRecovery.Recover(dustFiltered, ident.Swapper, tx.TransactionMeta)
		if !recoveredOk {
			return p.erase(tx, ReasonInvalidAssetCount, DebugInfo{
				ActiveAssetCount: countSwapperAssets(dustFiltered, ident.Swapper),
			}), nil
		}
		collection = recovered
	}

	if !p.economicDeltaValidator.Validate(collection.Assets, ident.Swapper) {
		return p.erase(tx, ReasonSwapperNoDelta, DebugInfo{}), nil
	}

	positives, negatives := p.signValidator.SignCounts(collection.Assets)
	if positives == 0 {
		return p.erase(tx, ReasonNoPositiveDeltas, DebugInfo{PositiveDeltaCount: positives, NegativeDeltaCount: negatives}), nil
	}
	if negatives == 0 {
		return p.erase(tx, ReasonNoNegativeDeltas, DebugInfo{PositiveDeltaCount: positives, NegativeDeltaCount: negatives}), nil
	}

	transferDetection := p.transferDetector.Detect(collection.Assets, tx.TransactionMeta.Instructions)
	if !transferDetection.HasNonCoreToken {
		if transferDetection.IsTransfer {
			return p.erase(tx, ReasonPureTransfer, DebugInfo{}), nil
		}
		return p.erase(tx, ReasonCoreOnlySwap, DebugInfo{}), nil
	}

	entry, hasEntry := findByRole(collection.Assets, RoleEntry)
	exit, hasExit := findByRole(collection.Assets, RoleExit)
	if !hasEntry || !hasExit {
		return nil, fatalf("Pipeline.Run", "active assets missing an Entry/Exit role after sign validation for %s", tx.Signature)
	}

	split := p.splitSwapDetector.Detect(entry, exit)

	direction, fatal := p.directionClassifier.Classify(split)
	if fatal != nil {
		return nil, fatal
	}

	amounts := p.amountNormalizer.Normalize(direction, entry, exit)

	swap := p.outputGenerator.Generate(GenerateInput{
		Signature:                   tx.Signature,
		Timestamp:                   tx.Timestamp,
		Protocol:                    tx.Protocol,
		Swapper:                     ident.Swapper,
		Direction:                   direction,
		Entry:                       entry,
		Exit:                        exit,
		Amounts:                     amounts,
		Confidence:                  ident.Confidence,
		Method:                      ident.Method,
		RentRefundsFiltered:         rentFlag,
		IntermediateAssetsCollapsed: collection.IntermediateAssetsCollapsed,
	})

	p.log.WithFields(logrus.Fields{
		"signature":          tx.Signature,
		"outcome":            "success",
		"direction":          direction.String(),
		"swapper":            ident.Swapper,
		"identification_method": ident.Method.String(),
		"liquidity_shape":    ClassifyInstructionShape(tx.TransactionMeta.Instructions).String(),
	}).Info("shyftparserv2: transaction parsed as swap")

	return Success{Swaps: []ParsedSwap{swap}}, nil
}
