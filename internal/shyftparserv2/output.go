package shyftparserv2

const defaultProtocol = "unknown"

// OutputGenerator assembles the final ParsedSwap from the verified
// entry/exit pair and the contextual flags accumulated by earlier stages.
type OutputGenerator struct{}

// NewOutputGenerator builds the generator. It carries no configuration.
func NewOutputGenerator() *OutputGenerator {
	return &OutputGenerator{}
}

// GenerateInput bundles everything OutputGenerator needs from upstream
// stages, so its constructor signature doesn't grow with every new flag.
type GenerateInput struct {
	Signature                   string
	Timestamp                   *int64
	Protocol                    *string
	Swapper                     string
	Direction                   Direction
	Entry, Exit                 AssetDelta
	Amounts                     Amounts
	Confidence                  int
	Method                      IdentificationMethod
	RentRefundsFiltered         bool
	IntermediateAssetsCollapsed bool
}

// Generate always returns exactly one ParsedSwap; decomposing a
// non-core<->non-core swap into two records is reserved future work —
// SplitSwapDetector's split_required flag is computed but not acted on here.
func (g *OutputGenerator) Generate(in GenerateInput) ParsedSwap {
	var baseAsset, quoteAsset Asset
	if in.Direction == DirectionBuy {
		baseAsset = Asset{Mint: in.Exit.Mint, Decimals: in.Exit.Decimals}
		quoteAsset = Asset{Mint: in.Entry.Mint, Decimals: in.Entry.Decimals}
	} else {
		baseAsset = Asset{Mint: in.Entry.Mint, Decimals: in.Entry.Decimals}
		quoteAsset = Asset{Mint: in.Exit.Mint, Decimals: in.Exit.Decimals}
	}

	var timestamp int64
	if in.Timestamp != nil {
		timestamp = *in.Timestamp
	}

	protocol := defaultProtocol
	if in.Protocol != nil && *in.Protocol != "" {
		protocol = *in.Protocol
	}

	return ParsedSwap{
		Signature:                   in.Signature,
		Timestamp:                   timestamp,
		Swapper:                     in.Swapper,
		Direction:                   in.Direction,
		BaseAsset:                   baseAsset,
		QuoteAsset:                  quoteAsset,
		Amounts:                     in.Amounts,
		Confidence:                  in.Confidence,
		Protocol:                    protocol,
		SwapperIdentificationMethod: in.Method,
		RentRefundsFiltered:         in.RentRefundsFiltered,
		IntermediateAssetsCollapsed: in.IntermediateAssetsCollapsed,
	}
}
