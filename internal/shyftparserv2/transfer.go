package shyftparserv2

// TransferDetection is the result of a TransferDetector run.
type TransferDetection struct {
	IsTransfer      bool
	HasNonCoreToken bool
}

// TransferDetector distinguishes swaps from pure transfers and core-only
// moves.
type TransferDetector struct {
	cfg *Config
}

// NewTransferDetector builds a TransferDetector bound to cfg's CORE_TOKENS
// and TOKEN_PROGRAM_ID.
func NewTransferDetector(cfg *Config) *TransferDetector {
	return &TransferDetector{cfg: cfg}
}

// Detect inspects the active assets and, only when neither is a non-core
// token, the instruction list, to decide whether this looks like a pure SPL
// transfer rather than a swap.
func (d *TransferDetector) Detect(assets [2]AssetDelta, instructions []Instruction) TransferDetection {
	hasNonCoreToken := false
	for _, a := range assets {
		if !d.cfg.IsCoreToken(a.Mint) {
			hasNonCoreToken = true
			break
		}
	}
	if hasNonCoreToken {
		return TransferDetection{IsTransfer: false, HasNonCoreToken: true}
	}

	isTransfer := isAllTransferInstructions(instructions, d.cfg.TokenProgramID)
	return TransferDetection{IsTransfer: isTransfer, HasNonCoreToken: false}
}
