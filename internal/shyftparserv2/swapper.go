package shyftparserv2

import "github.com/sirupsen/logrus"

// SwapperIdentification is the result of a successful SwapperIdentifier run.
type SwapperIdentification struct {
	Swapper    string
	Confidence int
	Method     IdentificationMethod
}

type ownerAggregate struct {
	sumAbsDelta    int64
	hasNonCoreDelta bool
}

// SwapperIdentifier picks exactly one owner as the economic actor of a
// transaction, or signals that none can be confidently chosen.
type SwapperIdentifier struct {
	cfg *Config
	log *logrus.Logger
}

// NewSwapperIdentifier builds a SwapperIdentifier bound to cfg's
// CORE_TOKENS / SYSTEM_ACCOUNTS / TOKEN_PROGRAM_ID sets. log receives a
// Debug line when the tie-break cascade has to go beyond a unique maximum —
// stage internals are otherwise silent, per the orchestrator-only logging
// convention.
func NewSwapperIdentifier(cfg *Config, log *logrus.Logger) *SwapperIdentifier {
	return &SwapperIdentifier{cfg: cfg, log: log}
}

// Identify returns the chosen swapper, or ok=false when no owner qualifies
// (caller erases with ReasonNoEconomicDelta).
func (s *SwapperIdentifier) Identify(changes []BalanceChange, meta TransactionMeta) (SwapperIdentification, bool) {
	aggregates := make(map[string]*ownerAggregate)
	var ownerOrder []string

	for _, bc := range changes {
		delta := bc.Delta()
		if delta == 0 {
			continue
		}
		if s.cfg.IsSystemAccount(bc.Owner) || bc.Owner == s.cfg.TokenProgramID {
			continue
		}
		agg, ok := aggregates[bc.Owner]
		if !ok {
			agg = &ownerAggregate{}
			aggregates[bc.Owner] = agg
			ownerOrder = append(ownerOrder, bc.Owner)
		}
		abs := delta
		if abs < 0 {
			abs = -abs
		}
		agg.sumAbsDelta += abs
		if !s.cfg.IsCoreToken(bc.Mint) {
			agg.hasNonCoreDelta = true
		}
	}

	if len(ownerOrder) == 0 {
		return SwapperIdentification{}, false
	}

	var maxAbs int64
	for _, owner := range ownerOrder {
		if aggregates[owner].sumAbsDelta > maxAbs {
			maxAbs = aggregates[owner].sumAbsDelta
		}
	}

	var tied []string
	for _, owner := range ownerOrder {
		if aggregates[owner].sumAbsDelta == maxAbs {
			tied = append(tied, owner)
		}
	}

	if len(tied) == 1 {
		return SwapperIdentification{Swapper: tied[0], Confidence: 70, Method: MethodLargestDelta}, true
	}

	s.log.WithFields(logrus.Fields{
		"tied_owner_count": len(tied),
	}).Debug("shyftparserv2: ambiguous swapper candidates, applying tie-break")

	var nonCoreTied []string
	for _, owner := range tied {
		if aggregates[owner].hasNonCoreDelta {
			nonCoreTied = append(nonCoreTied, owner)
		}
	}
	if len(nonCoreTied) == 1 {
		return SwapperIdentification{Swapper: nonCoreTied[0], Confidence: 70, Method: MethodLargestDelta}, true
	}

	if agg, ok := aggregates[meta.FeePayer]; ok && agg.sumAbsDelta != 0 {
		return SwapperIdentification{Swapper: meta.FeePayer, Confidence: 90, Method: MethodTier2}, true
	}

	return SwapperIdentification{}, false
}
