package shyftparserv2

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

// Well-known mainnet addresses. These are the same addresses the rest of
// the retrieval pack hardcodes (wrapped SOL mint, USDC, USDT); the SPL Token
// program id comes from solana.TokenProgramID in NewDefaultConfig.
const (
	nativeSOLMint    = "So11111111111111111111111111111111111111112"
	wrappedSOLMint   = "So11111111111111111111111111111111111111112"
	mainnetUSDCMint  = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	mainnetUSDTMint  = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"

	// SolDecimals / SolScale are fixed by the SPL/SOL protocol, not
	// configuration.
	SolDecimals = 9
	SolScale    = 1_000_000_000

	// RentThreshold is the minimum positive SOL credit that is NOT treated
	// as a rent refund (0.01 SOL in lamports).
	RentThreshold = 10_000_000
)

// Config is the immutable, process-wide constant set the pipeline reads.
// It is built once (NewDefaultConfig, optionally overlaid by LoadConfig)
// and passed by reference through every stage — never read from a package
// global.
type Config struct {
	SolMint        string
	TokenProgramID string

	coreTokens     map[string]struct{}
	solEquivalents map[string]struct{}
	systemAccounts map[string]struct{}
}

// IsCoreToken reports whether mint is in CORE_TOKENS (SOL + major
// stablecoins — understood as quote-side).
func (c *Config) IsCoreToken(mint string) bool {
	_, ok := c.coreTokens[mint]
	return ok
}

// IsSolEquivalent reports whether mint normalizes to the canonical SOL mint.
func (c *Config) IsSolEquivalent(mint string) bool {
	_, ok := c.solEquivalents[mint]
	return ok
}

// IsSystemAccount reports whether owner is never eligible as swapper.
func (c *Config) IsSystemAccount(owner string) bool {
	_, ok := c.systemAccounts[owner]
	return ok
}

// DustThreshold is the decimals-dependent dust cutoff.
func DustThreshold(decimals uint8) int64 {
	if decimals <= 6 {
		return 1
	}
	return 10
}

// NewDefaultConfig builds the constant set from real mainnet addresses,
// the same way the rest of the retrieval pack hardcodes them
// (aman-zulfiqar-solana-swap-indexer/internal/constants, and this
// package's own spltoken/price/config.go ancestor).
func NewDefaultConfig() *Config {
	tokenProgramID := solana.TokenProgramID.String()

	cfg := &Config{
		SolMint:        nativeSOLMint,
		TokenProgramID: tokenProgramID,
		coreTokens: map[string]struct{}{
			nativeSOLMint:   {},
			mainnetUSDCMint: {},
			mainnetUSDTMint: {},
		},
		solEquivalents: map[string]struct{}{
			nativeSOLMint:  {},
			wrappedSOLMint: {},
		},
		systemAccounts: map[string]struct{}{
			tokenProgramID:                          {},
			solana.SystemProgramID.String():         {},
			solana.SysVarRentPubkey.String():         {},
			"ComputeBudget111111111111111111111111111": {},
		},
	}
	return cfg
}

// configOverlay is the JSON wire shape for LoadConfig, mirroring
// aman-zulfiqar-solana-swap-indexer/internal/orca/register.go's
// LegacyPoolConfig: a flat, string-addressed wire struct converted into the
// runtime Config rather than unmarshaled directly into it.
type configOverlay struct {
	CoreTokens     []string `json:"core_tokens"`
	SolEquivalents []string `json:"sol_equivalents"`
	SystemAccounts []string `json:"system_accounts"`
}

// LoadConfig reads a JSON file of additional CORE_TOKENS / SOL_EQUIVALENTS
// / SYSTEM_ACCOUNTS entries and overlays them on top of NewDefaultConfig.
// The returned Config is immutable once constructed.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shyftparserv2: failed to read config file: %w", err)
	}

	var overlay configOverlay
	if err := json.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("shyftparserv2: failed to parse config JSON: %w", err)
	}

	for _, mint := range overlay.CoreTokens {
		if _, err := solana.PublicKeyFromBase58(mint); err != nil {
			return nil, fmt.Errorf("shyftparserv2: invalid core token mint %q: %w", mint, err)
		}
		cfg.coreTokens[mint] = struct{}{}
	}
	for _, mint := range overlay.SolEquivalents {
		if _, err := solana.PublicKeyFromBase58(mint); err != nil {
			return nil, fmt.Errorf("shyftparserv2: invalid sol-equivalent mint %q: %w", mint, err)
		}
		cfg.solEquivalents[mint] = struct{}{}
	}
	for _, addr := range overlay.SystemAccounts {
		if _, err := solana.PublicKeyFromBase58(addr); err != nil {
			return nil, fmt.Errorf("shyftparserv2: invalid system account %q: %w", addr, err)
		}
		cfg.systemAccounts[addr] = struct{}{}
	}

	return cfg, nil
}
