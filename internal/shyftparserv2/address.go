package shyftparserv2

import "github.com/mr-tron/base58"

// minAddressBytes / maxAddressBytes bound a well-formed Solana base58
// address: 32 raw bytes almost always, but base58 encoding of a leading-zero
// key can decode a byte short.
const (
	minAddressBytes = 31
	maxAddressBytes = 32
)

// isWellFormedAddress reports whether s decodes as a plausible Solana
// public key: valid base58, decoding to 31 or 32 raw bytes. This is a
// syntactic check only — it does not confirm the address is ever actually
// used on-chain.
func isWellFormedAddress(s string) bool {
	if s == "" {
		return false
	}
	decoded, err := base58.Decode(s)
	if err != nil {
		return false
	}
	n := len(decoded)
	return n >= minAddressBytes && n <= maxAddressBytes
}

// ValidateRawTransaction performs the fatal-only ingestion checks that sit
// at the boundary in front of the pure pipeline: malformed input here is a
// caller defect, not a business rejection, so failures are *FatalError
// rather than Erase.
func ValidateRawTransaction(tx *RawTransaction) *FatalError {
	const stage = "ValidateRawTransaction"

	if tx == nil {
		return fatalf(stage, "raw transaction is nil")
	}
	if tx.Signature == "" {
		return fatalf(stage, "signature is empty")
	}
	if len(tx.TransactionMeta.Signers) == 0 {
		return fatalf(stage, "transaction %s: no signers", tx.Signature)
	}
	feePayerIsSigner := false
	for _, signer := range tx.TransactionMeta.Signers {
		if !isWellFormedAddress(signer) {
			return fatalf(stage, "transaction %s: malformed signer address %q", tx.Signature, signer)
		}
		if signer == tx.TransactionMeta.FeePayer {
			feePayerIsSigner = true
		}
	}
	if !feePayerIsSigner {
		return fatalf(stage, "transaction %s: fee payer %q is not among signers", tx.Signature, tx.TransactionMeta.FeePayer)
	}

	for i, bc := range tx.BalanceChanges {
		if !isWellFormedAddress(bc.Owner) {
			return fatalf(stage, "transaction %s: balance change %d has malformed owner %q", tx.Signature, i, bc.Owner)
		}
		if !isWellFormedAddress(bc.Mint) {
			return fatalf(stage, "transaction %s: balance change %d has malformed mint %q", tx.Signature, i, bc.Mint)
		}
		wantScale := int64(1)
		for j := uint8(0); j < bc.Decimals; j++ {
			wantScale *= 10
		}
		if bc.Scale != wantScale {
			return fatalf(stage, "transaction %s: balance change %d has scale %d inconsistent with decimals %d", tx.Signature, i, bc.Scale, bc.Decimals)
		}
	}

	for i, ix := range tx.TransactionMeta.Instructions {
		if !isWellFormedAddress(ix.ProgramID) {
			return fatalf(stage, "transaction %s: instruction %d has malformed program id %q", tx.Signature, i, ix.ProgramID)
		}
	}

	return nil
}
