package shyftparserv2

import "testing"

func TestRentRefundFilter_DropsSmallPositiveRefund(t *testing.T) {
	cfg := NewDefaultConfig()
	f := NewRentRefundFilter(cfg)

	changes := []BalanceChange{
		{Mint: testTokenA, Owner: testOwnerW, PreDelta: 0, PostDelta: -5_000_000, Decimals: 6, Scale: 1_000_000},
		{Mint: cfg.SolMint, Owner: testOwnerW, PreDelta: 0, PostDelta: 2_000_000, Decimals: 9, Scale: 1_000_000_000},
	}

	out, flagged := f.Filter(changes)
	if !flagged {
		t.Errorf("expected rent_refunds_filtered = true")
	}
	if len(out) != 1 {
		t.Fatalf("expected the rent row to be dropped, got %+v", out)
	}
}

func TestRentRefundFilter_KeepsLargeSOLCredit(t *testing.T) {
	cfg := NewDefaultConfig()
	f := NewRentRefundFilter(cfg)

	changes := []BalanceChange{
		{Mint: testTokenA, Owner: testOwnerW, PreDelta: 0, PostDelta: -5_000_000, Decimals: 6, Scale: 1_000_000},
		{Mint: cfg.SolMint, Owner: testOwnerW, PreDelta: 0, PostDelta: 2_000_000_000, Decimals: 9, Scale: 1_000_000_000},
	}

	out, flagged := f.Filter(changes)
	if flagged {
		t.Errorf("expected rent_refunds_filtered = false for a large SOL credit")
	}
	if len(out) != 2 {
		t.Fatalf("expected both rows kept, got %+v", out)
	}
}

func TestRentRefundFilter_KeepsSmallCreditWhenNoOtherDelta(t *testing.T) {
	cfg := NewDefaultConfig()
	f := NewRentRefundFilter(cfg)

	changes := []BalanceChange{
		{Mint: cfg.SolMint, Owner: testOwnerW, PreDelta: 0, PostDelta: 2_000_000, Decimals: 9, Scale: 1_000_000_000},
	}

	out, flagged := f.Filter(changes)
	if flagged {
		t.Errorf("expected no filtering when there is no non-SOL delta")
	}
	if len(out) != 1 {
		t.Fatalf("expected the row kept, got %+v", out)
	}
}

func TestRentRefundFilter_KeepsNegativeSOLUnconditionally(t *testing.T) {
	cfg := NewDefaultConfig()
	f := NewRentRefundFilter(cfg)

	changes := []BalanceChange{
		{Mint: testTokenA, Owner: testOwnerW, PreDelta: 0, PostDelta: 5_000_000, Decimals: 6, Scale: 1_000_000},
		{Mint: cfg.SolMint, Owner: testOwnerW, PreDelta: 0, PostDelta: -1, Decimals: 9, Scale: 1_000_000_000},
	}

	out, flagged := f.Filter(changes)
	if flagged {
		t.Errorf("expected no filtering for a negative SOL delta")
	}
	if len(out) != 2 {
		t.Fatalf("expected both rows kept, got %+v", out)
	}
}
