package shyftparserv2

import "testing"

func TestAssetDeltaCollector_TwoAssets(t *testing.T) {
	cfg := NewDefaultConfig()
	c := NewAssetDeltaCollector(cfg)

	changes := []BalanceChange{
		{Mint: cfg.SolMint, Owner: testOwnerW, PreDelta: 0, PostDelta: -1_000_000_000, Decimals: 9, Scale: 1_000_000_000},
		{Mint: testTokenA, Owner: testOwnerW, PreDelta: 0, PostDelta: 5_000_000, Decimals: 6, Scale: 1_000_000},
	}

	got, ok := c.Collect(changes, testOwnerW)
	if !ok {
		t.Fatalf("expected collection to succeed")
	}
	if got.IntermediateAssetsCollapsed {
		t.Errorf("expected no collapsing for exactly two assets")
	}
	entry, hasEntry := findByRole(got.Assets, RoleEntry)
	exit, hasExit := findByRole(got.Assets, RoleExit)
	if !hasEntry || !hasExit {
		t.Fatalf("expected one Entry and one Exit, got %+v", got.Assets)
	}
	if entry.Mint != cfg.SolMint || exit.Mint != testTokenA {
		t.Errorf("unexpected entry/exit assignment: entry=%+v exit=%+v", entry, exit)
	}
}

func TestAssetDeltaCollector_TooFewAssets(t *testing.T) {
	cfg := NewDefaultConfig()
	c := NewAssetDeltaCollector(cfg)

	changes := []BalanceChange{
		{Mint: cfg.SolMint, Owner: testOwnerW, PreDelta: 0, PostDelta: -1_000_000_000, Decimals: 9, Scale: 1_000_000_000},
	}

	_, ok := c.Collect(changes, testOwnerW)
	if ok {
		t.Errorf("expected collection to fail with fewer than 2 assets")
	}
}

func TestAssetDeltaCollector_CollapsesMultiHop(t *testing.T) {
	cfg := NewDefaultConfig()
	c := NewAssetDeltaCollector(cfg)

	tokenB := "4k3Dyjzvzp8eMZWUXbBCjEvwSkkk59S5iCNLY3QrkX6R"
	tokenC := "mSoLzYCxHdYgdzU16g5QSh3i5K3z3KZK7ytfqcJm7So"

	changes := []BalanceChange{
		{Mint: testTokenA, Owner: testOwnerW, PreDelta: 0, PostDelta: -10_000_000, Decimals: 6, Scale: 1_000_000},
		{Mint: tokenB, Owner: testOwnerW, PreDelta: 0, PostDelta: 3_000, Decimals: 6, Scale: 1_000_000},
		{Mint: tokenC, Owner: testOwnerW, PreDelta: 0, PostDelta: 50_000_000, Decimals: 6, Scale: 1_000_000},
	}

	got, ok := c.Collect(changes, testOwnerW)
	if !ok {
		t.Fatalf("expected collection to succeed")
	}
	if !got.IntermediateAssetsCollapsed {
		t.Errorf("expected intermediate_assets_collapsed = true")
	}
	entry, _ := findByRole(got.Assets, RoleEntry)
	exit, _ := findByRole(got.Assets, RoleExit)
	if entry.Mint != testTokenA {
		t.Errorf("expected entry = TOKEN_A, got %q", entry.Mint)
	}
	if exit.Mint != tokenC {
		t.Errorf("expected exit = TOKEN_C, got %q", exit.Mint)
	}
}

func TestHybridRecovery_Succeeds(t *testing.T) {
	cfg := NewDefaultConfig()
	h := NewHybridRecovery(cfg)

	changes := []BalanceChange{
		{Mint: testNonCoreMint, Owner: testOwnerW, PreDelta: 0, PostDelta: 100_000_000, Decimals: 6, Scale: 1_000_000},
		{Mint: cfg.SolMint, Owner: testOwnerX, PreDelta: 0, PostDelta: -1_500_000_000, Decimals: 9, Scale: 1_000_000_000},
	}
	meta := TransactionMeta{
		FeePayer: testOwnerW,
		Instructions: []Instruction{
			{ProgramID: "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8", Name: "swap"},
		},
	}

	got, ok := h.Recover(changes, testOwnerW, meta)
	if !ok {
		t.Fatalf("expected hybrid recovery to succeed")
	}
	if got.IntermediateAssetsCollapsed {
		t.Errorf("expected intermediate_assets_collapsed = false")
	}
	entry, hasEntry := findByRole(got.Assets, RoleEntry)
	exit, hasExit := findByRole(got.Assets, RoleExit)
	if !hasEntry || !hasExit {
		t.Fatalf("expected one Entry and one Exit, got %+v", got.Assets)
	}
	if exit.Mint != testNonCoreMint || exit.Delta != 100_000_000 {
		t.Errorf("unexpected exit asset: %+v", exit)
	}
	if entry.Mint != cfg.SolMint || entry.Delta != -1_500_000_000 {
		t.Errorf("unexpected synthesized core entry: %+v", entry)
	}
}

func TestHybridRecovery_FailsWhenAllTransferInstructions(t *testing.T) {
	cfg := NewDefaultConfig()
	h := NewHybridRecovery(cfg)

	changes := []BalanceChange{
		{Mint: testTokenA, Owner: testOwnerW, PreDelta: 0, PostDelta: 100_000_000, Decimals: 6, Scale: 1_000_000},
		{Mint: cfg.SolMint, Owner: testOwnerX, PreDelta: 0, PostDelta: -1_500_000_000, Decimals: 9, Scale: 1_000_000_000},
	}
	meta := TransactionMeta{
		FeePayer: testOwnerW,
		Instructions: []Instruction{
			{ProgramID: cfg.TokenProgramID, Name: "transferChecked"},
		},
	}

	_, ok := h.Recover(changes, testOwnerW, meta)
	if ok {
		t.Errorf("expected hybrid recovery to refuse an all-transfer instruction list")
	}
}

func TestHybridRecovery_FailsWhenNotFeePayer(t *testing.T) {
	cfg := NewDefaultConfig()
	h := NewHybridRecovery(cfg)

	changes := []BalanceChange{
		{Mint: testTokenA, Owner: testOwnerW, PreDelta: 0, PostDelta: 100_000_000, Decimals: 6, Scale: 1_000_000},
		{Mint: cfg.SolMint, Owner: testOwnerX, PreDelta: 0, PostDelta: -1_500_000_000, Decimals: 9, Scale: 1_000_000_000},
	}
	meta := TransactionMeta{
		FeePayer: testOwnerX,
		Instructions: []Instruction{
			{ProgramID: "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8", Name: "swap"},
		},
	}

	_, ok := h.Recover(changes, testOwnerW, meta)
	if ok {
		t.Errorf("expected hybrid recovery to require swapper == fee payer")
	}
}
