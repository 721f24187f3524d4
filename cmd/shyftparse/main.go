// Command shyftparse runs the shyftParserV2 swap-detection pipeline over a
// file of raw transactions and prints the parsed result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shyftnetwork/solana-swap-parser/internal/shyftparserv2"
)

func main() {
	_ = godotenv.Load()

	txPath := flag.String("tx", os.Getenv("SHYFTPARSER_TX_PATH"), "path to a JSON file containing one or more RawTransaction values")
	configPath := flag.String("config", os.Getenv("SHYFTPARSER_CONFIG_PATH"), "optional path to a CORE_TOKENS/SOL_EQUIVALENTS/SYSTEM_ACCOUNTS overlay JSON file")
	pretty := flag.Bool("pretty", true, "pretty-print the JSON output")
	flag.Parse()

	if *txPath == "" {
		log.Fatal("shyftparse: -tx (or SHYFTPARSER_TX_PATH) is required")
	}

	cfg, err := shyftparserv2.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("shyftparse: failed to load config: %v", err)
	}

	raw, err := os.ReadFile(*txPath)
	if err != nil {
		log.Fatalf("shyftparse: failed to read %s: %v", *txPath, err)
	}

	var txs []shyftparserv2.RawTransaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		var single shyftparserv2.RawTransaction
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			log.Fatalf("shyftparse: failed to parse %s as a RawTransaction or []RawTransaction: %v", *txPath, err)
		}
		txs = []shyftparserv2.RawTransaction{single}
	}

	pipeline := shyftparserv2.NewPipeline(cfg)

	results := make([]any, 0, len(txs))
	for i := range txs {
		outcome, fatal := pipeline.Run(&txs[i])
		if fatal != nil {
			log.Fatalf("shyftparse: fatal invariant violation on transaction %d: %v", i, fatal)
		}
		results = append(results, outcomeToJSON(outcome))
	}

	if err := writeJSONMaybePretty(os.Stdout, results, *pretty); err != nil {
		log.Fatalf("shyftparse: failed to write output: %v", err)
	}
}

// outcomeToJSON renders an Outcome as a tagged shape: a success object
// carrying swaps, or an erase object carrying the structured rejection.
func outcomeToJSON(outcome shyftparserv2.Outcome) map[string]any {
	switch v := outcome.(type) {
	case shyftparserv2.Success:
		return map[string]any{"swaps": v.Swaps}
	case shyftparserv2.Erase:
		return map[string]any{"error": v.Error}
	default:
		return map[string]any{"error": "unknown outcome type"}
	}
}

func writeJSONMaybePretty(w *os.File, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
