// Command sentsplit-bench scores splitter configurations against a gold corpus.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jamesainslie/go-sentsplit/internal/bench"
)

// CLI defines the command-line interface using Kong
var CLI struct {
	Corpus    string   `name:"corpus" default:"testdata/gold" help:"Directory containing gold .vrt files" type:"existingdir"`
	Languages []string `name:"languages" short:"l" default:"de_CMC,de,en" help:"Language variants to compare"`
	Tolerance int      `name:"tolerance" default:"0" help:"Token tolerance for boundary matching"`
	WP        float64  `name:"wp" default:"1.0" help:"Precision weight"`
	WR        float64  `name:"wr" default:"1.0" help:"Recall weight"`
	PerDoc    bool     `name:"per-doc" help:"Print metrics for every document of the best variant"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("sentsplit-bench"),
		kong.Description("Compare sentence splitter configurations on a gold corpus"),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.FatalIfErrorf(run(ctx))
}

func run(ctx context.Context) error {
	docs, err := bench.LoadCorpus(CLI.Corpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	fmt.Printf("Loaded %d documents from %s\n\n", len(docs), CLI.Corpus)

	cfg := bench.Config{
		Tolerance:       CLI.Tolerance,
		PrecisionWeight: CLI.WP,
		RecallWeight:    CLI.WR,
	}

	variants := bench.LanguageVariants(CLI.Languages...)
	results, err := bench.Compare(ctx, docs, variants, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Language Comparison (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-10s %-8s %-8s %-8s %-8s %s\n", "Variant", "Prec", "Rec", "F1", "Weighted", "TP/FP/FN")
	for _, r := range results {
		m := r.Metrics
		fmt.Printf("%-10s %-8.2f %-8.2f %-8.2f %-8.2f %d/%d/%d\n",
			r.Name, m.Precision, m.Recall, m.F1, m.WeightedScore,
			m.TruePositives, m.FalsePositives, m.FalseNegatives)
	}
	fmt.Println(strings.Repeat("-", 60))

	if len(results) == 0 {
		return nil
	}
	best := results[0]
	fmt.Printf("Best: %s (Weighted: %.2f)\n", best.Name, best.Metrics.WeightedScore)

	if CLI.PerDoc {
		return printPerDoc(ctx, docs, best.Name, cfg)
	}
	return nil
}

func printPerDoc(ctx context.Context, docs []*bench.Document, lang string, cfg bench.Config) error {
	fmt.Printf("\n%-30s %-8s %-8s %-8s\n", "Document", "Prec", "Rec", "F1")
	for _, doc := range docs {
		results, err := bench.Compare(ctx, []*bench.Document{doc}, bench.LanguageVariants(lang), cfg)
		if err != nil {
			return err
		}
		m := results[0].Metrics
		fmt.Printf("%-30s %-8.2f %-8.2f %-8.2f\n", doc.ID, m.Precision, m.Recall, m.F1)
	}
	return nil
}
