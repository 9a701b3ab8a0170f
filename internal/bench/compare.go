package bench

import (
	"context"
	"fmt"
	"sort"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

// Variant is one splitter configuration under comparison.
type Variant struct {
	Name    string
	Options []sentsplit.Option
}

// Result holds metrics for one variant.
type Result struct {
	Name    string
	Metrics Metrics
}

// LanguageVariants returns one variant per language, each using the
// built-in abbreviations and quote rules of that language.
func LanguageVariants(langs ...string) []Variant {
	variants := make([]Variant, len(langs))
	for i, lang := range langs {
		variants[i] = Variant{
			Name:    lang,
			Options: []sentsplit.Option{sentsplit.WithLanguage(lang)},
		}
	}
	return variants
}

// Compare evaluates every variant over docs and returns results sorted by
// weighted score, best first.
func Compare(ctx context.Context, docs []*Document, variants []Variant, cfg Config) ([]Result, error) {
	results := make([]Result, 0, len(variants))

	for _, v := range variants {
		s, err := sentsplit.New(v.Options...)
		if err != nil {
			return nil, fmt.Errorf("variant %s: %w", v.Name, err)
		}

		var agg Metrics
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			m, err := EvaluateDocument(s, doc, cfg)
			if err != nil {
				return nil, fmt.Errorf("variant %s: %w", v.Name, err)
			}
			agg.Add(m, cfg)
		}

		results = append(results, Result{Name: v.Name, Metrics: agg})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
