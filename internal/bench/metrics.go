package bench

import (
	"fmt"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // token match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Add accumulates the counts of o and recomputes the scores.
func (m *Metrics) Add(o Metrics, cfg Config) {
	m.TruePositives += o.TruePositives
	m.FalsePositives += o.FalsePositives
	m.FalseNegatives += o.FalseNegatives
	m.score(cfg)
}

func (m *Metrics) score(cfg Config) {
	tp, fp, fn := m.TruePositives, m.FalsePositives, m.FalseNegatives
	m.Precision, m.Recall, m.F1, m.WeightedScore = 0, 0, 0, 0

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	m := Metrics{
		TruePositives:  tp,
		FalsePositives: len(predicted) - tp,
		FalseNegatives: len(truth) - tp,
	}
	m.score(cfg)
	return m
}

// Boundaries returns the exclusive end offset of every sentence except the
// last, counted in tokens of the input stream.
func Boundaries(sentences [][]sentsplit.Token) []int {
	var bounds []int
	offset := 0
	for i, sent := range sentences {
		for _, tok := range sent {
			if !tok.Locked {
				offset++
			}
		}
		if i < len(sentences)-1 {
			bounds = append(bounds, offset)
		}
	}
	return bounds
}

// EvaluateDocument splits doc with s and scores the result against the
// gold boundaries.
func EvaluateDocument(s *sentsplit.Splitter, doc *Document, cfg Config) (Metrics, error) {
	sentences, err := s.Split(doc.Tokens)
	if err != nil {
		return Metrics{}, fmt.Errorf("split %s: %w", doc.ID, err)
	}
	return Evaluate(Boundaries(sentences), doc.Boundaries, cfg), nil
}
