package bench

import (
	"math"
	"slices"
	"testing"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tolerance int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{
			name:      "perfect match",
			predicted: []int{10, 20, 30},
			truth:     []int{10, 20, 30},
			tolerance: 0,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "within tolerance",
			predicted: []int{11, 19, 31},
			truth:     []int{10, 20, 30},
			tolerance: 1,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "false positive",
			predicted: []int{10, 15, 20},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    2,
			wantFP:    1,
			wantFN:    0,
		},
		{
			name:      "false negative",
			predicted: []int{10},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    1,
			wantFP:    0,
			wantFN:    1,
		},
		{
			name:      "nothing predicted",
			predicted: nil,
			truth:     nil,
			tolerance: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Tolerance: tt.tolerance}
			got := Evaluate(tt.predicted, tt.truth, cfg)

			if got.TruePositives != tt.wantTP {
				t.Errorf("TruePositives = %d, want %d", got.TruePositives, tt.wantTP)
			}
			if got.FalsePositives != tt.wantFP {
				t.Errorf("FalsePositives = %d, want %d", got.FalsePositives, tt.wantFP)
			}
			if got.FalseNegatives != tt.wantFN {
				t.Errorf("FalseNegatives = %d, want %d", got.FalseNegatives, tt.wantFN)
			}
		})
	}
}

func TestMetrics_Add(t *testing.T) {
	cfg := Config{PrecisionWeight: 3, RecallWeight: 1}

	var m Metrics
	m.Add(Metrics{TruePositives: 2, FalsePositives: 2}, cfg)
	m.Add(Metrics{TruePositives: 2, FalseNegatives: 4}, cfg)

	if m.TruePositives != 4 || m.FalsePositives != 2 || m.FalseNegatives != 4 {
		t.Fatalf("counts = %+v", m)
	}
	wantP, wantR := 4.0/6, 4.0/8
	if math.Abs(m.Precision-wantP) > 1e-9 || math.Abs(m.Recall-wantR) > 1e-9 {
		t.Errorf("Precision, Recall = %v, %v, want %v, %v", m.Precision, m.Recall, wantP, wantR)
	}
	if want := (3*wantP + wantR) / 4; math.Abs(m.WeightedScore-want) > 1e-9 {
		t.Errorf("WeightedScore = %v, want %v", m.WeightedScore, want)
	}
}

func TestBoundaries(t *testing.T) {
	sentences := [][]sentsplit.Token{
		{{Text: "<s>", Markup: true, Class: sentsplit.Start, Locked: true}, sentsplit.Word("A"), sentsplit.Word(".")},
		{sentsplit.Word("B"), sentsplit.Word("c"), sentsplit.Word(".")},
		{sentsplit.Word("D")},
	}

	if got, want := Boundaries(sentences), []int{2, 5}; !slices.Equal(got, want) {
		t.Errorf("Boundaries() = %v, want %v", got, want)
	}
}

func TestEvaluateDocument(t *testing.T) {
	doc, err := ParseDocument("ewt", goldDoc)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	s, err := sentsplit.New(sentsplit.WithLanguage("en"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m, err := EvaluateDocument(s, doc, DefaultConfig())
	if err != nil {
		t.Fatalf("EvaluateDocument() error = %v", err)
	}
	if m.TruePositives != 2 || m.F1 != 1 {
		t.Errorf("metrics = %+v, want a perfect score", m)
	}
}
