package benchmark

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rrosborg/box-balancer/internal/packer"
)

func TestRunUsesDefaults(t *testing.T) {
	t.Parallel()

	report, err := Run(Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Options.Articles != defaultArticles {
		t.Fatalf("expected %d articles, got %d", defaultArticles, report.Options.Articles)
	}
	if len(report.Greedy.BoxSums) != defaultBoxes {
		t.Fatalf("expected %d greedy box sums, got %d", defaultBoxes, len(report.Greedy.BoxSums))
	}
	if len(report.Differencing.BoxSums) != defaultBoxes {
		t.Fatalf("expected %d differencing box sums, got %d", defaultBoxes, len(report.Differencing.BoxSums))
	}
}

func TestRunIsReproducible(t *testing.T) {
	t.Parallel()

	opts := Options{Articles: 50, Boxes: 4, MinWeight: 10, MaxWeight: 500, Seed: 7}

	first, err := Run(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Run(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(first.Greedy.BoxSums, second.Greedy.BoxSums); diff != "" {
		t.Fatalf("greedy sums differ between runs:\n%s", diff)
	}
	if diff := cmp.Diff(first.Differencing.BoxSums, second.Differencing.BoxSums); diff != "" {
		t.Fatalf("differencing sums differ between runs:\n%s", diff)
	}
	if first.Greedy.Spread != second.Greedy.Spread ||
		first.Differencing.Spread != second.Differencing.Spread {
		t.Fatalf("spreads differ between runs")
	}
}

func TestRunConservesTotalWeight(t *testing.T) {
	t.Parallel()

	report, err := Run(Options{Articles: 80, Boxes: 5, Seed: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	greedyTotal := 0.0
	for _, sum := range report.Greedy.BoxSums {
		greedyTotal += sum
	}
	differencingTotal := 0.0
	for _, sum := range report.Differencing.BoxSums {
		differencingTotal += sum
	}
	if greedyTotal != differencingTotal {
		t.Fatalf("strategies packed different totals: %v vs %v", greedyTotal, differencingTotal)
	}
}

func TestRunValidatesOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "NegativeArticles",
			opts:    Options{Articles: -1},
			wantErr: ErrInvalidArticleCount,
		},
		{
			name:    "NegativeBoxes",
			opts:    Options{Boxes: -2},
			wantErr: packer.ErrInvalidBoxCount,
		},
		{
			name:    "InvertedWeightRange",
			opts:    Options{MinWeight: 500, MaxWeight: 100},
			wantErr: ErrInvalidWeightRange,
		},
		{
			name:    "NegativeMinWeight",
			opts:    Options{MinWeight: -5, MaxWeight: 100},
			wantErr: ErrInvalidWeightRange,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Run(tc.opts); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
