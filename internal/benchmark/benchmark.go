// Package benchmark compares packing strategies on generated article sets.
// It runs the greedy baseline and the largest differencing method on the same
// seeded random input and reports per-box sums, spread, and elapsed time for
// each.
package benchmark

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rrosborg/box-balancer/internal/packer"
)

const (
	defaultArticles  = 35
	defaultBoxes     = 3
	defaultMinWeight = 100
	defaultMaxWeight = 1000
	defaultSeed      = 42
)

var (
	// ErrInvalidArticleCount is returned when the requested article count is not positive.
	ErrInvalidArticleCount = errors.New("article count must be a positive integer")
	// ErrInvalidWeightRange is returned when the weight bounds are non-positive or inverted.
	ErrInvalidWeightRange = errors.New("weight range must satisfy 1 <= min <= max")
)

// Options control a benchmark run. Zero values fall back to the defaults
// (35 articles, 3 boxes, weights in [100, 1000], seed 42).
type Options struct {
	Articles  int
	Boxes     int
	MinWeight int
	MaxWeight int
	Seed      int64
}

// StrategyReport captures the outcome of one packing strategy.
type StrategyReport struct {
	Strategy string
	BoxSums  []float64
	Spread   float64
	Elapsed  time.Duration
}

// Report is the result of running both strategies on the same articles.
type Report struct {
	Options      Options
	Greedy       StrategyReport
	Differencing StrategyReport
}

// Run generates a seeded random article set and packs it with both
// strategies. Identical options always produce an identical report apart
// from the elapsed timings.
func Run(opts Options) (Report, error) {
	opts = withDefaults(opts)
	if err := validate(opts); err != nil {
		return Report{}, err
	}

	articles := generateArticles(opts)

	greedy, err := runStrategy("greedy", packer.NewGreedy(), articles, opts.Boxes)
	if err != nil {
		return Report{}, err
	}
	differencing, err := runStrategy("differencing", packer.New(), articles, opts.Boxes)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Options:      opts,
		Greedy:       greedy,
		Differencing: differencing,
	}, nil
}

func withDefaults(opts Options) Options {
	if opts.Articles == 0 {
		opts.Articles = defaultArticles
	}
	if opts.Boxes == 0 {
		opts.Boxes = defaultBoxes
	}
	if opts.MinWeight == 0 {
		opts.MinWeight = defaultMinWeight
	}
	if opts.MaxWeight == 0 {
		opts.MaxWeight = defaultMaxWeight
	}
	if opts.Seed == 0 {
		opts.Seed = defaultSeed
	}
	return opts
}

func validate(opts Options) error {
	if opts.Articles < 1 {
		return ErrInvalidArticleCount
	}
	if opts.Boxes < 1 {
		return packer.ErrInvalidBoxCount
	}
	if opts.MinWeight < 1 || opts.MaxWeight < opts.MinWeight {
		return ErrInvalidWeightRange
	}
	return nil
}

// generateArticles draws weights uniformly from [MinWeight, MaxWeight] using
// a private seeded source, so runs are reproducible and concurrent runs do
// not share state.
func generateArticles(opts Options) []packer.Article {
	rng := rand.New(rand.NewSource(opts.Seed))
	articles := make([]packer.Article, opts.Articles)
	span := opts.MaxWeight - opts.MinWeight + 1
	for i := range articles {
		articles[i] = packer.Article{
			ID:     i,
			Weight: float64(opts.MinWeight + rng.Intn(span)),
		}
	}
	return articles
}

func runStrategy(name string, p packer.Packer, articles []packer.Article, boxes int) (StrategyReport, error) {
	start := time.Now()
	result, err := p.Pack(articles, boxes)
	elapsed := time.Since(start)
	if err != nil {
		return StrategyReport{}, err
	}

	sums := make([]float64, len(result.Boxes))
	for i, box := range result.Boxes {
		sums[i] = box.Sum
	}

	return StrategyReport{
		Strategy: name,
		BoxSums:  sums,
		Spread:   result.Spread,
		Elapsed:  elapsed,
	}, nil
}
