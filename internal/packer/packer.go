package packer

import (
	"container/heap"
	"slices"
)

type ldmPacker struct{}

// New creates a Packer based on the largest differencing method, a k-way
// generalization of the Karmarkar-Karp two-way differencing heuristic. It is
// deterministic: the same articles (order, IDs, weights) and box count always
// produce the same result.
func New() Packer {
	return &ldmPacker{}
}

func (p *ldmPacker) Pack(articles []Article, boxCount int) (Result, error) {
	if err := validate(articles, boxCount); err != nil {
		return Result{}, err
	}

	if boxCount == 1 {
		return singleBoxResult(articles), nil
	}

	// Seed one node per article, heaviest first: the article in the first
	// box, boxCount-1 empty boxes alongside so merges stay well-defined.
	sorted := sortedByWeightDesc(articles)
	ws := make(workingSet, 0, len(sorted))
	seq := 0
	for _, a := range sorted {
		ws = append(ws, newSeedNode(a, boxCount, seq))
		seq++
	}
	heap.Init(&ws)

	// Each merge shrinks the working set by one, so the loop runs exactly
	// len(articles)-1 times.
	for ws.Len() > 1 {
		first := heap.Pop(&ws).(*partitionNode)
		second := heap.Pop(&ws).(*partitionNode)
		heap.Push(&ws, mergeNodes(first, second, seq))
		seq++
	}

	final := ws[0]
	return buildResult(final.boxes, final.spread), nil
}

func validate(articles []Article, boxCount int) error {
	if boxCount < 1 {
		return ErrInvalidBoxCount
	}
	if len(articles) == 0 {
		return ErrEmptyInput
	}
	for _, a := range articles {
		if !validWeight(a.Weight) {
			return ErrInvalidWeight
		}
	}
	return nil
}

// singleBoxResult handles boxCount == 1 without the reduction machinery,
// keeping members in caller order.
func singleBoxResult(articles []Article) Result {
	box := Box{Members: make([]int, 0, len(articles))}
	for _, a := range articles {
		box.Members = append(box.Members, a.ID)
		box.Sum += a.Weight
	}
	return Result{Boxes: []Box{box}}
}

// sortedByWeightDesc returns a copy of articles ordered heaviest first. The
// sort is stable: equal weights keep their input order.
func sortedByWeightDesc(articles []Article) []Article {
	out := slices.Clone(articles)
	slices.SortStableFunc(out, func(x, y Article) int {
		switch {
		case x.Weight > y.Weight:
			return -1
		case x.Weight < y.Weight:
			return 1
		default:
			return 0
		}
	})
	return out
}

func buildResult(boxes []*Box, spread float64) Result {
	out := make([]Box, len(boxes))
	for i, b := range boxes {
		members := make([]int, len(b.Members))
		copy(members, b.Members)
		out[i] = Box{Sum: b.Sum, Members: members}
	}
	return Result{Boxes: out, Spread: spread}
}
