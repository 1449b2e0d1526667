package packer

import "slices"

// partitionNode is one partial solution in the working set: exactly k boxes
// kept sorted heaviest first. seq records the order of insertion into the
// working set and breaks equal-spread ties so reduction stays deterministic.
type partitionNode struct {
	boxes  []*Box
	spread float64
	seq    int
}

// newSeedNode places a single article in the first of boxCount boxes and
// leaves the rest empty.
func newSeedNode(a Article, boxCount, seq int) *partitionNode {
	boxes := make([]*Box, boxCount)
	boxes[0] = seedBox(a)
	for i := 1; i < boxCount; i++ {
		boxes[i] = emptyBox()
	}
	return &partitionNode{
		boxes:  boxes,
		spread: boxes[0].Sum - boxes[boxCount-1].Sum,
		seq:    seq,
	}
}

// mergeNodes combines two nodes by pairing a's i-th heaviest box with b's
// i-th lightest and letting the a side absorb the b side. Both operands must
// hold the same number of boxes, sorted heaviest first; both are consumed.
func mergeNodes(a, b *partitionNode, seq int) *partitionNode {
	k := len(a.boxes)
	for i, box := range a.boxes {
		box.absorb(b.boxes[k-1-i])
	}
	sortBoxes(a.boxes)
	return &partitionNode{
		boxes:  a.boxes,
		spread: a.boxes[0].Sum - a.boxes[k-1].Sum,
		seq:    seq,
	}
}

// sortBoxes orders boxes heaviest first. The sort is stable so boxes with
// equal sums keep their prior order and output stays reproducible.
func sortBoxes(boxes []*Box) {
	slices.SortStableFunc(boxes, func(x, y *Box) int {
		switch {
		case x.Sum > y.Sum:
			return -1
		case x.Sum < y.Sum:
			return 1
		default:
			return 0
		}
	})
}
