package packer

type greedyPacker struct{}

// NewGreedy creates a Packer that repeatedly drops the heaviest remaining
// article into the lightest box. It is cheaper than the differencing packer
// but usually less balanced; the benchmark harness uses it as a baseline.
func NewGreedy() Packer {
	return &greedyPacker{}
}

func (p *greedyPacker) Pack(articles []Article, boxCount int) (Result, error) {
	if err := validate(articles, boxCount); err != nil {
		return Result{}, err
	}

	boxes := make([]*Box, boxCount)
	for i := range boxes {
		boxes[i] = emptyBox()
	}

	for _, a := range sortedByWeightDesc(articles) {
		lightest := boxes[0]
		for _, b := range boxes[1:] {
			if b.Sum < lightest.Sum {
				lightest = b
			}
		}
		lightest.Members = append(lightest.Members, a.ID)
		lightest.Sum += a.Weight
	}

	sortBoxes(boxes)
	return buildResult(boxes, boxes[0].Sum-boxes[boxCount-1].Sum), nil
}
