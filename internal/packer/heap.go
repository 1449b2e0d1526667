package packer

// workingSet is a max-heap of partition nodes ordered by spread, with the
// earlier-inserted node winning ties.
type workingSet []*partitionNode

func (ws workingSet) Len() int { return len(ws) }

func (ws workingSet) Less(i, j int) bool {
	if ws[i].spread != ws[j].spread {
		return ws[i].spread > ws[j].spread
	}
	return ws[i].seq < ws[j].seq
}

func (ws workingSet) Swap(i, j int) { ws[i], ws[j] = ws[j], ws[i] }

func (ws *workingSet) Push(x any) { *ws = append(*ws, x.(*partitionNode)) }

func (ws *workingSet) Pop() any {
	old := *ws
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // release the reference held by the backing array
	*ws = old[:n-1]
	return node
}
