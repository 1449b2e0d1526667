package packer

// Box holds the IDs of the articles assigned to one container, in insertion
// order, together with their total weight. Sum always equals the total weight
// of Members.
type Box struct {
	Sum     float64
	Members []int
}

func seedBox(a Article) *Box {
	return &Box{Sum: a.Weight, Members: []int{a.ID}}
}

func emptyBox() *Box {
	return &Box{}
}

// absorb appends other's members after b's own and adds the sums. The other
// box is consumed and must not be reused.
func (b *Box) absorb(other *Box) {
	b.Members = append(b.Members, other.Members...)
	b.Sum += other.Sum
}
