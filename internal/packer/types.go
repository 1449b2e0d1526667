package packer

// Result is a finished packing: exactly the requested number of boxes,
// ordered heaviest first, and the spread between the heaviest and lightest
// box sums.
type Result struct {
	Boxes  []Box
	Spread float64
}

// Packer distributes articles across a fixed number of boxes so that box
// sums are as even as possible.
type Packer interface {
	Pack(articles []Article, boxCount int) (Result, error)
}
