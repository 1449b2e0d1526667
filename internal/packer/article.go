package packer

import "math"

// Article is a single weighted item to be assigned to a box. It is a pure
// value: the packer only reads Weight and carries ID through to the result.
type Article struct {
	ID     int
	Weight float64
}

// NewArticle constructs an Article, rejecting weights that are negative,
// NaN, or infinite.
func NewArticle(id int, weight float64) (Article, error) {
	if !validWeight(weight) {
		return Article{}, ErrInvalidWeight
	}
	return Article{ID: id, Weight: weight}, nil
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}
