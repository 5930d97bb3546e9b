package pairs

import (
	"fmt"

	"github.com/kamusis/vecpair/internal/vector"
)

// Compute returns the cosine distance of every unordered pair in vs, in
// (i, j) enumeration order.
func Compute(vs []vector.Vector) ([]PairDistance, error) {
	n := len(vs)
	if n < 2 {
		return []PairDistance{}, nil
	}
	out := make([]PairDistance, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := vector.CosineDistance(vs[i], vs[j])
			if err != nil {
				return nil, fmt.Errorf("pair (%d, %d): %w", i, j, err)
			}
			out = append(out, PairDistance{I: i, J: j, Distance: d})
		}
	}
	return out, nil
}
