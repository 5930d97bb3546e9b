package pairs

import "sort"

// Sort orders pairs by distance (ascending). Ties keep their enumeration order.
func Sort(ps []PairDistance) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Distance < ps[j].Distance
	})
}

// Top returns the first k pairs, or all of them when k <= 0.
func Top(ps []PairDistance, k int) []PairDistance {
	if k > 0 && len(ps) > k {
		return ps[:k]
	}
	return ps
}
