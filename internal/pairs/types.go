package pairs

// PairDistance is the cosine distance between input vectors I and J, with I < J.
type PairDistance struct {
	I        int
	J        int
	Distance float64
}
