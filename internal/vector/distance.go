package vector

import (
	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity computes cosine similarity between two vectors of equal length.
// A zero-magnitude operand yields 0. The result is clamped to [-1, 1].
func CosineSimilarity(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrVectorLengthMismatch
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	// Dot of the unit vectors: neither the raw dot nor na*nb may under- or overflow.
	sim := floats.Dot(unit(a, na), unit(b, nb))
	switch {
	case sim > 1:
		sim = 1
	case sim < -1:
		sim = -1
	}
	return sim, nil
}

// CosineDistance returns 1 - cosine similarity of a and b.
//
// If either vector has zero magnitude the similarity is undefined and the
// distance is exactly 1.0.
func CosineDistance(a, b Vector) (float64, error) {
	sim, err := CosineSimilarity(a, b)
	if err != nil {
		return 0, err
	}
	return 1.0 - sim, nil
}

func unit(v Vector, norm float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}
