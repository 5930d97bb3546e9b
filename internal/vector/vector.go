package vector

import (
	"strconv"
	"strings"
)

// Vector is an ordered sequence of float64 values.
type Vector []float64

// Dim returns the number of components in v.
func (v Vector) Dim() int {
	return len(v)
}

// Format renders v in fixed-point notation with prec decimals.
// Every value is followed by a single space.
func (v Vector) Format(prec int) string {
	var b strings.Builder
	for _, x := range v {
		b.WriteString(strconv.FormatFloat(x, 'f', prec, 64))
		b.WriteByte(' ')
	}
	return b.String()
}
