package vector

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadVectors_TwoLines(t *testing.T) {
	vs, err := ReadVectors(strings.NewReader("1.0 2.0 3.0\n4.0 5.0 6.0"), ParseOptions{})
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, Vector{1, 2, 3}, vs[0])
	assert.Equal(t, Vector{4, 5, 6}, vs[1])
}

func TestReadVectors_SkipsBlankLines(t *testing.T) {
	in := "\n1 2\n\n   \n3 4\n\n"
	vs, err := ReadVectors(strings.NewReader(in), ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, []Vector{{1, 2}, {3, 4}}, vs)
}

func TestReadVectors_MixedWhitespace(t *testing.T) {
	vs, err := ReadVectors(strings.NewReader("1\t2   3\r\n-4e1 .5 +6\n"), ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, []Vector{{1, 2, 3}, {-40, 0.5, 6}}, vs)
}

func TestReadVectors_LenientStopsAtBadToken(t *testing.T) {
	var warned []int
	opts := ParseOptions{OnWarning: func(line int, _ string) { warned = append(warned, line) }}

	vs, err := ReadVectors(strings.NewReader("1 2 x 4\nfoo\n5 6\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []Vector{{1, 2}, {5, 6}}, vs)
	assert.Equal(t, []int{1, 2}, warned)
}

func TestReadVectors_StrictRejectsBadToken(t *testing.T) {
	_, err := ReadVectors(strings.NewReader("1 2\n3 abc\n"), ParseOptions{Strict: true})
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "abc", pe.Token)
}

func TestReadVectors_LenientKeepsLeadingNumber(t *testing.T) {
	var warned []int
	opts := ParseOptions{OnWarning: func(line int, _ string) { warned = append(warned, line) }}

	vs, err := ReadVectors(strings.NewReader("1.5abc 2\n1,2,3\n4 5e\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []Vector{{1.5}, {1}, {4, 5}}, vs)
	assert.Equal(t, []int{1, 2, 3}, warned)
}

func TestReadVectors_LenientRejectsNonFinite(t *testing.T) {
	in := "nan 1\n1 inf\n-Infinity 2\n0x1p3 2\n1e400 3\n7 8\n"
	vs, err := ReadVectors(strings.NewReader(in), ParseOptions{})
	require.NoError(t, err)
	assert.Equal(t, []Vector{{1}, {0}, {7, 8}}, vs)
	for _, v := range vs {
		for _, x := range v {
			assert.False(t, math.IsNaN(x) || math.IsInf(x, 0))
		}
	}
}

func TestReadVectors_StrictRejectsNonFinite(t *testing.T) {
	for _, in := range []string{"nan 1\n1 1\n", "1 +Inf\n1 1\n", "0x1p3 1\n1 1\n", "1e400 1\n1 1\n", "1.5abc 1\n1 1\n"} {
		_, err := ReadVectors(strings.NewReader(in), ParseOptions{Strict: true})
		var pe *ParseError
		require.ErrorAs(t, err, &pe, "input %q", in)
		assert.Equal(t, 1, pe.Line)
	}
}

func TestParseLine_Literals(t *testing.T) {
	v, err := ParseLine("5. .25 -0 1E-2 +3e+1")
	require.NoError(t, err)
	assert.Equal(t, Vector{5, 0.25, 0, 0.01, 30}, v)

	_, err = ParseLine(".")
	assert.Error(t, err)
}

func TestParseLine_Empty(t *testing.T) {
	v, err := ParseLine("   ")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), ErrTooFewVectors)
	assert.ErrorIs(t, Validate([]Vector{{1, 2}}), ErrTooFewVectors)
	assert.ErrorIs(t, Validate([]Vector{{1, 2}, {1, 2, 3}}), ErrDimensionMismatch)
	assert.NoError(t, Validate([]Vector{{1, 2}, {3, 4}, {5, 6}}))
}

func TestVector_Format(t *testing.T) {
	assert.Equal(t, "1.0000 2.5000 -3.0000 ", Vector{1, 2.5, -3}.Format(4))
	assert.Equal(t, "1.00 ", Vector{1}.Format(2))
	assert.Equal(t, "", Vector{}.Format(4))
}
