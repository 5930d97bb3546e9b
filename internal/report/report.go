package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/kamusis/vecpair/internal/pairs"
	"github.com/kamusis/vecpair/internal/vector"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultPrecision is the number of decimals printed for distances and vector values.
const DefaultPrecision = 4

// Options controls report rendering.
type Options struct {
	Format    string
	Precision int
}

// Entry is one pair as rendered by the structured (json/yaml) formats.
type Entry struct {
	I        int       `json:"i" yaml:"i"`
	J        int       `json:"j" yaml:"j"`
	Distance float64   `json:"distance" yaml:"distance"`
	VectorI  []float64 `json:"vector_i" yaml:"vector_i"`
	VectorJ  []float64 `json:"vector_j" yaml:"vector_j"`
}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Write renders ps (already sorted) against the source vectors vs.
func Write(w io.Writer, vs []vector.Vector, ps []pairs.PairDistance, opts Options) error {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Precision < 0 {
		return fmt.Errorf("invalid precision: %d", opts.Precision)
	}
	for _, p := range ps {
		if p.I < 0 || p.J < 0 || p.I >= len(vs) || p.J >= len(vs) {
			return fmt.Errorf("pair (%d, %d) out of range for %d vectors", p.I, p.J, len(vs))
		}
	}

	switch opts.Format {
	case FormatText:
		return writeText(w, vs, ps, opts.Precision)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries(vs, ps))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries(vs, ps)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

func writeText(w io.Writer, vs []vector.Vector, ps []pairs.PairDistance, prec int) error {
	bw := bufio.NewWriter(w)
	for _, p := range ps {
		fmt.Fprintf(bw, "Pair (%d, %d): Cosine Distance = %s\n", p.I, p.J, strconv.FormatFloat(p.Distance, 'f', prec, 64))
		fmt.Fprintf(bw, "Vector %d: %s\n", p.I, vs[p.I].Format(prec))
		fmt.Fprintf(bw, "Vector %d: %s\n\n", p.J, vs[p.J].Format(prec))
	}
	return bw.Flush()
}

func entries(vs []vector.Vector, ps []pairs.PairDistance) []Entry {
	out := make([]Entry, 0, len(ps))
	for _, p := range ps {
		out = append(out, Entry{
			I:        p.I,
			J:        p.J,
			Distance: p.Distance,
			VectorI:  vs[p.I],
			VectorJ:  vs[p.J],
		})
	}
	return out
}
