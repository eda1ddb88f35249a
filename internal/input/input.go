// Package input parses the keys and intervals treectl reads from flags and
// YAML files.
package input

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/g-m-twostay/go-trees/Trees"
)

// ErrSyntax is matched by every parse error of this package.
var ErrSyntax = errors.New("syntax error")

// Span is an interval as written in a YAML file, either as a two element
// sequence `[lo, hi]` or as a mapping `{low: lo, high: hi}`.
type Span Trees.Interval[int]

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Span) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := n.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return errors.Wrapf(ErrSyntax, "line %d: interval needs 2 endpoints, got %d", n.Line, len(pair))
		}
		s.Low, s.High = pair[0], pair[1]
	case yaml.MappingNode:
		var m struct {
			Low  *int `yaml:"low"`
			High *int `yaml:"high"`
		}
		if err := n.Decode(&m); err != nil {
			return err
		}
		if m.Low == nil || m.High == nil {
			return errors.Wrapf(ErrSyntax, "line %d: interval needs low and high", n.Line)
		}
		s.Low, s.High = *m.Low, *m.High
	default:
		return errors.Wrapf(ErrSyntax, "line %d: interval must be a sequence or a mapping", n.Line)
	}
	return nil
}

// File is the layout of a treectl input file. Either list may be absent.
type File struct {
	Keys      []int  `yaml:"keys"`
	Intervals []Span `yaml:"intervals"`
}

// Decode reads a File from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode input")
	}
	return &f, nil
}

// IntervalList converts the spans of f. Validity isn't checked here; the
// tree rejects reversed intervals.
func (f *File) IntervalList() []Trees.Interval[int] {
	ivs := make([]Trees.Interval[int], len(f.Intervals))
	for i, s := range f.Intervals {
		ivs[i] = Trees.Interval[int](s)
	}
	return ivs
}

// ParseInts parses a comma separated list of integers. Blank entries are
// skipped.
func ParseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "%q isn't an integer", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseFloats parses a comma separated list of numbers.
func ParseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "%q isn't a number", f)
		}
		out = append(out, v)
	}
	return out, nil
}

func parsePair(s, sep string) (string, string, error) {
	a, b, ok := strings.Cut(s, sep)
	if !ok {
		return "", "", errors.Wrapf(ErrSyntax, "%q: missing %q", s, sep)
	}
	return strings.TrimSpace(a), strings.TrimSpace(b), nil
}

func atoi2(a, b, s string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrSyntax, "%q: %q isn't an integer", s, a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrSyntax, "%q: %q isn't an integer", s, b)
	}
	return x, y, nil
}

// MaxRange is the largest number of keys ParseRange produces.
const MaxRange = 1 << 20

// ParseRange parses "a:b" into the keys a, a+1, ..., b-1. At most MaxRange
// keys are accepted.
func ParseRange(s string) ([]int, error) {
	a, b, err := parsePair(s, ":")
	if err != nil {
		return nil, err
	}
	lo, hi, err := atoi2(a, b, s)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, errors.Wrapf(ErrSyntax, "%q: end before start", s)
	}
	if uint(hi)-uint(lo) > MaxRange {
		return nil, errors.Wrapf(ErrSyntax, "%q: more than %d keys", s, MaxRange)
	}
	out := make([]int, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, k)
	}
	return out, nil
}

// ParseInterval parses "lo,hi".
func ParseInterval(s string) (Trees.Interval[int], error) {
	a, b, err := parsePair(s, ",")
	if err != nil {
		return Trees.Interval[int]{}, err
	}
	lo, hi, err := atoi2(a, b, s)
	if err != nil {
		return Trees.Interval[int]{}, err
	}
	return Trees.Interval[int]{Low: lo, High: hi}, nil
}

// ParseAssign parses "i=v" into an index and a number.
func ParseAssign(s string) (int, float64, error) {
	a, b, err := parsePair(s, "=")
	if err != nil {
		return 0, 0, err
	}
	i, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrSyntax, "%q: %q isn't an index", s, a)
	}
	v, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(ErrSyntax, "%q: %q isn't a number", s, b)
	}
	return i, v, nil
}
