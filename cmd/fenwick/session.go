package main

import (
	"fmt"
	"log/slog"

	"github.com/esutil/fenwick"
)

// querier answers the subcommands; its arguments are raw command-line
// strings, so the element type stays hidden from the command layer.
type querier interface {
	size() int
	at(index string) (string, error)
	sum(args []string) (string, error)
	lowerBound(value string) (string, error)
	upperBound(value string) (string, error)
	values() []string
	sample(count int, seed int64) ([]int, error)
}

type session[V fenwick.Number] struct {
	tree  *fenwick.Tree[V]
	parse func(string) (V, error)
	log   *slog.Logger
}

func newSession[V fenwick.Number](tokens []string, parse func(string) (V, error), log *slog.Logger) (*session[V], error) {
	values, err := parseAll(tokens, parse)
	if err != nil {
		return nil, err
	}
	s := &session[V]{tree: fenwick.From(values...), parse: parse, log: log}
	log.Debug("tree loaded", "len", s.tree.Len(), "total", s.tree.Total())
	return s, nil
}

func format[V fenwick.Number](v V) string {
	return fmt.Sprint(v)
}

func (s *session[V]) size() int {
	return s.tree.Len()
}

func (s *session[V]) at(arg string) (string, error) {
	i, err := parseIndex(arg, s.tree.Len())
	if err != nil {
		return "", err
	}
	return format(s.tree.At(i)), nil
}

func (s *session[V]) sum(args []string) (string, error) {
	n := s.tree.Len()
	switch len(args) {
	case 0:
		return format(s.tree.Total()), nil
	case 1:
		i, err := parseIndex(args[0], n)
		if err != nil {
			return "", err
		}
		return format(s.tree.Sum(i)), nil
	default:
		first, err := parseIndex(args[0], n)
		if err != nil {
			return "", err
		}
		last, err := parseIndex(args[1], n)
		if err != nil {
			return "", err
		}
		if first > last {
			return "", fmt.Errorf("%w: range [%d, %d] is reversed", errInvalidIndex, first, last)
		}
		return format(s.tree.SumRange(first, last)), nil
	}
}

// requireNonNegative checks the precondition of the search operations.
func (s *session[V]) requireNonNegative() error {
	var zero V
	for i, v := range s.tree.All() {
		if v < zero {
			return fmt.Errorf("%w %v at index %d", errNegativeWeight, v, i)
		}
	}
	return nil
}

func (s *session[V]) bound(arg string, search func(V) int) (string, error) {
	if err := s.requireNonNegative(); err != nil {
		return "", err
	}
	v, err := s.parse(arg)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(search(v)), nil
}

func (s *session[V]) lowerBound(arg string) (string, error) {
	return s.bound(arg, s.tree.LowerBound)
}

func (s *session[V]) upperBound(arg string) (string, error) {
	return s.bound(arg, s.tree.UpperBound)
}

func (s *session[V]) values() []string {
	out := make([]string, 0, s.tree.Len())
	for _, v := range s.tree.Values() {
		out = append(out, format(v))
	}
	return out
}

func (s *session[V]) sample(count int, seed int64) ([]int, error) {
	if err := s.requireNonNegative(); err != nil {
		return nil, err
	}
	var zero V
	if !(zero < s.tree.Total()) {
		return nil, fmt.Errorf("%w: total weight is %v", errNoValues, s.tree.Total())
	}
	opts := []fenwick.SamplerOption{}
	if seed != 0 {
		opts = append(opts, fenwick.SeededRNG(seed))
	}
	s.log.Debug("sampling", "count", count, "seed", seed)
	return fenwick.NewSampler(s.tree, opts...).SampleN(nil, count), nil
}
