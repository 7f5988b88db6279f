package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

var (
	errNoValues       = errors.New("no values given")
	errInvalidNumber  = errors.New("invalid number")
	errInvalidIndex   = errors.New("invalid index")
	errNegativeWeight = errors.New("negative value")
)

func isSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// splitNumbers splits s on commas, semicolons and white space.
func splitNumbers(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// readNumbers returns the number tokens of r, which holds any number of
// them per line. Text after '#' is a comment.
func readNumbers(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		tokens = append(tokens, splitNumbers(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func readNumbersFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tokens, err := readNumbers(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return tokens, nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", errInvalidNumber, s)
	}
	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q", errInvalidNumber, s)
	}
	return v, nil
}

func parseAll[V any](tokens []string, parse func(string) (V, error)) ([]V, error) {
	if len(tokens) == 0 {
		return nil, errNoValues
	}
	values := make([]V, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// parseIndex parses s as an index into a sequence of n values.
func parseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q", errInvalidIndex, s)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w %d: want 0 ≤ index < %d", errInvalidIndex, i, n)
	}
	return i, nil
}
