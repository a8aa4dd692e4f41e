package freq

import (
	"fmt"
	"strings"

	"go.lepak.sg/wordfreq/words"
)

// Engine selects how a table is filled.
type Engine int

const (
	// Scan walks the buffer directly and copies each distinct word once.
	Scan Engine = iota
	// Regexp finds words with the regexp2 engine. It allocates for every
	// match, and for a string copy of the buffer on every pass.
	Regexp
	// Naive copies every occurrence into a new string before looking it
	// up, the way a plain map[string]int count would.
	Naive
)

func (e Engine) String() string {
	switch e {
	case Scan:
		return "scan"
	case Regexp:
		return "regexp"
	case Naive:
		return "naive"
	default:
		return "<invalid freq.Engine>"
	}
}

// ParseEngine is the inverse of Engine.String. It is case-insensitive.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scan", "":
		return Scan, nil
	case "regexp":
		return Regexp, nil
	case "naive":
		return Naive, nil
	default:
		return 0, fmt.Errorf("unknown engine %q", s)
	}
}

// CountWith is like Count, but lets the caller pick the engine.
// Every engine produces the same table; only Regexp can fail.
func (t *Table) CountWith(e Engine, buf []byte) error {
	switch e {
	case Scan:
		t.Count(buf)
		return nil
	case Regexp:
		return t.countRegexp(buf)
	case Naive:
		t.countNaive(buf)
		return nil
	default:
		panic("unhandled case in CountWith")
	}
}

func (t *Table) countRegexp(buf []byte) error {
	s := words.NewRegexpScanner(string(buf), t.class)
	for s.Next() {
		n, _ := t.words.Upsert(s.Span().In(buf))
		*n++
		t.total++
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("regexp scan: %w", err)
	}
	return nil
}

func (t *Table) countNaive(buf []byte) {
	s := words.NewScanner(buf, t.class)
	for s.Next() {
		w := string(s.Bytes())
		n, _ := t.words.UpsertString(w)
		*n++
		t.total++
	}
}
