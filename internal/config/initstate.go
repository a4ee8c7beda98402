// Package config parses the optional --init file that seeds the abstract
// state at the program entry, per spec.md §6. The format is deliberately
// forgiving: unknown variables are ignored and malformed lines are
// silently skipped, the same tolerance the surface-syntax front end
// applies to recoverable input errors.
package config

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"pinterval/internal/domain"
)

// VarIndex resolves a variable name to its state-vector slot. Satisfied by
// *symtab.Table.
type VarIndex interface {
	Index(name string) (int, bool)
}

// ParseInitFile reads path and overrides entries in a Top-initialized
// state for every well-formed, known-variable line it finds.
func ParseInitFile(path string, env VarIndex, bd domain.Bounds, numVars int) (domain.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.State{}, err
	}
	defer f.Close()
	return parseInit(f, env, bd, numVars)
}

func parseInit(r io.Reader, env VarIndex, bd domain.Bounds, numVars int) (domain.State, error) {
	st := domain.TopState(bd, numVars)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		name, val, ok := splitLine(line)
		if !ok {
			continue
		}
		idx, ok := env.Index(name)
		if !ok {
			continue
		}
		iv, ok := parseValue(bd, val)
		if !ok {
			continue
		}
		st = st.With(idx, iv)
	}
	if err := sc.Err(); err != nil {
		return domain.State{}, err
	}
	return st, nil
}

func splitLine(line string) (name, value string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}

func parseValue(bd domain.Bounds, value string) (domain.Interval, bool) {
	switch value {
	case "TOP":
		return domain.Top(), true
	case "BOTTOM":
		return domain.Bot(), true
	}
	if !strings.HasPrefix(value, "[") || !strings.HasSuffix(value, "]") {
		return domain.Interval{}, false
	}
	inner := value[1 : len(value)-1]
	parts := strings.SplitN(inner, ",", 2)
	if len(parts) != 2 {
		return domain.Interval{}, false
	}
	lo, ok := parseBound(strings.TrimSpace(parts[0]))
	if !ok {
		return domain.Interval{}, false
	}
	hi, ok := parseBound(strings.TrimSpace(parts[1]))
	if !ok {
		return domain.Interval{}, false
	}
	return domain.Mk(bd, lo, hi), true
}

func parseBound(s string) (domain.Bound, bool) {
	switch s {
	case "-INF":
		return domain.NegInfBound(), true
	case "+INF":
		return domain.PosInfBound(), true
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return domain.Bound{}, false
	}
	return domain.FiniteBound(v), true
}
