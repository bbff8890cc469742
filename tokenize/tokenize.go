// Package tokenize turns a flat command-line token list into leading
// positional targets, per-flag raw values and the verbatim remainder after
// the first bare "--". It is shape-driven and type-blind: a token that looks
// numeric is tagged as a number regardless of what the flag is declared as,
// and the validator re-coerces from the preserved original text.
package tokenize

import (
	"strings"
	"unicode/utf8"

	"github.com/declopt/declopt/util"
)

// Value is one raw flag value. Text always preserves the original spelling
// so type-aware callers can coerce either way.
type Value struct {
	Text    string
	Num     float64
	Numeric bool
}

// Flag is one flag occurrence, in token order
type Flag struct {
	Name     string // flag name without dashes
	Raw      string // the flag as typed, with its - or -- prefix
	Long     bool
	Attached bool // value was glued to the flag ("--f=v", "-fv")
	HasValue bool
	Value    Value
}

// Result is the raw tokenizer output consumed by the validator
type Result struct {
	Targets []string
	Flags   []Flag
	Rest    []string
}

// Config controls scanning
type Config struct {
	// IsBoolean reports whether the named flag is a bare switch. Boolean
	// flags never consume the following token. A nil callback treats no
	// flag as boolean.
	IsBoolean func(name string) bool
}

func (c Config) isBoolean(name string) bool {
	return c.IsBoolean != nil && c.IsBoolean(name)
}

// Scan walks the token list once. Flag-shaped tokens become Flag entries;
// "--" stops flag interpretation and collects the remainder verbatim; "-"
// and negative numbers are ordinary values, never flags. Non-flag tokens
// that are not consumed as a flag value accumulate as targets.
func Scan(tokens []string, cfg Config) *Result {
	res := &Result{Targets: []string{}, Rest: []string{}}
	st := NewState(tokens)

	for st.Advance() {
		tok := st.CurrentArg()
		if tok == "--" {
			res.Rest = append(res.Rest, st.Remaining()...)
			break
		}
		if !isFlagToken(tok) {
			res.Targets = append(res.Targets, tok)
			continue
		}

		f := splitFlag(tok)
		if !f.HasValue && !cfg.isBoolean(f.Name) {
			if st.Pos()+1 < st.Len() && !isFlagToken(st.Peek()) && st.Peek() != "--" {
				st.Advance()
				f.HasValue = true
				f.Value = Detect(st.CurrentArg())
			}
		}
		res.Flags = append(res.Flags, f)
	}

	return res
}

// Detect applies positional value-shape detection to a raw token
func Detect(text string) Value {
	if n, ok := util.ParseNumeric(text); ok {
		return Value{Text: text, Num: n, Numeric: true}
	}
	return Value{Text: text}
}

// isFlagToken reports whether a token is flag-shaped. A lone "-" and
// numeric-looking tokens such as "-10" are values, not flags.
func isFlagToken(tok string) bool {
	return strings.HasPrefix(tok, "-") && len(tok) > 1 && !util.IsNumeric(tok)
}

func splitFlag(tok string) Flag {
	if strings.HasPrefix(tok, "--") {
		name, val, attached := strings.Cut(tok[2:], "=")
		f := Flag{Name: name, Raw: "--" + name, Long: true}
		if attached {
			f.Attached = true
			f.HasValue = true
			f.Value = Detect(val)
		}
		return f
	}

	r, size := utf8.DecodeRuneInString(tok[1:])
	f := Flag{Name: string(r), Raw: "-" + string(r)}
	if glued := tok[1+size:]; glued != "" {
		f.Attached = true
		f.HasValue = true
		f.Value = Detect(strings.TrimPrefix(glued, "="))
	}
	return f
}
