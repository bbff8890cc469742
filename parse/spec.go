// Package parse implements the textual mini-grammar used to declare options:
//
//	[-s,]--long:type[! | =default][;description]
//
// where type is one of boolean, number, number[], string and string[], "!"
// marks the option required and default is a JSON literal matching type.
// Whitespace is insignificant outside quoted strings.
package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/declopt/declopt/types"
)

var (
	ErrInvalidFormat       = errors.New("invalid option definition")
	ErrUnknownType         = errors.New("unknown option type")
	ErrBadDefault          = errors.New("malformed default literal")
	ErrDefaultMismatch     = errors.New("default value does not match option type")
	ErrRequiredWithDefault = errors.New("definition declares both a default value and a required marker")
)

// Spec is the structured form of one option definition string
type Spec struct {
	Short       string
	Long        string
	Type        types.ValueType
	Required    bool
	HasDefault  bool
	Default     types.Value
	Description string
}

// Definition parses a single option definition string into a Spec.
// When no default clause is present, Default holds the implicit default of
// the declared type (false, absent, empty sequence).
func Definition(spec string) (*Spec, error) {
	sc := &scanner{src: []rune(spec)}
	out := &Spec{}

	sc.skipSpace()
	if sc.eof() {
		return nil, fmt.Errorf("%w: empty definition", ErrInvalidFormat)
	}

	out.Short = sc.shortAlias()

	sc.skipSpace()
	if !sc.literal("--") {
		return nil, fmt.Errorf("%w: expected \"--\" before the long flag in %q", ErrInvalidFormat, spec)
	}
	out.Long = sc.alnum()
	if out.Long == "" {
		return nil, fmt.Errorf("%w: missing long flag name in %q", ErrInvalidFormat, spec)
	}
	if len(out.Long) < 2 {
		return nil, fmt.Errorf("%w: long flag %q must be longer than one character", ErrInvalidFormat, out.Long)
	}

	sc.skipSpace()
	if !sc.accept(':') {
		return nil, fmt.Errorf("%w: expected \":\" after the flag names in %q", ErrInvalidFormat, spec)
	}
	sc.skipSpace()
	typeTok := sc.typeToken()
	vt, known := types.ValueTypeFromString(typeTok)
	if !known {
		return nil, fmt.Errorf("%w: %q in %q", ErrUnknownType, typeTok, spec)
	}
	out.Type = vt

	sc.skipSpace()
	switch {
	case sc.accept('!'):
		out.Required = true
		sc.skipSpace()
		if sc.peek() == '=' {
			return nil, fmt.Errorf("%w: %q", ErrRequiredWithDefault, spec)
		}
	case sc.accept('='):
		raw := sc.rawDefault()
		def, err := decodeDefault(vt, raw)
		if err != nil {
			// the same mistake spelled the other way round: "=default!"
			if strings.HasSuffix(raw, "!") {
				trimmed := strings.TrimSpace(strings.TrimSuffix(raw, "!"))
				if _, retry := decodeDefault(vt, trimmed); retry == nil {
					return nil, fmt.Errorf("%w: %q", ErrRequiredWithDefault, spec)
				}
			}
			return nil, err
		}
		out.HasDefault = true
		out.Default = def
	}

	if !out.HasDefault {
		out.Default = types.Implicit(vt)
	}

	sc.skipSpace()
	if sc.accept(';') {
		out.Description = strings.TrimSpace(string(sc.src[sc.pos:]))
		sc.pos = len(sc.src)
	}

	sc.skipSpace()
	if !sc.eof() {
		return nil, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidFormat, string(sc.peek()), spec)
	}

	return out, nil
}

func decodeDefault(vt types.ValueType, raw string) (types.Value, error) {
	if raw == "" {
		return types.Value{}, fmt.Errorf("%w: empty default for type %s", ErrBadDefault, vt)
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return types.Value{}, fmt.Errorf("%w: %q", ErrBadDefault, raw)
	}

	switch vt {
	case types.Boolean:
		b, ok := decoded.(bool)
		if !ok {
			return mismatch(vt, raw)
		}
		return types.BoolOf(b), nil
	case types.Number:
		f, ok := decoded.(float64)
		if !ok {
			return mismatch(vt, raw)
		}
		return types.NumberOf(f), nil
	case types.String:
		s, ok := decoded.(string)
		if !ok {
			return mismatch(vt, raw)
		}
		return types.StringOf(s), nil
	case types.NumberArray:
		items, ok := decoded.([]any)
		if !ok {
			return mismatch(vt, raw)
		}
		ns := make([]float64, len(items))
		for i, item := range items {
			f, ok := item.(float64)
			if !ok {
				return types.Value{}, fmt.Errorf("%w: element %d of %q is not a number", ErrDefaultMismatch, i, raw)
			}
			ns[i] = f
		}
		return types.NumbersOf(ns), nil
	case types.StringArray:
		items, ok := decoded.([]any)
		if !ok {
			return mismatch(vt, raw)
		}
		ss := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return types.Value{}, fmt.Errorf("%w: element %d of %q is not a string", ErrDefaultMismatch, i, raw)
			}
			ss[i] = s
		}
		return types.StringsOf(ss), nil
	}

	return mismatch(vt, raw)
}

func mismatch(vt types.ValueType, raw string) (types.Value, error) {
	return types.Value{}, fmt.Errorf("%w: %q is not a %s", ErrDefaultMismatch, raw, vt)
}

type scanner struct {
	src []rune
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() rune {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) accept(r rune) bool {
	if s.peek() == r {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) literal(lit string) bool {
	save := s.pos
	for _, r := range lit {
		if !s.accept(r) {
			s.pos = save
			return false
		}
	}
	return true
}

func (s *scanner) skipSpace() {
	for !s.eof() && unicode.IsSpace(s.src[s.pos]) {
		s.pos++
	}
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (s *scanner) alnum() string {
	start := s.pos
	for !s.eof() && isAlnum(s.src[s.pos]) {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

// shortAlias consumes a leading "-s," or "s," clause. It backtracks and
// returns "" when the input starts with the long flag instead.
func (s *scanner) shortAlias() string {
	save := s.pos
	if s.peek() == '-' {
		if s.pos+1 < len(s.src) && s.src[s.pos+1] == '-' {
			return ""
		}
		s.pos++
		s.skipSpace()
	}
	if !isAlnum(s.peek()) {
		s.pos = save
		return ""
	}
	short := string(s.src[s.pos])
	s.pos++
	s.skipSpace()
	if !s.accept(',') {
		s.pos = save
		return ""
	}
	return short
}

// typeToken consumes a type name and an optional "[]" suffix
func (s *scanner) typeToken() string {
	tok := s.alnum()
	if s.literal("[]") {
		tok += "[]"
	}
	return tok
}

// rawDefault consumes a default literal up to the description separator.
// A ";" inside a quoted string does not terminate the literal.
func (s *scanner) rawDefault() string {
	var b strings.Builder
	inQuotes := false
	escaped := false
	for !s.eof() {
		r := s.src[s.pos]
		switch {
		case escaped:
			escaped = false
		case inQuotes && r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ';' && !inQuotes:
			return strings.TrimSpace(b.String())
		}
		b.WriteRune(r)
		s.pos++
	}
	return strings.TrimSpace(b.String())
}
