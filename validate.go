package declopt

import (
	"github.com/declopt/declopt/tokenize"
	"github.com/declopt/declopt/types"
)

// resolve merges raw tokenizer output with the definition set: one
// left-to-right pass over the declared keys, then unknown-flag detection in
// token order, then the target rule. The engine stops on the first error.
func (p *Parser) resolve(scan *tokenize.Result) (*ParseResult, error) {
	res := &ParseResult{
		Targets: scan.Targets,
		Options: make(map[string]types.Value, p.defs.Len()),
		Rest:    scan.Rest,
	}

	for pair := p.defs.oldest(); pair != nil; pair = pair.Next() {
		def := pair.Value
		v, err := p.resolveOption(def, collect(scan, def))
		if err != nil {
			return nil, err
		}
		res.Options[def.Key] = v
	}

	for _, f := range scan.Flags {
		if _, ok := p.defs.ByFlag(f.Name); !ok {
			return nil, newValidationError(ErrUnknownOption, f.Raw, "unknown option: %s", f.Raw)
		}
	}

	if p.target.Required && len(res.Targets) == 0 {
		msg := p.target.Message
		if msg == "" {
			msg = "at least one target is required"
		}
		return nil, newValidationError(ErrMissingTarget, "", "%s", msg)
	}

	return res, nil
}

// collect gathers the occurrences feeding one option: the long-flag channel
// first, then the short-flag channel. This fixed order governs the element
// order of array types fed through both aliases.
func collect(scan *tokenize.Result, def *OptionDefinition) []tokenize.Flag {
	var occ []tokenize.Flag
	for _, f := range scan.Flags {
		if f.Name == def.Long {
			occ = append(occ, f)
		}
	}
	if def.Short != "" {
		for _, f := range scan.Flags {
			if f.Name == def.Short {
				occ = append(occ, f)
			}
		}
	}
	return occ
}

func (p *Parser) resolveOption(def *OptionDefinition, occ []tokenize.Flag) (types.Value, error) {
	if def.Type == types.Boolean {
		return p.resolveBoolean(def, occ)
	}
	if len(occ) == 0 {
		return p.resolveAbsent(def)
	}

	switch def.Type {
	case types.Number:
		f, err := single(def, occ)
		if err != nil {
			return types.Value{}, err
		}
		if !f.Value.Numeric {
			return types.Value{}, newValidationError(ErrNotANumber, f.Raw,
				"option %s expects a number, got %q", f.Raw, f.Value.Text)
		}
		return types.NumberOf(f.Value.Num), nil

	case types.String:
		f, err := single(def, occ)
		if err != nil {
			return types.Value{}, err
		}
		// auto-detected numbers coerce back to their original spelling
		return types.StringOf(f.Value.Text), nil

	case types.NumberArray:
		ns := make([]float64, 0, len(occ))
		for _, f := range occ {
			if !f.HasValue {
				return types.Value{}, newValidationError(ErrMissingValue, f.Raw,
					"option %s needs a value", f.Raw)
			}
			if !f.Value.Numeric {
				return types.Value{}, newValidationError(ErrNotANumber, f.Raw,
					"option %s expects numbers, %q is not a number", f.Raw, f.Value.Text)
			}
			ns = append(ns, f.Value.Num)
		}
		return types.NumbersOf(ns), nil

	case types.StringArray:
		ss := make([]string, 0, len(occ))
		for _, f := range occ {
			if !f.HasValue {
				return types.Value{}, newValidationError(ErrMissingValue, f.Raw,
					"option %s needs a value", f.Raw)
			}
			ss = append(ss, f.Value.Text)
		}
		return types.StringsOf(ss), nil
	}

	return types.Value{}, newValidationError(ErrUnknownOption, def.Aliases(),
		"option %s has an unsupported type", def.Aliases())
}

// single enforces scalar arity: exactly one occurrence carrying a value
func single(def *OptionDefinition, occ []tokenize.Flag) (tokenize.Flag, error) {
	if len(occ) > 1 {
		return tokenize.Flag{}, newValidationError(ErrMultipleValues, def.Aliases(),
			"option %s should not have multiple values", def.Aliases())
	}
	f := occ[0]
	if !f.HasValue {
		return tokenize.Flag{}, newValidationError(ErrMissingValue, f.Raw,
			"option %s needs a value", f.Raw)
	}
	return f, nil
}

// resolveBoolean applies boolean strictness: an attached value is an error
// wherever it occurs before the "--" terminator, presence means true, and
// absence falls back to default substitution.
func (p *Parser) resolveBoolean(def *OptionDefinition, occ []tokenize.Flag) (types.Value, error) {
	for _, f := range occ {
		if f.HasValue {
			return types.Value{}, newValidationError(ErrBooleanValue, f.Raw,
				"option %s is a boolean switch and does not take a value", f.Raw)
		}
	}
	switch len(occ) {
	case 0:
		return p.resolveAbsent(def)
	case 1:
		return types.BoolOf(true), nil
	default:
		return types.Value{}, newValidationError(ErrMultipleValues, def.Aliases(),
			"option %s should not have multiple values", def.Aliases())
	}
}

// resolveAbsent runs the no-raw-value path: environment fallback, then
// default substitution, then the required check. Only the absent scalar
// representation can still be "missing" here - booleans resolve to false and
// arrays to the empty sequence, which are present values.
func (p *Parser) resolveAbsent(def *OptionDefinition) (types.Value, error) {
	if v, ok, err := p.fromEnv(def); err != nil {
		return types.Value{}, err
	} else if ok {
		return v, nil
	}

	v := def.Default
	if !v.Present && def.Required {
		return types.Value{}, newValidationError(ErrRequired, def.Aliases(),
			"missing required option: %s", def.Aliases())
	}
	return v, nil
}
