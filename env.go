package declopt

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/declopt/declopt/types"
	"github.com/declopt/declopt/util"
)

// EnvName returns the environment variable consulted for an option when a
// prefix is configured, e.g. prefix "app" and flag "logLevel" give
// "APP_LOG_LEVEL"
func EnvName(prefix, long string) string {
	return strcase.ToScreamingSnake(prefix + " " + long)
}

// fromEnv resolves an option from the environment. The environment is user
// input, so coercion failures are ValidationErrors, not SettingsErrors.
func (p *Parser) fromEnv(def *OptionDefinition) (types.Value, bool, error) {
	if p.envPrefix == "" || p.envLookup == nil {
		return types.Value{}, false, nil
	}
	raw, ok := p.envLookup(EnvName(p.envPrefix, def.Long))
	if !ok {
		return types.Value{}, false, nil
	}
	v, err := coerceEnv(def, raw)
	if err != nil {
		return types.Value{}, false, err
	}
	return v, true, nil
}

func coerceEnv(def *OptionDefinition, raw string) (types.Value, error) {
	switch def.Type {
	case types.Boolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return types.Value{}, newValidationError(ErrNotABoolean, def.Aliases(),
				"option %s expects a boolean, got %q from the environment", def.Aliases(), raw)
		}
		return types.BoolOf(b), nil

	case types.Number:
		n, ok := util.ParseNumeric(raw)
		if !ok {
			return types.Value{}, newValidationError(ErrNotANumber, def.Aliases(),
				"option %s expects a number, got %q from the environment", def.Aliases(), raw)
		}
		return types.NumberOf(n), nil

	case types.NumberArray:
		items := splitList(raw)
		ns := make([]float64, len(items))
		for i, item := range items {
			n, ok := util.ParseNumeric(item)
			if !ok {
				return types.Value{}, newValidationError(ErrNotANumber, def.Aliases(),
					"option %s expects numbers, %q from the environment is not a number", def.Aliases(), item)
			}
			ns[i] = n
		}
		return types.NumbersOf(ns), nil

	case types.StringArray:
		return types.StringsOf(splitList(raw)), nil

	default:
		return types.StringOf(raw), nil
	}
}

// splitList splits a comma-separated environment value; empty input is the
// empty sequence
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
