package declopt

import (
	"fmt"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/declopt/declopt/parse"
	"github.com/declopt/declopt/types"
)

// OptionDefinition is the structured, immutable form of one definition
// string. Default always holds a usable value: the declared default when a
// "=" clause was present, the type's implicit default otherwise.
type OptionDefinition struct {
	Key         string
	Short       string
	Long        string
	Type        types.ValueType
	Required    bool
	HasDefault  bool
	Default     types.Value
	Description string
}

// Aliases returns the display form of the option's flag names,
// e.g. "--foo (-a)" or "--foo"
func (d *OptionDefinition) Aliases() string {
	if d.Short == "" {
		return "--" + d.Long
	}
	return fmt.Sprintf("--%s (-%s)", d.Long, d.Short)
}

// DefinitionSet maps caller keys to option definitions. Entries keep a
// stable order (sorted keys) so validation passes, duplicate reports and
// help output are deterministic.
type DefinitionSet struct {
	defs   *orderedmap.OrderedMap[string, *OptionDefinition]
	lookup map[string]string // flag name without dashes -> key
}

// Definitions parses a mapping of caller keys to definition strings into a
// DefinitionSet. Grammar problems fail on the first offending key; duplicate
// flag names are collected across the whole set and reported together.
func Definitions(specs map[string]string) (*DefinitionSet, error) {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	set := &DefinitionSet{
		defs:   orderedmap.New[string, *OptionDefinition](),
		lookup: make(map[string]string, len(specs)*2),
	}

	flagKeys := map[string]int{}
	var flagOrder []string
	register := func(display, name, key string) {
		if _, seen := flagKeys[display]; !seen {
			flagOrder = append(flagOrder, display)
		}
		flagKeys[display]++
		set.lookup[name] = key
	}

	for _, key := range keys {
		sp, err := parse.Definition(specs[key])
		if err != nil {
			return nil, &SettingsError{Key: key, Err: err}
		}
		def := &OptionDefinition{
			Key:         key,
			Short:       sp.Short,
			Long:        sp.Long,
			Type:        sp.Type,
			Required:    sp.Required,
			HasDefault:  sp.HasDefault,
			Default:     sp.Default,
			Description: sp.Description,
		}
		set.defs.Set(key, def)
		register("--"+def.Long, def.Long, key)
		if def.Short != "" {
			register("-"+def.Short, def.Short, key)
		}
	}

	var dups []string
	for _, display := range flagOrder {
		if flagKeys[display] > 1 {
			dups = append(dups, display)
		}
	}
	if len(dups) > 0 {
		return nil, &SettingsError{Err: fmt.Errorf("%w: %s", ErrDuplicateFlags, strings.Join(dups, ", "))}
	}

	return set, nil
}

// Len returns the number of definitions in the set
func (d *DefinitionSet) Len() int {
	return d.defs.Len()
}

// Get returns the definition stored under a caller key
func (d *DefinitionSet) Get(key string) (*OptionDefinition, bool) {
	return d.defs.Get(key)
}

// Keys returns the caller keys in set order
func (d *DefinitionSet) Keys() []string {
	keys := make([]string, 0, d.defs.Len())
	for pair := d.defs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// ByFlag resolves a short or long flag name (without dashes) to its definition
func (d *DefinitionSet) ByFlag(name string) (*OptionDefinition, bool) {
	key, ok := d.lookup[name]
	if !ok {
		return nil, false
	}
	return d.defs.Get(key)
}

// Help renders the set as help text, preceded by a Usage line when usage is
// not empty. Pure: no terminal probing, no color.
func (d *DefinitionSet) Help(usage string) string {
	return FormatHelp(usage, d)
}

func (d *DefinitionSet) oldest() *orderedmap.Pair[string, *OptionDefinition] {
	return d.defs.Oldest()
}

// ParseResult is the typed outcome of validating one token list. Options
// holds an entry for every key in the definition set. When help handling is
// enabled and the "help" option resolved true, HelpRequested is set and
// Options should be ignored.
type ParseResult struct {
	Targets       []string
	Options       map[string]types.Value
	Rest          []string
	HelpRequested bool
}
