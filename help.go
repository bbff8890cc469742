package declopt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/declopt/declopt/types"
)

// FormatHelp renders one aligned line per option, preceded by a Usage line
// when usage is not empty. Pure: no terminal probing, no color, no side
// effects.
func FormatHelp(usage string, defs *DefinitionSet) string {
	return renderHelp(usage, defs, false, 0)
}

// renderHelp is the shared rendering core. A width of 0 disables description
// wrapping; colorize bolds the flag column without affecting alignment
// (padding is computed on the plain text).
func renderHelp(usage string, defs *DefinitionSet, colorize bool, width int) string {
	var b strings.Builder
	if usage != "" {
		fmt.Fprintf(&b, "Usage: %s\n", usage)
	}

	type row struct {
		left string
		def  *OptionDefinition
	}
	rows := make([]row, 0, defs.Len())
	maxLeft := 0
	for pair := defs.oldest(); pair != nil; pair = pair.Next() {
		left := leftColumn(pair.Value)
		if len(left) > maxLeft {
			maxLeft = len(left)
		}
		rows = append(rows, row{left: left, def: pair.Value})
	}

	bold := color.New(color.Bold)
	indent := maxLeft + 2
	for _, r := range rows {
		padded := r.left + strings.Repeat(" ", maxLeft-len(r.left))
		if colorize {
			padded = bold.Sprint(padded)
		}
		text := annotate(r.def)
		if text == "" {
			b.WriteString(strings.TrimRight(padded, " "))
			b.WriteByte('\n')
			continue
		}
		lines := wrapText(text, width-indent)
		b.WriteString(padded + "  " + lines[0] + "\n")
		for _, l := range lines[1:] {
			b.WriteString(strings.Repeat(" ", indent) + l + "\n")
		}
	}

	return b.String()
}

// leftColumn renders "-s, --long TYPE"; the type annotation is omitted for
// booleans and the short-flag slot is blank-padded when absent
func leftColumn(def *OptionDefinition) string {
	var s string
	if def.Short != "" {
		s = fmt.Sprintf("  -%s, --%s", def.Short, def.Long)
	} else {
		s = fmt.Sprintf("      --%s", def.Long)
	}
	if def.Type != types.Boolean {
		s += " " + strings.ToUpper(def.Type.String())
	}
	return s
}

// annotate appends "(required)" or a non-implicit default to the description
func annotate(def *OptionDefinition) string {
	text := def.Description
	suffix := ""
	switch {
	case def.Required:
		suffix = "(required)"
	case !def.Default.IsImplicit():
		suffix = fmt.Sprintf("(default:%s)", def.Default.JSON())
	}
	if suffix == "" {
		return text
	}
	if text == "" {
		return suffix
	}
	return text + " " + suffix
}

// wrapText greedily wraps words to the limit; non-positive or very narrow
// limits disable wrapping
func wrapText(text string, limit int) []string {
	if limit <= 16 {
		return []string{text}
	}
	words := strings.Fields(text)
	var lines []string
	cur := ""
	for _, w := range words {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) > limit:
			lines = append(lines, cur)
			cur = w
		default:
			cur += " " + w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
