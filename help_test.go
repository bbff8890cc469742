package declopt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpDefs(t *testing.T) *DefinitionSet {
	t.Helper()
	defs, err := Definitions(map[string]string{
		"force": "-f,--force:boolean!;do it",
		"nums":  "-n,--num:number[]=[1,2];how many",
		"mode":  `--mode:string="fast";run mode`,
	})
	require.NoError(t, err)
	return defs
}

func TestFormatHelpUsageLine(t *testing.T) {
	defs := helpDefs(t)

	out := FormatHelp("mytool [options] dir", defs)
	assert.True(t, strings.HasPrefix(out, "Usage: mytool [options] dir\n"))

	out = FormatHelp("", defs)
	assert.NotContains(t, out, "Usage:", "no usage line without a usage string")
}

func TestFormatHelpRows(t *testing.T) {
	out := FormatHelp("", helpDefs(t))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3, "one line per option")

	assert.Contains(t, lines[0], "-f, --force")
	assert.NotContains(t, lines[0], "BOOLEAN", "booleans carry no type annotation")
	assert.Contains(t, lines[0], "do it (required)")

	assert.Contains(t, lines[1], "--mode STRING")
	assert.Contains(t, lines[1], `run mode (default:"fast")`)

	assert.Contains(t, lines[2], "-n, --num NUMBER[]")
	assert.Contains(t, lines[2], "how many (default:[1,2])")
}

func TestFormatHelpAlignment(t *testing.T) {
	out := FormatHelp("", helpDefs(t))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	cols := []int{
		strings.Index(lines[0], "do it"),
		strings.Index(lines[1], "run mode"),
		strings.Index(lines[2], "how many"),
	}
	assert.Equal(t, cols[0], cols[1], "description columns line up\n%s", out)
	assert.Equal(t, cols[0], cols[2], "description columns line up\n%s", out)
}

func TestFormatHelpShortFlagSlot(t *testing.T) {
	defs, err := Definitions(map[string]string{
		"quiet": "--quiet:boolean",
		"port":  "-p,--port:number",
	})
	require.NoError(t, err)

	out := FormatHelp("", defs)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "  -p, --port"), "short flags render in the first slot")
	assert.True(t, strings.HasPrefix(lines[1], "      --quiet"), "the slot is blank-padded when absent")
	assert.Equal(t, lines[1], strings.TrimRight(lines[1], " "), "no trailing padding on bare rows")
}

func TestDefinitionSetHelp(t *testing.T) {
	defs := helpDefs(t)
	assert.Equal(t, FormatHelp("tool", defs), defs.Help("tool"))
}

func TestWrapText(t *testing.T) {
	lines := wrapText("the quick brown fox jumps over the lazy dog", 20)
	assert.Equal(t, []string{"the quick brown fox", "jumps over the lazy", "dog"}, lines)

	lines = wrapText("short", 20)
	assert.Equal(t, []string{"short"}, lines)

	lines = wrapText("anything at all", 0)
	assert.Equal(t, []string{"anything at all"}, lines, "non-positive limits disable wrapping")

	lines = wrapText("supercalifragilistic word", 18)
	assert.Equal(t, []string{"supercalifragilistic", "word"}, lines, "an overlong word gets its own line")
}

func TestWriteHelpWrapsToWidth(t *testing.T) {
	defs, err := Definitions(map[string]string{
		"desc": "--long:string;a deliberately verbose description that is written to exceed the available width and therefore wraps",
	})
	require.NoError(t, err)

	out := renderHelp("", defs, false, 60)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 1, "long descriptions wrap")
	indent := strings.Index(lines[0], "a deliberately")
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, strings.Repeat(" ", indent)), "continuation lines align to the description column")
		assert.NotEqual(t, "", strings.TrimSpace(l))
	}
}
