package declopt

import (
	"fmt"
	"io"
	"os"

	"github.com/declopt/declopt/parse"
	"github.com/declopt/declopt/tokenize"
	"github.com/declopt/declopt/types"
	"github.com/declopt/declopt/util"
)

// Parser binds a DefinitionSet to its runtime policy: usage string, target
// rule, environment fallback, output streams and the exit sink. Parsing is
// synchronous and stateless across calls; a Parser can validate any number
// of token lists.
type Parser struct {
	defs        *DefinitionSet
	usage       string
	exitOnError bool
	handleHelp  bool
	target      TargetRule
	envPrefix   string
	envLookup   func(string) (string, bool)
	color       bool
	stdout      io.Writer
	stderr      io.Writer
	exit        func(int)
}

// NewParser parses the definition strings and applies options. Definition
// problems are *SettingsError values: they indicate a programming mistake by
// the definer and are returned regardless of the exit-on-error policy.
func NewParser(definitions map[string]string, opts ...Option) (*Parser, error) {
	defs, err := Definitions(definitions)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		defs:        defs,
		exitOnError: true,
		handleHelp:  true,
		envLookup:   os.LookupEnv,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exit:        os.Exit,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Definitions returns the parsed definition set bound to this Parser
func (p *Parser) Definitions() *DefinitionSet {
	return p.defs
}

// Parse validates one token list against the definition set. On failure
// with the default policy the error and help text are written to stderr and
// the process terminates with status 1; with WithExitOnError(false) the
// *ValidationError propagates instead. A resolved help flag writes help to
// stdout and terminates with status 0, or flags the result when not exiting.
func (p *Parser) Parse(tokens []string) (*ParseResult, error) {
	scan := tokenize.Scan(tokens, tokenize.Config{IsBoolean: p.isBooleanFlag})

	res, err := p.resolve(scan)
	if err != nil {
		if p.exitOnError {
			fmt.Fprintln(p.stderr, err)
			_ = p.WriteHelp(p.stderr)
			p.exit(1)
		}
		return nil, err
	}

	if p.handleHelp && p.helpRequested(res) {
		res.HelpRequested = true
		if p.exitOnError {
			_ = p.WriteHelp(p.stdout)
			p.exit(0)
		}
	}

	return res, nil
}

// ParseString splits a shell-style command line and parses the tokens
func (p *Parser) ParseString(line string) (*ParseResult, error) {
	tokens, err := parse.Split(line)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Help returns the rendered help text without touching any stream
func (p *Parser) Help() string {
	return renderHelp(p.usage, p.defs, p.color, 0)
}

// WriteHelp writes the help text to w, wrapping description columns to the
// terminal width when w is a terminal
func (p *Parser) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, renderHelp(p.usage, p.defs, p.color, util.TerminalWidth(w)))
	return err
}

// PrintHelp writes the help text and terminates through the configured exit
// function: stdout for status 0, stderr for any other status
func (p *Parser) PrintHelp(status int) {
	w := p.stdout
	if status != 0 {
		w = p.stderr
	}
	_ = p.WriteHelp(w)
	p.exit(status)
}

func (p *Parser) isBooleanFlag(name string) bool {
	def, ok := p.defs.ByFlag(name)
	return ok && def.Type == types.Boolean
}

func (p *Parser) helpRequested(res *ParseResult) bool {
	def, ok := p.defs.Get("help")
	if !ok || def.Type != types.Boolean {
		return false
	}
	v, ok := res.Options["help"]
	return ok && v.Bool
}

// Parse is the one-shot entry point: build a Parser, validate one token
// list. See Parser.Parse for the error policy.
func Parse(tokens []string, definitions map[string]string, opts ...Option) (*ParseResult, error) {
	p, err := NewParser(definitions, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// ParseString is the one-shot equivalent of Parser.ParseString
func ParseString(line string, definitions map[string]string, opts ...Option) (*ParseResult, error) {
	p, err := NewParser(definitions, opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseString(line)
}
