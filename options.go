package declopt

import "io"

// Option configures a Parser during NewParser
type Option func(*Parser)

// TargetRule is the policy applied to the resolved targets sequence
type TargetRule struct {
	Required bool
	Message  string
}

// WithUsage sets the display string rendered on the "Usage:" help line
func WithUsage(usage string) Option {
	return func(p *Parser) {
		p.usage = usage
	}
}

// WithExitOnError controls what happens on a validation failure or a help
// request: when true (the default), help text is written to the configured
// streams and the process terminates through the configured exit function;
// when false, errors propagate to the caller and help requests are flagged
// on the result.
func WithExitOnError(exit bool) Option {
	return func(p *Parser) {
		p.exitOnError = exit
	}
}

// WithHelpFlagHandling controls whether a boolean option keyed exactly
// "help" resolving true triggers help output. Enabled by default.
func WithHelpFlagHandling(handle bool) Option {
	return func(p *Parser) {
		p.handleHelp = handle
	}
}

// WithRequiredTarget makes an empty targets sequence a validation error
func WithRequiredTarget() Option {
	return func(p *Parser) {
		p.target.Required = true
	}
}

// WithRequiredTargetMessage makes an empty targets sequence a validation
// error carrying msg instead of the generic message
func WithRequiredTargetMessage(msg string) Option {
	return func(p *Parser) {
		p.target.Required = true
		p.target.Message = msg
	}
}

// WithEnvPrefix enables environment fallback: an option that received no
// command-line value is looked up as PREFIX_LONG_FLAG (screaming snake case)
// before its default applies
func WithEnvPrefix(prefix string) Option {
	return func(p *Parser) {
		p.envPrefix = prefix
	}
}

// WithEnvLookup replaces the environment lookup function (os.LookupEnv by
// default) so tests and embedders can supply their own source
func WithEnvLookup(lookup func(string) (string, bool)) Option {
	return func(p *Parser) {
		p.envLookup = lookup
	}
}

// WithColor renders the flag column of help output in bold
func WithColor(enabled bool) Option {
	return func(p *Parser) {
		p.color = enabled
	}
}

// WithStdout redirects normal output (help requests)
func WithStdout(w io.Writer) Option {
	return func(p *Parser) {
		p.stdout = w
	}
}

// WithStderr redirects error output (validation failures)
func WithStderr(w io.Writer) Option {
	return func(p *Parser) {
		p.stderr = w
	}
}

// WithExitFunc replaces the process-termination function (os.Exit by
// default). The replacement is expected to not return; if it does, Parse
// falls through to the non-exiting behavior.
func WithExitFunc(exit func(int)) Option {
	return func(p *Parser) {
		p.exit = exit
	}
}
