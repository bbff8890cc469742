// Package declopt validates command-line arguments against declaratively
// defined options.
//
// Each option is described by a compact definition string:
//
//	"-p,--port:number=8080;port to listen on"
//	"--verbose:boolean;enable verbose output"
//	"-i,--input:string[];input files"
//	"-n,--name:string!;name of the run"
//
// A definition names an optional short flag, the long flag, one of five
// value types (boolean, number, number[], string, string[]), and either a
// required marker "!" or a JSON default, followed by a description. Parse
// turns a token list into typed option values, the leading positional
// targets and the verbatim remainder after the first bare "--":
//
//	res, err := declopt.Parse(os.Args[1:], map[string]string{
//	    "port":    "-p,--port:number=8080;port to listen on",
//	    "verbose": "--verbose:boolean",
//	    "help":    "-h,--help:boolean;show this help",
//	}, declopt.WithUsage("serve [options] dir"))
//
// The usual command-line conventions are honored: "--flag=value",
// "--flag value", "-f value", "-fvalue", repeated flags for array types, a
// lone "--" to stop flag interpretation, and "-" as an ordinary positional.
// By default a validation failure prints help to stderr and exits with
// status 1, and a true "help" option prints help to stdout and exits with
// status 0; WithExitOnError(false) turns both into plain return values so
// the library can be embedded and tested without process effects.
package declopt
