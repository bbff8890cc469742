//go:build !windows

package parse

import "github.com/google/shlex"

// Split tokenizes a shell-style command line
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
