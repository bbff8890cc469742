package parse

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command line using cmd.exe conventions: double quotes
// group words, ^ escapes the next character, %VAR% expands from the
// environment and backslashes are literal except in front of a quote.
func Split(s string) ([]string, error) {
	var tokens []string
	var arg strings.Builder
	inQuotes := false
	escaped := false

	flush := func() {
		if arg.Len() > 0 {
			tokens = append(tokens, arg.String())
			arg.Reset()
		}
	}

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}
		if r == '\n' || r == '\r' {
			r = ' '
		}

		if escaped {
			arg.WriteRune(r)
			escaped = false
			i += size
			continue
		}

		if !inQuotes && r == '^' {
			escaped = true
			i += size
			continue
		}

		if r == '"' {
			inQuotes = !inQuotes
			i += size
			continue
		}

		if r == '%' && !inQuotes {
			end := strings.IndexByte(s[i+size:], '%')
			if end >= 0 {
				arg.WriteString(os.Getenv(s[i+size : i+size+end]))
				i += size + end + 1
				continue
			}
			arg.WriteByte('%')
			i += size
			continue
		}

		if r == '\\' {
			// count the run; pairs collapse, an odd run escapes a quote
			n := 0
			for i < len(s) && s[i] == '\\' {
				n++
				i++
			}
			if i < len(s) && s[i] == '"' {
				arg.WriteString(strings.Repeat("\\", n/2))
				if n%2 == 0 {
					inQuotes = !inQuotes
				} else {
					arg.WriteRune('"')
				}
				i++
			} else {
				arg.WriteString(strings.Repeat("\\", n))
			}
			continue
		}

		if !inQuotes && (r == ' ' || r == '\t') {
			flush()
			i += size
			continue
		}

		arg.WriteRune(r)
		i += size
	}

	flush()

	return tokens, nil
}
