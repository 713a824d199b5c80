package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/napalu/argmatch/errs"
)

// Split splits a command line into arguments following cmd.exe conventions: double
// quotes group, ^ escapes the next character outside quotes and a run of backslashes
// is only special in front of a double quote.
func Split(s string) ([]string, error) {
	var (
		args     []string
		current  strings.Builder
		inQuotes bool
		started  bool
	)

	flush := func() {
		if started {
			args = append(args, current.String())
			current.Reset()
			started = false
		}
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, errs.ErrSplitArguments.WithArgs(s).Wrap(fmt.Errorf("invalid UTF-8 at offset %d", i))
		}

		switch {
		case r == '^' && !inQuotes && i+size < len(s):
			next, nsize := utf8.DecodeRuneInString(s[i+size:])
			current.WriteRune(next)
			started = true
			i += size + nsize
			continue
		case r == '"':
			inQuotes = !inQuotes
			started = true
		case r == '\\':
			n := 0
			for i+n < len(s) && s[i+n] == '\\' {
				n++
			}
			if i+n < len(s) && s[i+n] == '"' {
				current.WriteString(strings.Repeat(`\`, n/2))
				if n%2 == 1 {
					current.WriteByte('"')
				} else {
					inQuotes = !inQuotes
				}
				i += n + 1
			} else {
				current.WriteString(strings.Repeat(`\`, n))
				i += n
			}
			started = true
			continue
		case (r == ' ' || r == '\t' || r == '\n' || r == '\r') && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
		i += size
	}

	if inQuotes {
		return nil, errs.ErrSplitArguments.WithArgs(s).Wrap(fmt.Errorf("unterminated quote"))
	}
	flush()

	return args, nil
}
