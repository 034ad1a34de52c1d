// Package command tokenizes configured command strings and executes the
// resulting argument vectors.
package command

import (
	"fmt"
	"strings"
)

// SyntaxError reports a command string with an unbalanced quote.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unbalanced quote in command %q", e.Input)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Split breaks a raw command string into an argument vector the way a shell
// splits words, honoring single and double quotes and backslash escapes but
// performing no expansion of any kind. A quote span opened with one character
// closes only with the same character; a backslash-escaped closing quote
// inside the span becomes a literal quote. Outside quotes, a backslash
// escapes a following quote character and is otherwise a literal byte.
//
// Empty or whitespace-only input yields a nil vector and no error: there is
// no command. An unclosed quote yields a *SyntaxError.
func Split(input string) ([]string, error) {
	var args []string
	i, n := 0, len(input)
	for {
		for i < n && isSpace(input[i]) {
			i++
		}
		if i >= n {
			break
		}
		var word []byte
		for i < n && !isSpace(input[i]) {
			switch c := input[i]; {
			case c == '\'' || c == '"':
				quote := c
				i++
				closed := false
				for i < n {
					if input[i] == '\\' && i+1 < n && input[i+1] == quote {
						word = append(word, quote)
						i += 2
						continue
					}
					if input[i] == quote {
						closed = true
						i++
						break
					}
					word = append(word, input[i])
					i++
				}
				if !closed {
					return nil, &SyntaxError{Input: input}
				}
			case c == '\\' && i+1 < n && (input[i+1] == '\'' || input[i+1] == '"'):
				word = append(word, input[i+1])
				i += 2
			default:
				word = append(word, c)
				i++
			}
		}
		args = append(args, string(word))
	}
	return args, nil
}

// Parse resolves a configured command string into its argument vector. A
// string that is empty, whitespace-only, or whose first word trims to
// nothing binds no command and yields a nil vector; that is an absent
// command, not an error.
func Parse(raw string) ([]string, error) {
	args, err := Split(raw)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, nil
	}
	args[0] = strings.TrimSpace(args[0])
	if args[0] == "" {
		return nil, nil
	}
	return args, nil
}
