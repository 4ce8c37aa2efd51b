package utils

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// SplitStringIntoCommandAndArguments splits one REPL input line into a
// command and up to two arguments. Words follow shell quoting rules, so a
// quoted value may contain spaces: set greeting "hello there".
func SplitStringIntoCommandAndArguments(line string) (cmd, key, value string, err error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return "", "", "", err
	}

	switch len(words) {
	case 0:
		return "", "", "", fmt.Errorf("empty command")
	case 1:
		return words[0], "", "", nil
	case 2:
		return words[0], words[1], "", nil
	case 3:
		return words[0], words[1], words[2], nil
	default:
		return "", "", "", fmt.Errorf("too many arguments: got %d words, want at most 3", len(words))
	}
}
