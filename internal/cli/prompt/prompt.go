// Package prompt implements the interactive questions used by account
// setup. Everything here reads from the terminal; commands running with
// --non-interactive never call into this package.
package prompt

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Ask reads one line. An empty answer falls back to def.
func Ask(label, def string) (string, error) {
	display := label
	if def != "" {
		display = fmt.Sprintf("%s [%s]", label, def)
	}
	rl, err := readline.New(display + ": ")
	if err != nil {
		return "", err
	}
	defer func() { _ = rl.Close() }()

	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// AskRequired repeats Ask until a non-empty answer arrives.
func AskRequired(label string) (string, error) {
	for {
		answer, err := Ask(label, "")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintf(os.Stderr, "%s cannot be empty\n", label)
	}
}

// Secret reads a value without echoing it.
func Secret(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Confirm asks a yes/no question.
func Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer, err := Ask(fmt.Sprintf("%s (%s)", label, hint), "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select shows a numbered list and returns the chosen index.
func Select(label string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("no choices for %s", label)
	}
	fmt.Fprintln(os.Stderr, label+":")
	for i, choice := range choices {
		fmt.Fprintf(os.Stderr, "  %2d. %s\n", i+1, choice)
	}
	for {
		answer, err := Ask(fmt.Sprintf("Choice (1-%d)", len(choices)), "")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(answer)
		if convErr == nil && n >= 1 && n <= len(choices) {
			return n - 1, nil
		}
		fmt.Fprintf(os.Stderr, "enter a number between 1 and %d\n", len(choices))
	}
}
