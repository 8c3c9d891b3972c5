package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams over x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// getSimpleText and getPassword are indirections used by command handlers
// so tests can script input.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The line is trimmed. A partial line before EOF is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password without echo when stdin is a terminal, and
// as a plain line otherwise (piped input). The caller should wipe the
// returned slice.
func GetPassword(reader *bufio.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, err
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// intArg returns args[0] as an int64, or asks for it when absent.
func intArg(reader *bufio.Reader, w io.Writer, args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(reader, prompt, w); err != nil {
			return 0, err
		}
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", errBadInput, raw)
	}
	return n, nil
}

// askInt prompts for a non-negative integer; an empty answer yields def.
func askInt(reader *bufio.Reader, w io.Writer, prompt string, def int) (int, error) {
	raw, err := getSimpleText(reader, fmt.Sprintf("%s [%d]", prompt, def), w)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a number", errBadInput, raw)
	}
	return n, nil
}

// askFloat prompts for a positive number; an empty answer yields def.
func askFloat(reader *bufio.Reader, w io.Writer, prompt string, def float64) (float64, error) {
	raw, err := getSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, strconv.FormatFloat(def, 'f', -1, 64)), w)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive number", errBadInput, raw)
	}
	return f, nil
}

// askText prompts for text; an empty answer yields def.
func askText(reader *bufio.Reader, w io.Writer, prompt, def string) (string, error) {
	p := prompt
	if def != "" {
		p = fmt.Sprintf("%s [%s]", prompt, def)
	}
	raw, err := getSimpleText(reader, p, w)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return def, nil
	}
	return raw, nil
}
