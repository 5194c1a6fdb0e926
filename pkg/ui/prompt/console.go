// Package prompt provides the interactive yes/no questions of the setup flow.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vitestarter/vitestarter/pkg/errors"
)

// Console asks questions on an output stream and reads one line per answer
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console prompter reading answers from in
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints the question and returns the answer line without its line ending.
// End of input yields whatever was typed so far, usually the empty string.
func (c *Console) Ask(question string) (string, error) {
	fmt.Fprint(c.out, question)

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, errors.ErrInputRead, "failed to read user input")
	}
	if err == io.EOF {
		// Keep the terminal tidy when stdin closes mid-question
		fmt.Fprintln(c.out)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm asks a yes/no question. Only "y" or "yes" (any case) counts as yes.
func (c *Console) Confirm(question string) (bool, error) {
	answer, err := c.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// IsYes reports whether answer is an affirmative reply
func IsYes(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
