// Package prompt implements mananki.Prompter on top of a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mananki "github.com/maiatoja152/man-to-anki"
)

// Ensure Prompter implements mananki.Prompter at compile time.
var _ mananki.Prompter = (*Prompter)(nil)

// Prompter reads one line per prompt from in, writing the prompt text to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing prompt
// messages to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes the message and blocks until the operator enters a line.
// The answer is returned without its trailing newline.
func (p *Prompter) Prompt(message string) (string, error) {
	if _, err := fmt.Fprint(p.out, message); err != nil {
		return "", mananki.Errorf(mananki.EINTERNAL, "failed to write prompt: %v", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", mananki.Errorf(mananki.EINTERNAL, "failed to read input: %v", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
