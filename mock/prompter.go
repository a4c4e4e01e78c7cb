package mock

import mananki "github.com/maiatoja152/man-to-anki"

var _ mananki.Prompter = (*Prompter)(nil)

// Prompter is a mock implementation of mananki.Prompter.
type Prompter struct {
	PromptFn func(message string) (string, error)
}

func (p *Prompter) Prompt(message string) (string, error) {
	return p.PromptFn(message)
}
