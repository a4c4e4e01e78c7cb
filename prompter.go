package mananki

// Prompter supplies a value the extractor could not produce. The terminal
// implementation blocks on operator input; tests inject a scripted one.
type Prompter interface {
	// Prompt displays the message and returns the operator's answer
	// verbatim, without the trailing newline.
	Prompt(message string) (string, error)
}
