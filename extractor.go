package mananki

// OptionMatch holds what an option lookup found in the rendered page.
// Found reports whether the option's definition term was located at all;
// Title and Description may each still be empty when the markup around the
// matched term is incomplete. Callers decide how to fill the gaps.
type OptionMatch struct {
	Found       bool
	Title       string
	Description string
}

// Extractor pulls card content out of a rendered manual page.
type Extractor interface {
	// ExtractDescription returns the page's one-line summary: the text
	// after the " - " (or em-dash) separator in the first paragraph, with
	// its first letter uppercased. Returns ENOTFOUND when the page has no
	// paragraph or the separator is absent; it never guesses.
	ExtractDescription(html string) (string, error)

	// ExtractOption locates the definition term whose emphasized text
	// exactly equals flag (already normalized with its dash prefix) and
	// returns the term's inline markup as the title and the first
	// paragraph of the following definition as the description.
	// A miss is not an error; inspect OptionMatch.Found.
	ExtractOption(html string, flag string) (*OptionMatch, error)
}
