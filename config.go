package mananki

import "strings"

// Config holds the per-run configuration. It is loaded once at startup and
// passed by value to every component that needs it; there is no ambient
// configuration state.
type Config struct {
	// AnkiConnectURL is the local note store endpoint.
	AnkiConnectURL string `mapstructure:"anki-connect-url"`

	// Deck is the deck new notes are created in.
	Deck string `mapstructure:"deck"`

	// CollectionDir is the directory HTML renderings are written to,
	// typically the Anki collection.media directory.
	CollectionDir string `mapstructure:"anki-collection"`

	// Hint templates. Templates may reference {page}, {command} and
	// {subcommand}; see RenderHint.
	HintOneLiner           string `mapstructure:"hint-one-liner"`
	HintOneLinerSubcommand string `mapstructure:"hint-one-liner-subcommand"`
	HintOption             string `mapstructure:"hint-option-description"`
	HintOptionSubcommand   string `mapstructure:"hint-option-description-subcommand"`

	// Default tags per card kind. Extra tags from the command line are
	// merged on top of these.
	TagsOneLiner []string `mapstructure:"tags-one-liner"`
	TagsOption   []string `mapstructure:"tags-option-description"`
}

// Validate returns an error if required configuration is missing.
func (c Config) Validate() error {
	if c.AnkiConnectURL == "" {
		return Errorf(EINVALID, "anki-connect-url required")
	}
	if c.Deck == "" {
		return Errorf(EINVALID, "deck required")
	}
	if c.CollectionDir == "" {
		return Errorf(EINVALID, "anki-collection required")
	}
	return nil
}

// OneLinerHint renders the one-liner hint template for the given page.
func (c Config) OneLinerHint(ref PageRef) string {
	if ref.Subcommand && c.HintOneLinerSubcommand != "" {
		return renderHint(c.HintOneLinerSubcommand, ref)
	}
	return renderHint(c.HintOneLiner, ref)
}

// OptionHint renders the option hint template for the given page.
func (c Config) OptionHint(ref PageRef) string {
	if ref.Subcommand && c.HintOptionSubcommand != "" {
		return renderHint(c.HintOptionSubcommand, ref)
	}
	return renderHint(c.HintOption, ref)
}

// renderHint substitutes {page}, {command} and {subcommand} placeholders.
func renderHint(template string, ref PageRef) string {
	command, subcommand := ref.SplitCommand()
	return strings.NewReplacer(
		"{page}", ref.Command(),
		"{command}", command,
		"{subcommand}", subcommand,
	).Replace(template)
}

// MergeTags appends extra tags to the defaults, preserving order and
// dropping duplicates and empty strings.
func MergeTags(defaults, extra []string) []string {
	seen := make(map[string]bool, len(defaults)+len(extra))
	var out []string
	for _, t := range append(append([]string{}, defaults...), extra...) {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
