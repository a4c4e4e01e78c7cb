package mananki

import (
	"fmt"
	"strings"
)

// PageRef identifies a manual page to convert. Immutable once validated.
type PageRef struct {
	// Section is the manual section number, 1 through 9.
	Section int

	// Name is the page name as passed to man, e.g. "ls" or "git-commit".
	Name string

	// Subcommand indicates the page documents a subcommand such as
	// git-commit, in which case Name is split on "-" for display.
	Subcommand bool
}

// Validate returns an error if the reference contains invalid fields.
func (r PageRef) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "page name required")
	}
	if r.Section < 1 || r.Section > 9 {
		return Errorf(EINVALID, "section must be between 1 and 9, got %d", r.Section)
	}
	return nil
}

// Command returns the display form of the page name. For subcommand pages
// "git-commit" becomes "git commit"; otherwise the name is returned as-is.
func (r PageRef) Command() string {
	if r.Subcommand {
		return strings.ReplaceAll(r.Name, "-", " ")
	}
	return r.Name
}

// SplitCommand returns the base command and subcommand name for subcommand
// pages ("git-commit" → "git", "commit"). For ordinary pages the subcommand
// is empty.
func (r PageRef) SplitCommand() (command, subcommand string) {
	if !r.Subcommand {
		return r.Name, ""
	}
	command, subcommand, found := strings.Cut(r.Name, "-")
	if !found {
		return r.Name, ""
	}
	return command, subcommand
}

// CacheFileName returns the name of the cached HTML rendering for this page.
func (r PageRef) CacheFileName() string {
	return fmt.Sprintf("_man-%d-%s.html", r.Section, r.Name)
}

// NormalizeFlag normalizes a user-supplied option flag to its dashed form:
// one character gets a single dash ("v" → "-v"), anything longer a double
// dash ("verbose" → "--verbose"). Already-dashed input is accepted.
func NormalizeFlag(flag string) string {
	flag = strings.TrimLeft(flag, "-")
	if len([]rune(flag)) == 1 {
		return "-" + flag
	}
	return "--" + flag
}
