// Package card assembles flashcard notes from extracted page content,
// filling extraction misses through the injected prompter.
package card

import (
	"fmt"

	mananki "github.com/maiatoja152/man-to-anki"
)

// Builder builds notes for one rendered manual page. Every note it returns
// satisfies the non-empty front/back invariant: whatever the extractor
// cannot produce is obtained from the Prompter before a note exists.
type Builder struct {
	Extractor mananki.Extractor
	Prompter  mananki.Prompter
	Config    mananki.Config
}

// DescriptionNote builds the one-liner card: the summary on the front, the
// command on the back. link is the anchor tag referencing the cached
// rendering; extraTags are merged into the configured defaults.
func (b *Builder) DescriptionNote(ref mananki.PageRef, html, link string, extraTags []string) (*mananki.Note, error) {
	summary, err := b.Extractor.ExtractDescription(html)
	if mananki.ErrorCode(err) == mananki.ENOTFOUND {
		summary, err = b.Prompter.Prompt("Manually input one-line description for the page: ")
	}
	if err != nil {
		return nil, err
	}

	return &mananki.Note{
		Deck:  b.Config.Deck,
		Front: summary,
		Back:  ref.Command(),
		Hint:  b.Config.OneLinerHint(ref),
		Links: link,
		Tags:  mananki.MergeTags(b.Config.TagsOneLiner, extraTags),
	}, nil
}

// OptionNote builds an option card for the given normalized flag: the
// description on the front, the option's full title markup on the back.
func (b *Builder) OptionNote(ref mananki.PageRef, html, flag, link string, extraTags []string) (*mananki.Note, error) {
	match, err := b.Extractor.ExtractOption(html, flag)
	if err != nil {
		return nil, err
	}

	title := match.Title
	if title == "" {
		title, err = b.Prompter.Prompt(fmt.Sprintf("Manually enter an option title for %s: ", flag))
		if err != nil {
			return nil, err
		}
	}

	description := match.Description
	if description == "" {
		description, err = b.Prompter.Prompt(fmt.Sprintf("Manually enter an option description for %s: ", flag))
		if err != nil {
			return nil, err
		}
	}

	return &mananki.Note{
		Deck:  b.Config.Deck,
		Front: description,
		Back:  title,
		Hint:  b.Config.OptionHint(ref),
		Links: link,
		Tags:  mananki.MergeTags(b.Config.TagsOption, extraTags),
	}, nil
}
