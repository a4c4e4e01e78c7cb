package mock

import mananki "github.com/maiatoja152/man-to-anki"

var _ mananki.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mananki.Extractor.
type Extractor struct {
	ExtractDescriptionFn func(html string) (string, error)
	ExtractOptionFn      func(html string, flag string) (*mananki.OptionMatch, error)
}

func (e *Extractor) ExtractDescription(html string) (string, error) {
	return e.ExtractDescriptionFn(html)
}

func (e *Extractor) ExtractOption(html string, flag string) (*mananki.OptionMatch, error) {
	return e.ExtractOptionFn(html, flag)
}
