// Package goquery implements mananki.Extractor over pandoc's HTML rendering
// of a manual page using CSS-style traversal.
package goquery

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	mananki "github.com/maiatoja152/man-to-anki"
)

// Ensure Extractor implements mananki.Extractor at compile time.
var _ mananki.Extractor = (*Extractor)(nil)

// summaryRE matches the NAME-line separator: a single hyphen or em-dash with
// exactly one space on each side, capturing the rest of the line.
var summaryRE = regexp.MustCompile(" [-—] (.*)")

// Extractor extracts card content from rendered manual pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractDescription returns the one-line summary from the page's first
// paragraph. Returns ENOTFOUND when the page has no paragraph or the
// paragraph does not contain the separator pattern.
func (e *Extractor) ExtractDescription(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", mananki.Errorf(mananki.EINVALID, "failed to parse HTML: %v", err)
	}

	p := doc.Find("p").First()
	if p.Length() == 0 {
		return "", mananki.Errorf(mananki.ENOTFOUND, "no paragraph found in page")
	}

	m := summaryRE.FindStringSubmatch(p.Text())
	if m == nil {
		return "", mananki.Errorf(mananki.ENOTFOUND, "no summary separator found in first paragraph")
	}

	return capitalizeFirst(m[1]), nil
}

// ExtractOption locates the definition term whose <strong> child text
// exactly equals flag and returns the term's inline markup as the title and
// the first paragraph of the next sibling definition as the description.
// Matching on the emphasized text distinguishes the option's canonical
// declaration from incidental mentions elsewhere in the page.
func (e *Extractor) ExtractOption(html string, flag string) (*mananki.OptionMatch, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mananki.Errorf(mananki.EINVALID, "failed to parse HTML: %v", err)
	}

	dt := findOptionTerm(doc, flag)
	if dt == nil {
		return &mananki.OptionMatch{}, nil
	}

	match := &mananki.OptionMatch{Found: true}

	if title, err := dt.Html(); err == nil {
		match.Title = strings.TrimSpace(title)
	}

	// The converter pairs a term with the definition that follows it, so
	// only the nearest following <dd> is considered.
	dd := dt.NextAllFiltered("dd").First()
	if dd.Length() == 0 {
		return match, nil
	}
	p := dd.Find("p").First()
	if p.Length() == 0 {
		return match, nil
	}
	if description, err := p.Html(); err == nil {
		match.Description = capitalizeFirst(strings.TrimSpace(description))
	}

	return match, nil
}

// findOptionTerm scans definition terms in document order and returns the
// first whose <strong> child text equals flag exactly, or nil.
func findOptionTerm(doc *goquery.Document, flag string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		matched := false
		dt.Find("strong").EachWithBreak(func(_ int, strong *goquery.Selection) bool {
			if strong.Text() == flag {
				matched = true
				return false
			}
			return true
		})
		if matched {
			found = dt
			return false
		}
		return true
	})
	return found
}

// capitalizeFirst uppercases only the first letter; the rest of the string,
// including any embedded markup, passes through unmodified.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
