package goquery_test

import (
	"testing"

	mananki "github.com/maiatoja152/man-to-anki"
	"github.com/maiatoja152/man-to-anki/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDescription(t *testing.T) {
	t.Parallel()

	t.Run("extracts the summary after a hyphen separator", func(t *testing.T) {
		t.Parallel()

		html := `<h1>NAME</h1><p>ls - list directory contents</p>`

		summary, err := goquery.NewExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "List directory contents", summary)
	})

	t.Run("extracts the summary after an em-dash separator", func(t *testing.T) {
		t.Parallel()

		html := `<p>grep — print lines that match patterns</p>`

		summary, err := goquery.NewExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "Print lines that match patterns", summary)
	})

	t.Run("only uppercases the first character", func(t *testing.T) {
		t.Parallel()

		html := `<p>tar - an archiving utility (GNU tar)</p>`

		summary, err := goquery.NewExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "An archiving utility (GNU tar)", summary)
	})

	t.Run("uses the first paragraph only", func(t *testing.T) {
		t.Parallel()

		html := `<p>ls - list directory contents</p><p>other - wrong summary</p>`

		summary, err := goquery.NewExtractor().ExtractDescription(html)

		require.NoError(t, err)
		assert.Equal(t, "List directory contents", summary)
	})

	t.Run("returns ENOTFOUND when the page has no paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<h1>NAME</h1><div>ls - list directory contents</div>`

		_, err := goquery.NewExtractor().ExtractDescription(html)

		require.Error(t, err)
		assert.Equal(t, mananki.ENOTFOUND, mananki.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when the separator is absent", func(t *testing.T) {
		t.Parallel()

		html := `<p>The ls utility lists directory contents.</p>`

		_, err := goquery.NewExtractor().ExtractDescription(html)

		require.Error(t, err)
		assert.Equal(t, mananki.ENOTFOUND, mananki.ErrorCode(err))
	})

	t.Run("requires a single space on each side of the separator", func(t *testing.T) {
		t.Parallel()

		html := `<p>ls- list directory contents</p>`

		_, err := goquery.NewExtractor().ExtractDescription(html)

		require.Error(t, err)
		assert.Equal(t, mananki.ENOTFOUND, mananki.ErrorCode(err))
	})
}

func TestExtractOption(t *testing.T) {
	t.Parallel()

	const page = `<dl>
<dt><strong>-l</strong></dt>
<dd><p>use a long listing format</p></dd>
<dt><strong>-m</strong> &lt;msg&gt;, <strong>--message</strong>=&lt;msg&gt;</dt>
<dd><p>Use the given &lt;msg&gt; as the commit message.</p></dd>
</dl>`

	t.Run("matches a term by exact emphasized text", func(t *testing.T) {
		t.Parallel()

		match, err := goquery.NewExtractor().ExtractOption(page, "-m")

		require.NoError(t, err)
		require.True(t, match.Found)
		assert.Equal(t, "<strong>-m</strong> &lt;msg&gt;, <strong>--message</strong>=&lt;msg&gt;", match.Title)
		assert.Equal(t, "Use the given &lt;msg&gt; as the commit message.", match.Description)
	})

	t.Run("capitalizes the description's first letter", func(t *testing.T) {
		t.Parallel()

		match, err := goquery.NewExtractor().ExtractOption(page, "-l")

		require.NoError(t, err)
		require.True(t, match.Found)
		assert.Equal(t, "Use a long listing format", match.Description)
	})

	t.Run("preserves inline markup in the description", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt><strong>-v</strong></dt>
<dd><p>be <em>verbose</em> about it</p></dd></dl>`

		match, err := goquery.NewExtractor().ExtractOption(html, "-v")

		require.NoError(t, err)
		require.True(t, match.Found)
		assert.Equal(t, "Be <em>verbose</em> about it", match.Description)
	})

	t.Run("first matching term wins", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt><strong>-v</strong></dt><dd><p>first definition</p></dd>
<dt><strong>-v</strong></dt><dd><p>second definition</p></dd></dl>`

		match, err := goquery.NewExtractor().ExtractOption(html, "-v")

		require.NoError(t, err)
		assert.Equal(t, "First definition", match.Description)
	})

	t.Run("ignores incidental mentions outside emphasized term text", func(t *testing.T) {
		t.Parallel()

		html := `<p>see also -v</p><dl><dt>-v plain text, not emphasized</dt>
<dd><p>wrong entry</p></dd></dl>`

		match, err := goquery.NewExtractor().ExtractOption(html, "-v")

		require.NoError(t, err)
		assert.False(t, match.Found)
	})

	t.Run("requires exact flag text", func(t *testing.T) {
		t.Parallel()

		match, err := goquery.NewExtractor().ExtractOption(page, "-x")

		require.NoError(t, err)
		assert.False(t, match.Found)
	})

	t.Run("skips intervening non-dd siblings when pairing the definition", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt><strong>-a</strong></dt><dt><strong>-b</strong></dt>
<dd><p>shared definition</p></dd></dl>`

		match, err := goquery.NewExtractor().ExtractOption(html, "-a")

		require.NoError(t, err)
		require.True(t, match.Found)
		assert.Equal(t, "Shared definition", match.Description)
	})

	t.Run("leaves the description empty when the term has no definition", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt><strong>-q</strong></dt></dl>`

		match, err := goquery.NewExtractor().ExtractOption(html, "-q")

		require.NoError(t, err)
		require.True(t, match.Found)
		assert.Equal(t, "<strong>-q</strong>", match.Title)
		assert.Empty(t, match.Description)
	})

	t.Run("leaves the description empty when the definition has no paragraph", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt><strong>-q</strong></dt><dd><pre>code only</pre></dd></dl>`

		match, err := goquery.NewExtractor().ExtractOption(html, "-q")

		require.NoError(t, err)
		require.True(t, match.Found)
		assert.Empty(t, match.Description)
	})
}
