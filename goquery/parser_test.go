package goquery_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements docscrape.DocsParser at compile time.
var _ docscrape.DocsParser = (*goquery.Parser)(nil)

func TestParser_ParsePEPIndex(t *testing.T) {
	t.Parallel()

	t.Run("extracts codes and resolves URLs", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<section id="numerical-index">
<table class="pep-zero-table docutils align-default">
<thead><tr><th>Type</th><th>PEP</th><th>Title</th></tr></thead>
<tbody>
<tr class="row-even"><td><abbr title="Process, Active">PA</abbr></td><td><a class="pep reference internal" href="pep-0001/">1</a></td><td>PEP Purpose</td></tr>
<tr class="row-odd"><td><abbr title="Informational">I</abbr></td><td><a class="pep reference internal" href="pep-0002/">2</a></td><td>Procedure</td></tr>
<tr class="row-even"><td><abbr title="Standards Track, Final">SF</abbr></td><td><a class="pep reference internal" href="/pep-0003/">3</a></td><td>Guidelines</td></tr>
</tbody>
</table>
</section>
</body></html>`

		rows, err := goquery.NewParser().ParsePEPIndex(html, "https://peps.python.org/")

		require.NoError(t, err)
		assert.Equal(t, []docscrape.IndexRow{
			{Code: "A", URL: "https://peps.python.org/pep-0001/"},
			{Code: "", URL: "https://peps.python.org/pep-0002/"},
			{Code: "F", URL: "https://peps.python.org/pep-0003/"},
		}, rows)
	})

	t.Run("fails when numerical index section is missing", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParsePEPIndex(`<html><body><table><tbody></tbody></table></body></html>`, "https://peps.python.org/")

		var tagErr *docscrape.TagNotFoundError
		require.True(t, errors.As(err, &tagErr))
		assert.Equal(t, "section", tagErr.Tag)
	})

	t.Run("empty table yields no rows", func(t *testing.T) {
		t.Parallel()

		rows, err := goquery.NewParser().ParsePEPIndex(`<section id="numerical-index"><table><tbody></tbody></table></section>`, "https://peps.python.org/")

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestParser_ParsePEPStatus(t *testing.T) {
	t.Parallel()

	t.Run("reads dd following the Status label", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<dl class="rfc2822 field-list simple">
<dt class="field-odd">Author<span class="colon">:</span></dt>
<dd class="field-odd">Barry Warsaw</dd>
<dt class="field-even">Status<span class="colon">:</span></dt>
<dd class="field-even"><abbr title="Accepted and implementation complete">Final</abbr></dd>
<dt class="field-odd">Type<span class="colon">:</span></dt>
<dd class="field-odd">Process</dd>
</dl>
</body></html>`

		status, err := goquery.NewParser().ParsePEPStatus(html)

		require.NoError(t, err)
		assert.Equal(t, "Final", status)
	})

	t.Run("fails when field list is missing", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParsePEPStatus(`<html><body><dl><dt>Status</dt><dd>Final</dd></dl></body></html>`)

		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	})

	t.Run("fails when Status label is missing", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParsePEPStatus(`<dl class="rfc2822 field-list simple"><dt>Author:</dt><dd>Someone</dd></dl>`)

		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	})
}

func TestParser_ParseWhatsNewLinks(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<section id="what-s-new-in-python">
<h1>What's New in Python</h1>
<div class="toctree-wrapper compound">
<ul>
<li class="toctree-l1"><a class="reference internal" href="3.12.html">What's New In Python 3.12</a>
<ul><li class="toctree-l2"><a class="reference internal" href="3.12.html#summary">Summary</a></li></ul>
</li>
<li class="toctree-l1"><a class="reference internal" href="3.11.html">What's New In Python 3.11</a></li>
</ul>
</div>
</section>
</body></html>`

	links, err := goquery.NewParser().ParseWhatsNewLinks(html, "https://docs.python.org/3/whatsnew/")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://docs.python.org/3/whatsnew/3.12.html",
		"https://docs.python.org/3/whatsnew/3.11.html",
	}, links)
}

func TestParser_ParseWhatsNewArticle(t *testing.T) {
	t.Parallel()

	t.Run("extracts title without header link and flattens author", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<section id="what-s-new-in-python-3-12">
<h1>What’s New In Python 3.12<a class="headerlink" href="#what-s-new-in-python-3-12" title="Link to this heading">¶</a></h1>
<dl class="field-list simple">
<dt class="field-odd">Editor<span class="colon">:</span></dt>
<dd class="field-odd"><p>Adam Turner</p>
</dd>
</dl>
</section>
</body></html>`

		title, author, err := goquery.NewParser().ParseWhatsNewArticle(html)

		require.NoError(t, err)
		assert.Equal(t, "What’s New In Python 3.12", title)
		assert.Equal(t, "Editor: Adam Turner", author)
	})

	t.Run("fails without definition list", func(t *testing.T) {
		t.Parallel()

		_, _, err := goquery.NewParser().ParseWhatsNewArticle(`<h1>Title</h1>`)

		var tagErr *docscrape.TagNotFoundError
		require.True(t, errors.As(err, &tagErr))
		assert.Equal(t, "dl", tagErr.Tag)
	})
}

func TestParser_ParseVersionLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns links of the All versions group", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="sphinxsidebar"><div class="sphinxsidebarwrapper">
<h3>Docs by version</h3>
<ul><li><a href="https://example.com/unrelated">Unrelated</a></li></ul>
<ul>
<li><a href="https://docs.python.org/3.14/">Python 3.14 (in development)</a></li>
<li><a href="https://docs.python.org/3.13/">Python 3.13 (stable)</a></li>
<li><a href="https://www.python.org/doc/versions/">All versions</a></li>
</ul>
</div></div>
</body></html>`

		links, err := goquery.NewParser().ParseVersionLinks(html, "https://docs.python.org/3/")

		require.NoError(t, err)
		assert.Equal(t, []docscrape.Link{
			{URL: "https://docs.python.org/3.14/", Text: "Python 3.14 (in development)"},
			{URL: "https://docs.python.org/3.13/", Text: "Python 3.13 (stable)"},
			{URL: "https://www.python.org/doc/versions/", Text: "All versions"},
		}, links)
	})

	t.Run("missing group is a not found error", func(t *testing.T) {
		t.Parallel()

		html := `<div class="sphinxsidebarwrapper"><ul><li><a href="/a">A</a></li></ul></div>`

		_, err := goquery.NewParser().ParseVersionLinks(html, "https://docs.python.org/3/")

		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
		assert.Contains(t, docscrape.ErrorMessage(err), "All versions")
	})

	t.Run("missing sidebar is a tag not found error", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParseVersionLinks(`<html></html>`, "https://docs.python.org/3/")

		var tagErr *docscrape.TagNotFoundError
		require.True(t, errors.As(err, &tagErr))
	})
}

func TestParser_ParseArchiveLink(t *testing.T) {
	t.Parallel()

	t.Run("resolves the A4 archive link", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div role="main">
<table class="docutils align-default">
<tr><td>PDF (US-Letter paper size)</td><td><a class="reference external" href="archives/python-3.13-docs-pdf-letter.zip">Download</a></td></tr>
<tr><td>PDF (A4 paper size)</td><td><a class="reference external" href="archives/python-3.13-docs-pdf-a4.zip">Download</a></td></tr>
</table>
</div></body></html>`

		link, err := goquery.NewParser().ParseArchiveLink(html, "https://docs.python.org/3/download.html")

		require.NoError(t, err)
		assert.Equal(t, "https://docs.python.org/3/archives/python-3.13-docs-pdf-a4.zip", link)
	})

	t.Run("fails when no archive is linked", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParseArchiveLink(`<div role="main"></div>`, "https://docs.python.org/3/download.html")

		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	})
}
