package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

var _ docscrape.DocsParser = (*Parser)(nil)

// Selectors for the Sphinx themes used by docs.python.org and peps.python.org.
const (
	whatsNewSelector = "#what-s-new-in-python div.toctree-wrapper li.toctree-l1"
	archiveSelector  = `div[role="main"] table.docutils a[href$="pdf-a4.zip"]`

	allVersionsMarker = "All versions"
)

// Parser implements docscrape.DocsParser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParsePEPIndex returns one row per entry of the numerical index table.
func (p *Parser) ParsePEPIndex(html, baseURL string) ([]docscrape.IndexRow, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	doc, err := NewDocument(html)
	if err != nil {
		return nil, err
	}

	section, err := FindTag(doc.Selection, "section", docscrape.Attrs{"id": "numerical-index"})
	if err != nil {
		return nil, err
	}
	tbody, err := FindTag(section, "tbody", nil)
	if err != nil {
		return nil, err
	}

	trs := FindAll(tbody, "tr", nil)
	rows := make([]docscrape.IndexRow, 0, trs.Length())
	for i := range trs.Nodes {
		tr := trs.Eq(i)

		abbr, err := FindTag(tr, "abbr", nil)
		if err != nil {
			return nil, err
		}
		link, err := FindTag(tr, "a", docscrape.Attrs{"class": "pep reference internal"})
		if err != nil {
			return nil, err
		}
		u, err := resolveHref(base, link)
		if err != nil {
			return nil, err
		}

		rows = append(rows, docscrape.IndexRow{
			Code: docscrape.ParseStatusCode(abbr.Text()),
			URL:  u,
		})
	}
	return rows, nil
}

// ParsePEPStatus reads the value following the "Status" label of the
// PEP header field list.
func (p *Parser) ParsePEPStatus(html string) (string, error) {
	doc, err := NewDocument(html)
	if err != nil {
		return "", err
	}

	fields, err := FindTag(doc.Selection, "dl", docscrape.Attrs{"class": "rfc2822 field-list simple"})
	if err != nil {
		return "", err
	}

	var status string
	var found bool
	fields.Find("dt").EachWithBreak(func(_ int, dt *goquery.Selection) bool {
		if fieldLabel(dt.Text()) != "Status" {
			return true
		}
		dd := dt.NextAllFiltered("dd").First()
		if dd.Length() == 0 {
			return true
		}
		status = strings.TrimSpace(dd.Text())
		found = true
		return false
	})
	if !found {
		return "", &docscrape.TagNotFoundError{Selector: `dt "Status" ~ dd`}
	}
	return status, nil
}

// fieldLabel strips whitespace and the trailing colon Sphinx renders after
// field names.
func fieldLabel(s string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ":"))
}

// ParseWhatsNewLinks returns one absolute URL per release section.
func (p *Parser) ParseWhatsNewLinks(html, baseURL string) ([]string, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	doc, err := NewDocument(html)
	if err != nil {
		return nil, err
	}

	sections := doc.Find(whatsNewSelector)
	links := make([]string, 0, sections.Length())
	for i := range sections.Nodes {
		a, err := FindTag(sections.Eq(i), "a", nil)
		if err != nil {
			return nil, err
		}
		u, err := resolveHref(base, a)
		if err != nil {
			return nil, err
		}
		links = append(links, u)
	}
	return links, nil
}

// ParseWhatsNewArticle returns the page heading and the text of the first
// definition list, which holds the editor and author credits.
func (p *Parser) ParseWhatsNewArticle(html string) (string, string, error) {
	doc, err := NewDocument(html)
	if err != nil {
		return "", "", err
	}

	h1, err := FindTag(doc.Selection, "h1", nil)
	if err != nil {
		return "", "", err
	}
	dl, err := FindTag(doc.Selection, "dl", nil)
	if err != nil {
		return "", "", err
	}

	heading := h1.Clone()
	heading.Find("a.headerlink").Remove()

	title := strings.TrimSpace(heading.Text())
	author := strings.TrimSpace(strings.ReplaceAll(dl.Text(), "\n", " "))
	return title, author, nil
}

// ParseVersionLinks returns the links of the sidebar list mentioning
// "All versions".
func (p *Parser) ParseVersionLinks(html, baseURL string) ([]docscrape.Link, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	doc, err := NewDocument(html)
	if err != nil {
		return nil, err
	}

	sidebar, err := FindTag(doc.Selection, "div", docscrape.Attrs{"class": "sphinxsidebarwrapper"})
	if err != nil {
		return nil, err
	}

	var group *goquery.Selection
	FindAll(sidebar, "ul", nil).EachWithBreak(func(_ int, ul *goquery.Selection) bool {
		if strings.Contains(ul.Text(), allVersionsMarker) {
			group = ul
			return false
		}
		return true
	})
	if group == nil {
		return nil, docscrape.Errorf(docscrape.ENOTFOUND, "sidebar group %q not found", allVersionsMarker)
	}

	anchors := FindAll(group, "a", nil)
	links := make([]docscrape.Link, 0, anchors.Length())
	for i := range anchors.Nodes {
		a := anchors.Eq(i)
		u, err := resolveHref(base, a)
		if err != nil {
			return nil, err
		}
		links = append(links, docscrape.Link{
			URL:  u,
			Text: strings.TrimSpace(a.Text()),
		})
	}
	return links, nil
}

// ParseArchiveLink returns the absolute URL of the A4 PDF archive.
func (p *Parser) ParseArchiveLink(html, baseURL string) (string, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return "", err
	}
	doc, err := NewDocument(html)
	if err != nil {
		return "", err
	}

	a, err := SelectFirst(doc.Selection, archiveSelector)
	if err != nil {
		return "", err
	}
	return resolveHref(base, a)
}
