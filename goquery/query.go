// Package goquery implements HTML queries and page parsers for the Python
// documentation and PEP sites using github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docscrape"
)

// NewDocument parses html into a queryable document.
func NewDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// FindTag returns the first descendant of root matching tag and attrs.
// Returns *docscrape.TagNotFoundError when nothing matches.
func FindTag(root *goquery.Selection, tag string, attrs docscrape.Attrs) (*goquery.Selection, error) {
	found := FindAll(root, tag, attrs).First()
	if found.Length() == 0 {
		return nil, &docscrape.TagNotFoundError{Tag: tag, Attrs: attrs}
	}
	return found, nil
}

// FindAll returns every descendant of root matching tag and attrs in
// document order. The selection is empty when nothing matches.
func FindAll(root *goquery.Selection, tag string, attrs docscrape.Attrs) *goquery.Selection {
	return root.Find(tagSelector(tag, attrs))
}

// SelectFirst returns the first descendant of root matching a CSS selector.
// Returns *docscrape.TagNotFoundError when nothing matches.
func SelectFirst(root *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := root.Find(selector).First()
	if found.Length() == 0 {
		return nil, &docscrape.TagNotFoundError{Selector: selector}
	}
	return found, nil
}

// tagSelector builds a CSS selector matching attribute values exactly.
func tagSelector(tag string, attrs docscrape.Attrs) string {
	var b strings.Builder
	b.WriteString(tag)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString("[")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(attrs[k]))
		b.WriteString(`"]`)
	}
	return b.String()
}

func escapeAttr(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}

// resolveHref resolves the href attribute of sel against base.
func resolveHref(base *url.URL, sel *goquery.Selection) (string, error) {
	href, ok := sel.Attr("href")
	if !ok || href == "" {
		return "", docscrape.Errorf(docscrape.EINVALID, "link %q has no href", strings.TrimSpace(sel.Text()))
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid href %q: %v", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "invalid base URL: %v", err)
	}
	return base, nil
}
