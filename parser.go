package docscrape

// Article is a single "What's New" entry.
type Article struct {
	URL    string
	Title  string
	Author string
}

// Link is an anchor's resolved URL and its text.
type Link struct {
	URL  string
	Text string
}

// DocsParser extracts structured facts from the documentation and PEP pages.
// All methods are pure functions of the page HTML; baseURL resolves
// relative links.
type DocsParser interface {
	// ParsePEPIndex returns the rows of the numerical PEP index.
	ParsePEPIndex(html, baseURL string) ([]IndexRow, error)

	// ParsePEPStatus returns the "Status" field of a PEP page.
	ParsePEPStatus(html string) (string, error)

	// ParseWhatsNewLinks returns the article URLs listed on the "What's New" index.
	ParseWhatsNewLinks(html, baseURL string) ([]string, error)

	// ParseWhatsNewArticle returns the title and editor/author of an article page.
	ParseWhatsNewArticle(html string) (title, author string, err error)

	// ParseVersionLinks returns the links of the "All versions" sidebar group.
	// Returns ENOTFOUND if the group is missing.
	ParseVersionLinks(html, baseURL string) ([]Link, error)

	// ParseArchiveLink returns the absolute URL of the A4 PDF archive.
	ParseArchiveLink(html, baseURL string) (string, error)
}
