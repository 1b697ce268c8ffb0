package docscrape

import (
	"net/url"
	"path"
)

// ArchiveStore persists downloaded archives.
type ArchiveStore interface {
	// Save writes data under name, replacing any existing archive, and
	// returns the saved path.
	Save(name string, data []byte) (string, error)
}

// ArchiveName returns the final path segment of rawURL.
// Example: https://docs.python.org/3/archives/python-3.13-docs-pdf-a4.zip → python-3.13-docs-pdf-a4.zip
func ArchiveName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid archive URL: %v", err)
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." || name == "" {
		return "", Errorf(EINVALID, "archive URL %q has no file name", rawURL)
	}
	return name, nil
}
