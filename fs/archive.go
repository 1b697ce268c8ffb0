package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/docscrape"
)

// Ensure ArchiveStore implements docscrape.ArchiveStore at compile time.
var _ docscrape.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore saves downloaded archives into a directory.
type ArchiveStore struct {
	dir string
}

// NewArchiveStore creates a new ArchiveStore rooted at dir.
func NewArchiveStore(dir string) *ArchiveStore {
	return &ArchiveStore{dir: dir}
}

// Save writes data verbatim to dir/name, replacing any existing file, and
// returns the path. The directory is created if missing. Data is written to
// a temporary file first and renamed into place.
func (s *ArchiveStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", err
	}

	finalPath := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := os.Rename(tmp.Name(), finalPath); err != nil {
		return "", err
	}
	return finalPath, nil
}
