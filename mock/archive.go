package mock

import "github.com/fwojciec/docscrape"

var _ docscrape.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore is a mock implementation of docscrape.ArchiveStore.
type ArchiveStore struct {
	SaveFn func(name string, data []byte) (string, error)
}

func (s *ArchiveStore) Save(name string, data []byte) (string, error) {
	return s.SaveFn(name, data)
}
