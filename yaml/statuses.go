// Package yaml loads the expected PEP status table from YAML.
package yaml

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/fwojciec/docscrape"
	"gopkg.in/yaml.v3"
)

//go:embed statuses.yaml
var defaultStatuses []byte

// DefaultStatusTable returns the built-in status table.
func DefaultStatusTable() (*docscrape.StatusTable, error) {
	return LoadStatusTable(bytes.NewReader(defaultStatuses))
}

// LoadStatusTableFile reads a status table from the YAML file at path.
func LoadStatusTableFile(path string) (*docscrape.StatusTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadStatusTable(f)
}

// LoadStatusTable decodes a mapping of status code to status names.
func LoadStatusTable(r io.Reader) (*docscrape.StatusTable, error) {
	var m map[string][]string
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, docscrape.Errorf(docscrape.EINVALID, "failed to decode status table: %v", err)
	}
	if len(m) == 0 {
		return nil, docscrape.Errorf(docscrape.EINVALID, "status table is empty")
	}
	return docscrape.NewStatusTable(m)
}
