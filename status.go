package docscrape

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StatusTable maps a one-character status code to the canonical status
// names a PEP with that code may carry. The empty code is the default for
// index rows whose abbreviation has no status letter.
//
// A StatusTable is immutable once built.
type StatusTable struct {
	expected map[string][]string
}

// NewStatusTable copies m into a new StatusTable.
// Every code must be empty or a single character and map to at least one name.
func NewStatusTable(m map[string][]string) (*StatusTable, error) {
	expected := make(map[string][]string, len(m))
	for code, names := range m {
		if len([]rune(code)) > 1 {
			return nil, Errorf(EINVALID, "status code %q must be a single character", code)
		}
		if len(names) == 0 {
			return nil, Errorf(EINVALID, "status code %q has no expected statuses", code)
		}
		expected[code] = append([]string(nil), names...)
	}
	return &StatusTable{expected: expected}, nil
}

// Has reports whether code is a key of the table.
func (t *StatusTable) Has(code string) bool {
	if t == nil {
		return false
	}
	_, ok := t.expected[code]
	return ok
}

// Expected returns a copy of the canonical names for code.
// Unknown codes return nil.
func (t *StatusTable) Expected(code string) []string {
	if t == nil {
		return nil
	}
	names, ok := t.expected[code]
	if !ok {
		return nil
	}
	return append([]string(nil), names...)
}

// Contains reports whether status is an expected name for code.
func (t *StatusTable) Contains(code, status string) bool {
	if t == nil {
		return false
	}
	for _, name := range t.expected[code] {
		if name == status {
			return true
		}
	}
	return false
}

// Codes returns the table's codes in sorted order.
func (t *StatusTable) Codes() []string {
	codes := make([]string, 0, len(t.expected))
	for code := range t.expected {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ParseStatusCode extracts the status code from an index abbreviation.
// The first character is the type marker, the second is the status code,
// and anything after that is ignored. Abbreviations shorter than two
// characters map to the empty code.
func ParseStatusCode(abbr string) string {
	runes := []rune(strings.TrimSpace(abbr))
	if len(runes) < 2 {
		return ""
	}
	return string(runes[1])
}

// IndexRow is one entry of the numerical PEP index.
type IndexRow struct {
	Code string
	URL  string
}

// Discrepancy records a PEP whose page status is not expected for its index code.
type Discrepancy struct {
	URL      string
	Status   string
	Expected []string
}

// String renders the discrepancy as a multi-line warning.
func (d Discrepancy) String() string {
	return fmt.Sprintf("Mismatched statuses:\n%s\nStatus on page: %s\nExpected statuses: %s",
		d.URL, d.Status, strings.Join(d.Expected, ", "))
}

// StatusTally counts status occurrences, preserving first-insertion order.
type StatusTally struct {
	order  []string
	counts map[string]int
}

// NewStatusTally returns an empty tally.
func NewStatusTally() *StatusTally {
	return &StatusTally{counts: make(map[string]int)}
}

// Add increments the count for status.
func (t *StatusTally) Add(status string) {
	if _, ok := t.counts[status]; !ok {
		t.order = append(t.order, status)
	}
	t.counts[status]++
}

// Count returns the count for status.
func (t *StatusTally) Count(status string) int {
	return t.counts[status]
}

// Statuses returns statuses in first-insertion order.
func (t *StatusTally) Statuses() []string {
	return append([]string(nil), t.order...)
}

// Total returns the sum of all counts.
func (t *StatusTally) Total() int {
	var total int
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Table renders the tally with a ("Status", "Count") header and a trailing
// "Total" row.
func (t *StatusTally) Table() Table {
	table := NewTable("Status", "Count")
	for _, status := range t.order {
		table.Append(status, strconv.Itoa(t.counts[status]))
	}
	table.Append("Total", strconv.Itoa(t.Total()))
	return table
}
