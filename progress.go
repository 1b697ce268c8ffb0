package docscrape

// Progress reports per-row progress of an extractor loop.
type Progress struct {
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is called once per processed row.
type ProgressFunc func(Progress)
