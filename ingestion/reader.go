package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Crawler output column names.
const (
	columnSourceURL       = "source_url"
	columnCanonicalURL    = "canonical_url"
	columnTitle           = "title"
	columnMetaDescription = "meta_description"
	columnTextSnippet     = "text_snippet"
	columnExtractedText   = "extracted_text"
)

// ReadItems parses crawler CSV output into raw items. The first row must
// be a header; columns may appear in any order and unknown columns are
// ignored.
func ReadItems(r io.Reader) ([]RawItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := columns[columnSourceURL]; !ok {
		return nil, fmt.Errorf("missing required column %q", columnSourceURL)
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	var items []RawItem
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		items = append(items, RawItem{
			SourceURL:       field(record, columnSourceURL),
			CanonicalURL:    field(record, columnCanonicalURL),
			Title:           field(record, columnTitle),
			MetaDescription: field(record, columnMetaDescription),
			TextSnippet:     field(record, columnTextSnippet),
			ExtractedText:   field(record, columnExtractedText),
		})
	}

	return items, nil
}

// ReadItemsFile parses crawler CSV output from a file on disk.
func ReadItemsFile(path string) ([]RawItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadItems(f)
}
