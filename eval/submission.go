package eval

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Labeled query CSV column names.
const (
	columnQuery        = "query"
	columnRelevantURLs = "relevant_urls"
)

// ReadLabeledQueries parses labeled queries from CSV. The file must carry
// a header with a "query" column; the optional "relevant_urls" column
// holds space-separated URLs.
func ReadLabeledQueries(r io.Reader) ([]LabeledQuery, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	queryIdx, urlsIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case columnQuery:
			queryIdx = i
		case columnRelevantURLs:
			urlsIdx = i
		}
	}
	if queryIdx < 0 {
		return nil, fmt.Errorf("missing required column %q", columnQuery)
	}

	var queries []LabeledQuery
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		if queryIdx >= len(record) {
			continue
		}

		lq := LabeledQuery{Query: strings.TrimSpace(record[queryIdx])}
		if lq.Query == "" {
			continue
		}
		if urlsIdx >= 0 && urlsIdx < len(record) {
			lq.RelevantURLs = strings.Fields(record[urlsIdx])
		}
		queries = append(queries, lq)
	}

	return queries, nil
}

// WriteSubmission runs every query through the recommender and writes the
// ranked results as CSV, one row per recommendation.
func (e *Evaluator) WriteSubmission(ctx context.Context, w io.Writer, queries []string, k int) error {
	writer := csv.NewWriter(w)

	header := []string{"query", "rank", "assessment_id", "assessment_name", "canonical_url", "test_type", "skills_tags", "score"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, query := range queries {
		results, err := e.recommender.Recommend(ctx, query, k)
		if err != nil {
			e.logger.Error("submission query failed", "query", query, "err", err)
			return err
		}

		for rank, rec := range results {
			row := []string{
				query,
				strconv.Itoa(rank + 1),
				rec.Label,
				rec.Name,
				rec.URL,
				string(rec.Category),
				rec.SkillsTag(),
				strconv.FormatFloat(rec.Score, 'f', 6, 64),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
