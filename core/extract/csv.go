package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// reviewColumnNames are the header names recognized as the review column, in
// priority order. Russian aliases cover exports from domestic booking tools.
var reviewColumnNames = []string{"review", "text", "comment", "отзыв", "комментарий", "текст"}

// fromCSV parses a CSV export. The first row is treated as a header; the
// review column is located by name and defaults to the first column.
func fromCSV(content []byte) ([]Review, error) {
	reader := csv.NewReader(strings.NewReader(decodeText(content)))
	reader.FieldsPerRecord = -1 // ragged exports are common
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	column := findReviewColumn(header)

	var reviews []Review
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}
		if column >= len(record) {
			continue
		}
		if text, ok := cleanReview(record[column]); ok {
			reviews = append(reviews, Review{Text: text})
		}
	}

	return reviews, nil
}

// findReviewColumn returns the index of the first header matching a known
// review column name, or 0 when none matches.
func findReviewColumn(header []string) int {
	for _, target := range reviewColumnNames {
		for i, name := range header {
			if strings.ToLower(strings.TrimSpace(name)) == target {
				return i
			}
		}
	}
	return 0
}
