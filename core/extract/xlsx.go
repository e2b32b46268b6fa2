package extract

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// fromXLSX parses an Excel workbook. Only the first sheet is read; the first
// row is treated as a header, matching the CSV path.
func fromXLSX(content []byte) ([]Review, error) {
	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	column := findReviewColumn(rows[0])

	var reviews []Review
	for _, row := range rows[1:] {
		if column >= len(row) {
			continue
		}
		if text, ok := cleanReview(row[column]); ok {
			reviews = append(reviews, Review{Text: text})
		}
	}

	return reviews, nil
}
