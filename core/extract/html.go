package extract

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// fromHTML extracts reviews from an HTML page (e.g. a saved booking-site
// listing). The page is converted to markdown and each non-empty line becomes
// a review candidate, with markdown structure markers stripped.
func fromHTML(content []byte) ([]Review, error) {
	markdown, err := htmltomarkdown.ConvertString(decodeText(content))
	if err != nil {
		return nil, fmt.Errorf("converting html: %w", err)
	}

	var reviews []Review
	for _, line := range strings.Split(markdown, "\n") {
		line = stripMarkdownMarkers(line)
		if text, ok := cleanReview(line); ok {
			reviews = append(reviews, Review{Text: text})
		}
	}

	return reviews, nil
}

// stripMarkdownMarkers removes leading list bullets, heading hashes, and
// blockquote markers left over from the HTML conversion.
func stripMarkdownMarkers(line string) string {
	return strings.TrimLeft(strings.TrimSpace(line), "#->* \t")
}
