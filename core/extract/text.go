package extract

import "strings"

// fromText treats each non-empty line as one review.
func fromText(content []byte) []Review {
	var reviews []Review
	for _, line := range strings.Split(decodeText(content), "\n") {
		if text, ok := cleanReview(line); ok {
			reviews = append(reviews, Review{Text: text})
		}
	}
	return reviews
}
