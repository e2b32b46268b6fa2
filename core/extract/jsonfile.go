package extract

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// fromJSON parses a JSON review file. Two shapes are accepted: an array of
// objects with a "review_text" field, or a plain array of strings. Hand-edited
// files with loose syntax (single quotes, trailing commas) are repaired and
// retried once.
func fromJSON(content []byte) ([]Review, error) {
	text := decodeText(content)

	reviews, err := decodeReviewList(text)
	if err == nil {
		return reviews, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(text)
	if repairErr != nil {
		return nil, fmt.Errorf("parsing json reviews: %w", err)
	}

	reviews, err = decodeReviewList(repaired)
	if err != nil {
		return nil, fmt.Errorf("parsing json reviews: %w", err)
	}
	return reviews, nil
}

func decodeReviewList(text string) ([]Review, error) {
	var objects []Review
	if err := json.Unmarshal([]byte(text), &objects); err == nil {
		return filterReviews(objects), nil
	}

	var lines []string
	if err := json.Unmarshal([]byte(text), &lines); err != nil {
		return nil, err
	}

	objects = make([]Review, 0, len(lines))
	for _, line := range lines {
		objects = append(objects, Review{Text: line})
	}
	return filterReviews(objects), nil
}

func filterReviews(candidates []Review) []Review {
	var reviews []Review
	for _, candidate := range candidates {
		if text, ok := cleanReview(candidate.Text); ok {
			reviews = append(reviews, Review{Text: text})
		}
	}
	return reviews
}
