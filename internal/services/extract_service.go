package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"yatra/pkg/utils"
)

// ExtractorInterface recovers the structured day-array payload embedded in an
// arbitrary model response. It tolerates prose around the payload, not inside
// it, and never yields a partial result: any defect is ErrExtractionFailure.
type ExtractorInterface interface {
	ExtractPayload(raw string) ([]interface{}, error)
}

type Extractor struct{}

func NewExtractor() ExtractorInterface {
	return &Extractor{}
}

// wrapper fields tried when the model returns an object instead of an array
var payloadWrapperFields = []string{"days", "itinerary"}

var trailingCommaPattern = regexp.MustCompile(`,\s*([\]}])`)

var quoteNormalizer = strings.NewReplacer(
	"“", `"`, "”", `"`, "„", `"`,
	"‘", "'", "’", "'",
)

func (e *Extractor) ExtractPayload(raw string) ([]interface{}, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = quoteNormalizer.Replace(cleaned)

	region, found := isolateBracketRegion(cleaned)
	if !found {
		return nil, fmt.Errorf("%w: no bracketed region", utils.ErrExtractionFailure)
	}

	repaired := repairRegion(region)

	var parsed interface{}
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrExtractionFailure, err)
	}

	switch v := parsed.(type) {
	case []interface{}:
		return v, nil
	case map[string]interface{}:
		for _, field := range payloadWrapperFields {
			if inner, ok := v[field].([]interface{}); ok {
				return inner, nil
			}
		}
		return nil, fmt.Errorf("%w: object payload has no day list", utils.ErrExtractionFailure)
	default:
		return nil, fmt.Errorf("%w: payload is neither array nor object", utils.ErrExtractionFailure)
	}
}

// isolateBracketRegion slices the greedy outermost bracketed region: from the
// first opening bracket to the last closing bracket of the same kind. The kind
// is decided by whichever opener appears first in the text.
func isolateBracketRegion(s string) (string, bool) {
	arrStart := strings.Index(s, "[")
	objStart := strings.Index(s, "{")

	var start int
	var closer string
	switch {
	case arrStart != -1 && (objStart == -1 || arrStart < objStart):
		start, closer = arrStart, "]"
	case objStart != -1:
		start, closer = objStart, "}"
	default:
		return "", false
	}

	end := strings.LastIndex(s, closer)
	if end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// repairRegion applies the deterministic fixes for the common defects of
// generated JSON: embedded newlines (payload fields are single-line) and
// trailing commas before a closing bracket.
func repairRegion(region string) string {
	region = strings.NewReplacer("\r", " ", "\n", " ").Replace(region)
	return trailingCommaPattern.ReplaceAllString(region, "$1")
}
