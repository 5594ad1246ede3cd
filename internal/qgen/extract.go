package qgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// questionOutput is one raw question before mapping and filtering.
type questionOutput struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// batchOutput is the schema-shaped response envelope.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

var fencedJSON = regexp.MustCompile("```(?:json)?\n([\\s\\S]*?)\n```")

// extractBatch parses a question batch out of LLM output. Providers
// running with structured output return the schema envelope directly;
// prose-mode providers may wrap a JSON array in fenced blocks or
// surrounding text, so this falls back to a fenced-block match and then
// a bracket scan before giving up.
func extractBatch(raw json.RawMessage) ([]questionOutput, error) {
	text := strings.TrimSpace(string(raw))

	// Schema envelope: {"questions": [...]}.
	var envelope batchOutput
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Questions != nil {
		return envelope.Questions, nil
	}

	// Bare array.
	var batch []questionOutput
	if err := json.Unmarshal(raw, &batch); err == nil {
		return batch, nil
	}

	// Fenced code block.
	if m := fencedJSON.FindStringSubmatch(text); len(m) == 2 {
		if b, err := parseArrayOrEnvelope(m[1]); err == nil {
			return b, nil
		}
	}

	// Last resort: first '[' through last ']'.
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(text[start:end+1]), &batch); err == nil {
			return batch, nil
		}
	}

	return nil, fmt.Errorf("no question batch found in response")
}

func parseArrayOrEnvelope(s string) ([]questionOutput, error) {
	var batch []questionOutput
	if err := json.Unmarshal([]byte(s), &batch); err == nil {
		return batch, nil
	}
	var envelope batchOutput
	if err := json.Unmarshal([]byte(s), &envelope); err == nil && envelope.Questions != nil {
		return envelope.Questions, nil
	}
	return nil, fmt.Errorf("not a question batch")
}
