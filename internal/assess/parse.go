package assess

import (
	"encoding/json"
	"strings"
)

// gradeOutput is the raw shape of the model's grading response.
type gradeOutput struct {
	Quality      string   `json:"quality"`
	SpecificGaps []string `json:"specific_gaps"`
}

// gradeOutcome is the tagged result of decoding model output: either a
// parsed grade (ok) or the malformed raw text to hand to the secondary
// scanner. One decode stage, one scan stage, no nested recovery.
type gradeOutcome struct {
	ok    bool
	grade gradeOutput
	raw   string
}

// decodeGrade parses the model's content. Malformed JSON or an
// out-of-enum quality value both count as malformed.
func decodeGrade(content json.RawMessage) gradeOutcome {
	var out gradeOutput
	if err := json.Unmarshal(content, &out); err != nil {
		return gradeOutcome{raw: string(content)}
	}
	if !ValidQuality(out.Quality) {
		return gradeOutcome{raw: string(content)}
	}
	return gradeOutcome{ok: true, grade: out}
}

// scanQuality is the secondary parser: scan the raw text for each grade
// keyword in priority order (excellent > good > partial > incorrect >
// confused) and take the first hit.
func scanQuality(raw string) (Quality, bool) {
	lower := strings.ToLower(raw)
	for _, q := range qualityScanOrder {
		if strings.Contains(lower, string(q)) {
			return q, true
		}
	}
	return "", false
}

// reasoningOutput is the raw shape of the model's reasoning response.
type reasoningOutput struct {
	Score     float64  `json:"score"`
	Strengths []string `json:"strengths"`
}

// decodeReasoning parses the reasoning score, clamping out-of-range values.
func decodeReasoning(content json.RawMessage) (reasoningOutput, bool) {
	var out reasoningOutput
	if err := json.Unmarshal(content, &out); err != nil {
		return reasoningOutput{}, false
	}
	if out.Score < 0 {
		out.Score = 0
	}
	if out.Score > 1 {
		out.Score = 1
	}
	return out, true
}
