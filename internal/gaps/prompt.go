package gaps

import (
	"bytes"
	"text/template"
)

const analysisSystemPrompt = `You are an expert medical educator analyzing a student's free-text answer in a tutoring dialogue.

Decompose the answer into knowledge gaps and strengths:
- critical_gaps: missing or wrong knowledge that would endanger a patient or blocks understanding of everything downstream
- important_gaps: significant omissions worth remediating in this session
- minor_gaps: refinements and nice-to-know details
- strength_areas: what the answer shows the student already understands

Keep every entry to one short, specific phrase. Empty lists are fine — do not invent gaps an adequate answer does not have.`

var analysisUserTemplate = template.Must(template.New("gap-analysis").Parse(`Topic: {{.Topic}}
Subtopic: {{.Subtopic}}
Student's answer: {{.Answer}}`))

func buildAnalysisMessage(answer, subtopic, topic string) (string, error) {
	var buf bytes.Buffer
	err := analysisUserTemplate.Execute(&buf, struct {
		Topic    string
		Subtopic string
		Answer   string
	}{topic, subtopic, answer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
