package assess

import (
	"bytes"
	"text/template"
)

const gradeSystemPrompt = `You are an expert medical educator grading a student's free-text answer during a one-on-one tutoring dialogue.

Grade on this 5-point rubric:
- excellent: complete, accurate, shows mechanism-level understanding
- good: accurate on the main points, minor omissions only
- partial: some correct elements, but significant pieces missing or muddled
- incorrect: mostly wrong or irrelevant to the question
- confused: the student signals they don't know or can't engage with the question

Also list the specific knowledge gaps the answer reveals. Keep each gap to one short phrase. An excellent answer may have an empty gap list.`

var gradeUserTemplate = template.Must(template.New("grade").Parse(`Topic: {{.Topic}}
Subtopic: {{.Subtopic}}
Question asked: {{.Question}}
Student's answer: {{.Answer}}`))

func buildGradeMessage(in GradeInput) (string, error) {
	var buf bytes.Buffer
	if err := gradeUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const reasoningSystemPrompt = `You are evaluating ONLY the clinical reasoning structure of a medical student's answer — not its factual accuracy. Score how well the answer chains mechanisms to consequences (pathophysiology to presentation, intervention to effect). List the sound reasoning moves you observe. Keep each strength to one short phrase.`

var reasoningUserTemplate = template.Must(template.New("reasoning").Parse(`Question asked: {{.Question}}
Student's answer: {{.Answer}}`))

func buildReasoningMessage(question, answer string) (string, error) {
	var buf bytes.Buffer
	err := reasoningUserTemplate.Execute(&buf, struct {
		Question string
		Answer   string
	}{question, answer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
