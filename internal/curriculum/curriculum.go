// Package curriculum turns a topic title into an ordered list of subtopics
// to triage. Generation is model-backed with a fixed clinical outline as
// the fallback, so a session can always start.
package curriculum

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/oslerai/preceptor/internal/llm"
)

// Standard clinical outline used when the model is unavailable. Nearly any
// disease topic decomposes sensibly along these lines.
var fallbackSubtopics = []string{
	"Definition and Pathophysiology",
	"Risk Factors",
	"Clinical Presentation",
	"Diagnosis",
	"Management",
	"Complications",
}

// Bounds on a usable curriculum. Fewer than three subtopics is not a
// session, more than ten will never fit in one sitting.
const (
	minSubtopics = 3
	maxSubtopics = 10
)

// Config holds generation call settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}

// Generator produces subtopic lists.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a Generator. A nil provider forces the fallback
// outline.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// SubtopicsSchema is the JSON schema for curriculum responses.
var SubtopicsSchema = &llm.Schema{
	Name:        "curriculum",
	Description: "Ordered subtopic list for tutoring one medical topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subtopics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Subtopic titles in teaching order, foundational concepts first",
			},
		},
		"required":             []any{"subtopics"},
		"additionalProperties": false,
	},
}

const curriculumSystemPrompt = `You are an expert medical educator planning a one-on-one tutoring session.

Break the given topic into 4 to 8 subtopic titles in teaching order, starting from definition and mechanism and ending with management and complications. Titles are short noun phrases, no numbering.`

var curriculumUserTemplate = template.Must(template.New("curriculum").Parse(`Topic: {{.Topic}}`))

// Generate produces the subtopic list for a topic. It never returns an
// error: any failure resolves to the standard clinical outline.
func (g *Generator) Generate(ctx context.Context, topic string) []string {
	if g.provider == nil {
		return fallback()
	}

	ctx = llm.WithPurpose(ctx, "curriculum")

	var buf bytes.Buffer
	if err := curriculumUserTemplate.Execute(&buf, struct{ Topic string }{topic}); err != nil {
		return fallback()
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      curriculumSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buf.String()}},
		Schema:      SubtopicsSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return fallback()
	}

	var out struct {
		Subtopics []string `json:"subtopics"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallback()
	}

	cleaned := clean(out.Subtopics)
	if len(cleaned) < minSubtopics {
		return fallback()
	}
	if len(cleaned) > maxSubtopics {
		cleaned = cleaned[:maxSubtopics]
	}
	return cleaned
}

// clean drops blank and duplicate titles while preserving order.
func clean(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	var out []string
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

func fallback() []string {
	out := make([]string, len(fallbackSubtopics))
	copy(out, fallbackSubtopics)
	return out
}
