package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single capability the tutoring core consumes: send a
// prompt, get back structured text. Everything above this interface treats
// the response as untrusted and falls back to deterministic heuristics when
// a call fails, times out, or returns malformed content.
type Provider interface {
	// Generate sends a prompt and returns the model's response. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and the returned Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request describes a single model call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation to send. Grading and gap analysis are
	// single-turn, so this usually holds one user message.
	Messages []Message

	// Schema, when set, constrains the response to JSON conforming to it.
	// When nil, Content is the raw text wrapped as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero value means
	// deterministic output.
	Temperature float64
}

// Message is one turn of conversation sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure the model must produce.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "answer-grade".
	// Used as the tool/schema name where the provider needs one.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label ("answer-grade", "gap-analysis", …)
// to the context so the logging decorator can attribute the call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
