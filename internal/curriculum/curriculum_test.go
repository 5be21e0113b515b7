package curriculum

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/oslerai/preceptor/internal/llm"
)

func TestGenerate_NilProviderUsesFallback(t *testing.T) {
	g := NewGenerator(nil, DefaultConfig())
	got := g.Generate(context.Background(), "ectopic pregnancy")
	if !reflect.DeepEqual(got, fallbackSubtopics) {
		t.Errorf("Generate = %v, want fallback outline", got)
	}
	// The fallback must be a copy the caller can mutate safely.
	got[0] = "mutated"
	if fallbackSubtopics[0] == "mutated" {
		t.Error("fallback outline was mutated through the returned slice")
	}
}

func TestGenerate_FromModel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"subtopics": ["Definition", "  Risk Factors ", "risk factors", "", "Management"]}`),
	})

	g := NewGenerator(mock, DefaultConfig())
	got := g.Generate(context.Background(), "ectopic pregnancy")

	want := []string{"Definition", "Risk Factors", "Management"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Generate = %v, want %v (trimmed, deduped)", got, want)
	}
}

func TestGenerate_DegenerateListFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"subtopics": ["Only One"]}`),
	})

	g := NewGenerator(mock, DefaultConfig())
	got := g.Generate(context.Background(), "ectopic pregnancy")
	if !reflect.DeepEqual(got, fallbackSubtopics) {
		t.Errorf("Generate = %v, want fallback for a one-item list", got)
	}
}

func TestGenerate_EmptyQueueFallsBack(t *testing.T) {
	g := NewGenerator(llm.NewMockProvider(), DefaultConfig())
	got := g.Generate(context.Background(), "ectopic pregnancy")
	if !reflect.DeepEqual(got, fallbackSubtopics) {
		t.Errorf("Generate = %v, want fallback when the provider errors", got)
	}
}
