package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_FIFOOrder(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Content: []byte(`{"n":1}`)},
		MockResponse{Content: []byte(`{"n":2}`)},
	)

	r1, err := m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := m.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(r1.Content) != `{"n":1}` || string(r2.Content) != `{"n":2}` {
		t.Errorf("responses out of order: %s, %s", r1.Content, r2.Content)
	}
}

func TestMockProvider_EmptyQueueIsUnavailable(t *testing.T) {
	m := NewMockProvider()

	_, err := m.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	m := NewMockProvider(MockResponse{Content: []byte(`{}`)})

	_, _ = m.Generate(context.Background(), Request{System: "sys"})
	if m.CallCount() != 1 {
		t.Fatalf("got %d calls, want 1", m.CallCount())
	}
	if m.Calls[0].System != "sys" {
		t.Errorf("recorded system prompt %q, want %q", m.Calls[0].System, "sys")
	}
}

func TestMockProvider_CannedError(t *testing.T) {
	wantErr := &ErrRateLimit{Err: errors.New("slow down")}
	m := NewMockProvider(MockResponse{Err: wantErr})

	_, err := m.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("got %v, want ErrRateLimit", err)
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "carrier-pigeon"}, nil, nil)
	if err == nil {
		t.Fatal("expected an error for unknown provider")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("got model %q, want mock", p.ModelID())
	}
}
