package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

// slowProvider blocks until its context is done.
type slowProvider struct{}

func (s *slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *slowProvider) ModelID() string { return "slow" }

func TestTimeout_DeadlineBecomesUnavailable(t *testing.T) {
	p := WithTimeout(&slowProvider{}, 5*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("got %v, want ErrProviderUnavailable", err)
	}
}

func TestTimeout_ZeroDisablesDeadline(t *testing.T) {
	inner := NewMockProvider(MockResponse{Content: []byte(`{}`)})
	p := WithTimeout(inner, 0)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}
}

func TestTimeout_PreservesInnerResult(t *testing.T) {
	inner := NewMockProvider(MockResponse{Content: []byte(`{"ok":true}`)})
	p := WithTimeout(inner, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("got content %s", resp.Content)
	}
	if p.ModelID() != "mock" {
		t.Errorf("got model %q, want mock", p.ModelID())
	}
}
