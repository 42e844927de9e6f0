package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/synapticlabs/synaptic/core/memory"
	"github.com/synapticlabs/synaptic/providers/ai"
)

// invokeSequence builds a model.InvokeFunc-compatible function with a
// configurable return sequence. Each call pops the next element.
type invokeSequence struct {
	responses []*memory.ResponseMem
	errors    []error
	callCount int
}

func (s *invokeSequence) next(_ context.Context, _ ai.Request) (*memory.ResponseMem, error) {
	index := s.callCount
	s.callCount++

	if index < len(s.errors) && s.errors[index] != nil {
		return nil, s.errors[index]
	}

	if index < len(s.responses) {
		return s.responses[index], nil
	}

	return memory.NewResponseMem("default", nil), nil
}

func TestRetryMiddleware_SuccessOnFirstTry(t *testing.T) {
	seq := &invokeSequence{
		responses: []*memory.ResponseMem{memory.NewResponseMem("ok", nil)},
	}

	chain := NewRetryMiddleware(RetryConfig{MaxRetries: 3})(seq.next)

	resp, err := chain(context.Background(), ai.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "ok" {
		t.Errorf("expected 'ok', got %q", resp.Message)
	}
	if seq.callCount != 1 {
		t.Errorf("expected 1 call, got %d", seq.callCount)
	}
}

func TestRetryMiddleware_RetryThenSuccess(t *testing.T) {
	retryableErr := fmt.Errorf("status 429: rate limited")
	seq := &invokeSequence{
		errors:    []error{retryableErr, nil},
		responses: []*memory.ResponseMem{nil, memory.NewResponseMem("ok", nil)},
	}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
	})(seq.next)

	resp, err := chain(context.Background(), ai.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "ok" {
		t.Errorf("expected 'ok', got %q", resp.Message)
	}
	if seq.callCount != 2 {
		t.Errorf("expected 2 calls, got %d", seq.callCount)
	}
}

func TestRetryMiddleware_NonRetryableError(t *testing.T) {
	fatalErr := errors.New("status 401: unauthorized")
	seq := &invokeSequence{errors: []error{fatalErr}}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     3,
		InitialBackoff: time.Millisecond,
	})(seq.next)

	_, err := chain(context.Background(), ai.Request{})
	if !errors.Is(err, fatalErr) {
		t.Fatalf("expected the original error, got %v", err)
	}
	if seq.callCount != 1 {
		t.Errorf("expected no retries, got %d calls", seq.callCount)
	}
}

func TestRetryMiddleware_Exhaustion(t *testing.T) {
	retryableErr := errors.New("status 503: service unavailable")
	seq := &invokeSequence{
		errors: []error{retryableErr, retryableErr, retryableErr},
	}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	})(seq.next)

	_, err := chain(context.Background(), ai.Request{})
	if !errors.Is(err, ErrRetryExhausted) {
		t.Fatalf("expected ErrRetryExhausted, got %v", err)
	}
	if !errors.Is(err, retryableErr) {
		t.Errorf("expected the last provider error wrapped, got %v", err)
	}
	if seq.callCount != 3 {
		t.Errorf("expected 3 calls (1 + 2 retries), got %d", seq.callCount)
	}
}

func TestRetryMiddleware_ContextCanceledBetweenRetries(t *testing.T) {
	retryableErr := errors.New("status 429: slow down")
	seq := &invokeSequence{
		errors: []error{retryableErr, retryableErr, retryableErr, retryableErr},
	}

	ctx, cancel := context.WithCancel(context.Background())
	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 50 * time.Millisecond,
		RetryableFunc: func(err error) bool {
			cancel() // cancel as soon as the first failure is inspected
			return true
		},
	})(seq.next)

	_, err := chain(ctx, ai.Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if seq.callCount != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", seq.callCount)
	}
}

func TestRetryMiddleware_CustomRetryableFunc(t *testing.T) {
	customErr := errors.New("flaky but retryable")
	seq := &invokeSequence{
		errors:    []error{customErr, nil},
		responses: []*memory.ResponseMem{nil, memory.NewResponseMem("ok", nil)},
	}

	chain := NewRetryMiddleware(RetryConfig{
		MaxRetries:     1,
		InitialBackoff: time.Millisecond,
		RetryableFunc:  func(err error) bool { return errors.Is(err, customErr) },
	})(seq.next)

	resp, err := chain(context.Background(), ai.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "ok" {
		t.Errorf("expected 'ok', got %q", resp.Message)
	}
}

func TestTimeoutMiddleware_DeadlineApplied(t *testing.T) {
	var sawDeadline bool
	inner := func(ctx context.Context, _ ai.Request) (*memory.ResponseMem, error) {
		_, sawDeadline = ctx.Deadline()
		return memory.NewResponseMem("ok", nil), nil
	}

	chain := NewTimeoutMiddleware(time.Second)(inner)
	if _, err := chain(context.Background(), ai.Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawDeadline {
		t.Error("expected a deadline on the inner context")
	}
}

func TestTimeoutMiddleware_Expires(t *testing.T) {
	inner := func(ctx context.Context, _ ai.Request) (*memory.ResponseMem, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return memory.NewResponseMem("too late", nil), nil
		}
	}

	chain := NewTimeoutMiddleware(5 * time.Millisecond)(inner)
	_, err := chain(context.Background(), ai.Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}

func TestLoggingMiddleware_SuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	response := memory.NewResponseMem("hi there", nil)
	response.Usage = &memory.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30}
	seq := &invokeSequence{responses: []*memory.ResponseMem{response}}

	chain := NewLoggingMiddleware(logger, LogLevelStandard)(seq.next)
	if _, err := chain(context.Background(), ai.Request{Model: "test-model"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"llm invoke", "llm invoke completed", "test-model", "total_tokens=30"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}

	buf.Reset()
	failing := func(_ context.Context, _ ai.Request) (*memory.ResponseMem, error) {
		return nil, errors.New("boom")
	}
	chain = NewLoggingMiddleware(logger, LogLevelStandard)(failing)
	if _, err := chain(context.Background(), ai.Request{Model: "test-model"}); err == nil {
		t.Fatal("expected the error to propagate")
	}
	if !strings.Contains(buf.String(), "llm invoke failed") {
		t.Errorf("expected a failure entry, got:\n%s", buf.String())
	}
}

func TestLoggingMiddleware_VerboseIncludesContent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	seq := &invokeSequence{responses: []*memory.ResponseMem{memory.NewResponseMem("the answer", nil)}}
	chain := NewLoggingMiddleware(logger, LogLevelVerbose)(seq.next)

	if _, err := chain(context.Background(), ai.Request{Model: "m", Prompt: "the question"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "the question") {
		t.Errorf("expected verbose output to include the prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "the answer") {
		t.Errorf("expected verbose output to include the response, got:\n%s", out)
	}
}

func TestLoggingMiddleware_MinimalOmitsCounts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	seq := &invokeSequence{}
	chain := NewLoggingMiddleware(logger, LogLevelMinimal)(seq.next)

	if _, err := chain(context.Background(), ai.Request{Model: "m", Prompt: "secret"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "secret") {
		t.Errorf("minimal level must not log prompt content, got:\n%s", out)
	}
	if strings.Contains(out, "tool_calls") {
		t.Errorf("minimal level must not log call counts, got:\n%s", out)
	}
}
