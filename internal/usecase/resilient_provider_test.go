package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newFastResilient(primary, fallback *scriptedProvider) *ResilientProvider {
	r := NewResilientProvider(primary, nil, time.Second)
	if fallback != nil {
		r.fallback = fallback
	}
	r.baseDelay = time.Millisecond
	return r
}

func TestResilientRetriesTransientErrors(t *testing.T) {
	primary := &scriptedProvider{results: []scripted{
		{err: errors.New("googleapi: Error 503: overloaded")},
		{out: `{"filter_type":"favor recent"}`},
	}}
	out, err := newFastResilient(primary, nil).Complete(context.Background(), FilterPrompt("q"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"filter_type":"favor recent"}` {
		t.Errorf("unexpected output %q", out)
	}
	if primary.calls != 2 {
		t.Errorf("expected 2 primary calls, got %d", primary.calls)
	}
}

func TestResilientNoRetryOnPermanentError(t *testing.T) {
	primary := &scriptedProvider{results: []scripted{{err: errors.New("permission denied")}}}
	_, err := newFastResilient(primary, nil).Complete(context.Background(), FilterPrompt("q"))
	if err == nil {
		t.Fatal("expected error")
	}
	if primary.calls != 1 {
		t.Errorf("expected a single attempt, got %d", primary.calls)
	}
}

func TestResilientFallsBack(t *testing.T) {
	primary := &scriptedProvider{results: []scripted{{err: errors.New("status 429")}}}
	fallback := &scriptedProvider{results: []scripted{{out: "{}"}}}

	out, err := newFastResilient(primary, fallback).Complete(context.Background(), FilterPrompt("q"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "{}" {
		t.Errorf("expected fallback output, got %q", out)
	}
	if primary.calls != 3 || fallback.calls != 1 {
		t.Errorf("expected 3 primary and 1 fallback calls, got %d and %d", primary.calls, fallback.calls)
	}
}

func TestResilientBothFail(t *testing.T) {
	primary := &scriptedProvider{results: []scripted{{err: errors.New("boom")}}}
	fallback := &scriptedProvider{results: []scripted{{err: errors.New("bang")}}}

	_, err := newFastResilient(primary, fallback).Complete(context.Background(), FilterPrompt("q"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestResilientTimeout(t *testing.T) {
	r := NewResilientProvider(blockingProvider{}, blockingProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := r.Complete(context.Background(), FilterPrompt("q"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Errorf("timeout not enforced, took %v", time.Since(start))
	}
}

func TestIsRetryable(t *testing.T) {
	cases := map[error]bool{
		errors.New("Error 429: quota"):  true,
		errors.New("503 Unavailable"):   true,
		errors.New("invalid argument"):  false,
		context.DeadlineExceeded:        false,
		context.Canceled:                false,
	}
	for err, want := range cases {
		if got := isRetryable(err); got != want {
			t.Errorf("isRetryable(%v) = %v, want %v", err, got, want)
		}
	}
}
