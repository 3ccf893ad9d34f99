package usecase

import (
	"context"
	"sync"
	"time"

	"timefilter-core/internal/domain/entity"
)

var fixedNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fakeProvider answers every prompt with the same text and counts calls.
type fakeProvider struct {
	mu    sync.Mutex
	out   string
	err   error
	calls int
	last  []entity.PromptTurn
}

func (f *fakeProvider) Complete(ctx context.Context, turns []entity.PromptTurn) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = turns
	return f.out, f.err
}

func (f *fakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// scriptedProvider returns one result per call, repeating the last one.
type scriptedProvider struct {
	mu      sync.Mutex
	results []scripted
	calls   int
}

type scripted struct {
	out string
	err error
}

func (s *scriptedProvider) Complete(ctx context.Context, turns []entity.PromptTurn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return r.out, r.err
}

// blockingProvider waits until ctx is done.
type blockingProvider struct{}

func (blockingProvider) Complete(ctx context.Context, turns []entity.PromptTurn) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func newTestInterpreter(out string) (*Interpreter, *fakeProvider) {
	p := &fakeProvider{out: out}
	return NewInterpreter(p).WithClock(fixedClock), p
}

func ptr[T any](v T) *T { return &v }
