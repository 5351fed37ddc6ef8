package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
	"github.com/guillaumesimon/albert-news/infrastructure/adapters"
)

var errUpstream = errors.New("upstream unavailable")

func newTestLogger() outbound.LoggerPort {
	return adapters.NewZerologWrapperFrom(zerolog.Nop())
}

func newTestPool(t *testing.T) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(20)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return pool
}

type fakeCompleter struct {
	model   string
	mu      sync.Mutex
	calls   []outbound.CompletionRequest
	respond func(req outbound.CompletionRequest) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, req outbound.CompletionRequest) (outbound.CompletionResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	content, err := f.respond(req)
	if err != nil {
		return outbound.CompletionResult{}, err
	}
	return outbound.CompletionResult{Content: content, Model: f.model}, nil
}

func (f *fakeCompleter) Model() string {
	return f.model
}

func (f *fakeCompleter) Calls() []outbound.CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]outbound.CompletionRequest(nil), f.calls...)
}

type fakeScriptGenerator struct {
	tokens []string
	err    error
	prompt string
}

func (f *fakeScriptGenerator) Generate(ctx context.Context, req outbound.GeneratePodcastScriptRequest) (<-chan string, <-chan error) {
	f.prompt = req.Prompt
	out := make(chan string)
	errCh := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errCh)
		for _, token := range f.tokens {
			select {
			case out <- token:
			case <-ctx.Done():
				return
			}
		}
		if f.err != nil {
			errCh <- f.err
		}
	}()
	return out, errCh
}

func (f *fakeScriptGenerator) Model() string {
	return "fake-writer"
}

type fakeRenderer struct {
	render func(prompt string) ([]string, error)
}

func (f *fakeRenderer) Render(ctx context.Context, prompt string) ([]string, error) {
	return f.render(prompt)
}

type recordingSink struct {
	mu     sync.Mutex
	events []domain.StreamEvent
}

func (r *recordingSink) Emit(event domain.StreamEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingSink) Events() []domain.StreamEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.StreamEvent(nil), r.events...)
}

func (r *recordingSink) OfType(eventType domain.StreamEventType) []domain.StreamEvent {
	var matched []domain.StreamEvent
	for _, event := range r.Events() {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}

func numberedQuestions(topic string) string {
	return strings.Join([]string{
		"1. What is " + topic + "?",
		"2. Why is " + topic + " important?",
		"3. Who was involved in " + topic + "?",
		"4. Where did " + topic + " happen?",
		"5. What changed after " + topic + "?",
	}, "\n")
}

var testRequest = domain.NewPodcastRequest("req-1", "French Revolution", domain.DefaultCountry, domain.HighSchoolAudience)
