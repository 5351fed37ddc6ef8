package mock_generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
)

const mockModel = "mock-model"

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

type completer struct {
	fixtures Fixtures
}

// Complete answers from the fixtures by purpose. Answers are picked by the
// leading number of the question.
func (m *completer) Complete(ctx context.Context, req outbound.CompletionRequest) (outbound.CompletionResult, error) {
	if err := sleep(ctx, m.fixtures.Delay()); err != nil {
		return outbound.CompletionResult{}, err
	}

	var content string
	switch req.Purpose {
	case outbound.EventAnalysisPurpose:
		content = m.fixtures.DetailedStatus
	case outbound.CategorizationPurpose:
		content = m.fixtures.Label
	case outbound.QuestionsPurpose:
		content = m.fixtures.Questions
	case outbound.AnswerPurpose:
		content = m.answerFor(req.User)
	case outbound.ImagePromptPurpose:
		content = m.fixtures.ImagePrompts[0]
		if strings.Contains(req.User, "prompt number 2") {
			content = m.fixtures.ImagePrompts[1]
		}
	default:
		return outbound.CompletionResult{}, fmt.Errorf("no fixture for %s", req.Purpose)
	}

	return outbound.CompletionResult{Content: content, Model: mockModel}, nil
}

func (m *completer) answerFor(question string) string {
	var n int
	if _, err := fmt.Sscanf(question, "%d.", &n); err == nil && n >= 1 && n <= len(m.fixtures.Answers) {
		return m.fixtures.Answers[n-1]
	}
	if len(m.fixtures.Answers) > 0 {
		return m.fixtures.Answers[0]
	}
	return question
}

func (m *completer) Model() string {
	return mockModel
}

type scriptGenerator struct {
	fixtures   Fixtures
	workerPool outbound.TaskDispatcher
}

// Generate streams the fixture script word by word.
func (m *scriptGenerator) Generate(ctx context.Context, _ outbound.GeneratePodcastScriptRequest) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	words := strings.SplitAfter(m.fixtures.Script, " ")
	step := m.fixtures.Delay() / time.Duration(len(words)+1)

	err := m.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)
		for _, word := range words {
			if err := sleep(ctx, step); err != nil {
				errCh <- err
				return
			}
			select {
			case out <- word:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
	})
	if err != nil {
		errCh <- err
		close(errCh)
		close(out)
	}

	return out, errCh
}

func (m *scriptGenerator) Model() string {
	return mockModel
}

type imageRenderer struct {
	fixtures Fixtures
}

func (m *imageRenderer) Render(ctx context.Context, prompt string) ([]string, error) {
	if err := sleep(ctx, 2*m.fixtures.Delay()); err != nil {
		return nil, err
	}
	if prompt == m.fixtures.ImagePrompts[1] {
		return []string{m.fixtures.Images[1]}, nil
	}
	return []string{m.fixtures.Images[0]}, nil
}
