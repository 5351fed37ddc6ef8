package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillaumesimon/albert-news/application/directives"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

func TestResearchAnswerer_AnswersEveryQuestionInOrder(t *testing.T) {
	questions := domain.NewQuestionSet(numberedQuestions("the French Revolution"))
	researcher := &fakeCompleter{model: "research-model", respond: func(req outbound.CompletionRequest) (string, error) {
		// Earlier questions resolve later so completion order differs from issuance order.
		if strings.HasPrefix(req.User, "1.") {
			time.Sleep(30 * time.Millisecond)
		}
		return "answer to " + req.User, nil
	}}
	sink := &recordingSink{}

	answers, err := NewResearchAnswerer(newTestLogger(), researcher, newTestPool(t), "French").
		Answer(context.Background(), testRequest, questions, sink)

	require.NoError(t, err)
	require.Len(t, answers, len(questions))
	for i, answer := range answers {
		assert.Equal(t, questions[i], answer.Question)
		assert.Equal(t, "answer to "+questions[i], answer.Answer)
		assert.Equal(t, "research-model", answer.Model)
		assert.Equal(t, directives.ResearchSystemPrompt("French"), answer.SystemPrompt)
	}

	responses := sink.OfType(domain.ResponseEventType)
	require.Len(t, responses, len(questions))
	var prompts []string
	for _, event := range responses {
		prompts = append(prompts, event.Data.(domain.AnsweredQuestion).Question)
	}
	assert.ElementsMatch(t, []string(questions), prompts)
	assert.NotEqual(t, questions[0], prompts[0])
}

func TestResearchAnswerer_SingleFailureIsFatal(t *testing.T) {
	questions := domain.NewQuestionSet(numberedQuestions("volcanoes"))
	researcher := &fakeCompleter{model: "research-model", respond: func(req outbound.CompletionRequest) (string, error) {
		if strings.HasPrefix(req.User, "3.") {
			return "", errUpstream
		}
		return "fine", nil
	}}

	answers, err := NewResearchAnswerer(newTestLogger(), researcher, newTestPool(t), "French").
		Answer(context.Background(), testRequest, questions, &recordingSink{})

	require.ErrorIs(t, err, errUpstream)
	assert.Nil(t, answers)
}

func TestResearchAnswerer_NoQuestions(t *testing.T) {
	researcher := &fakeCompleter{model: "m", respond: func(req outbound.CompletionRequest) (string, error) {
		t.Fatal("no call expected")
		return "", nil
	}}
	sink := &recordingSink{}

	answers, err := NewResearchAnswerer(newTestLogger(), researcher, newTestPool(t), "French").
		Answer(context.Background(), testRequest, domain.QuestionSet{}, sink)

	require.NoError(t, err)
	assert.Empty(t, answers)
	assert.Empty(t, sink.Events())
}
