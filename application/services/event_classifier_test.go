package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillaumesimon/albert-news/application/directives"
	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

func fixedClock() time.Time {
	return time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)
}

func TestEventClassifier_Classify(t *testing.T) {
	cases := []struct {
		raw   string
		label domain.EventLabel
	}{
		{raw: "past", label: domain.PastEventLabel},
		{raw: "  Future\n", label: domain.FutureEventLabel},
		{raw: "NONE", label: domain.NoEventLabel},
		{raw: "", label: domain.NoEventLabel},
		{raw: "upcoming", label: domain.NoEventLabel},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			researcher := &fakeCompleter{model: "research-model", respond: func(req outbound.CompletionRequest) (string, error) {
				return "The French Revolution started in 1789, it is a past event.", nil
			}}
			categorizer := &fakeCompleter{model: "fast-model", respond: func(req outbound.CompletionRequest) (string, error) {
				return tc.raw, nil
			}}
			sink := &recordingSink{}

			classifier := NewEventClassifier(newTestLogger(), researcher, categorizer, fixedClock)
			status, err := classifier.Classify(context.Background(), testRequest, sink)

			require.NoError(t, err)
			assert.Equal(t, tc.label, status.SimplifiedLabel)
			assert.Contains(t, status.DetailedStatus, "1789")

			events := sink.Events()
			require.Len(t, events, 1)
			assert.Equal(t, domain.EventStatusEventType, events[0].Type)
			assert.Equal(t, status, events[0].Data)
			assert.Equal(t, "fast-model", events[0].Model)
			assert.Equal(t, directives.CategorizationInstruction, events[0].Prompt)
		})
	}
}

func TestEventClassifier_CascadesAnalysisIntoCategorization(t *testing.T) {
	researcher := &fakeCompleter{model: "research-model", respond: func(req outbound.CompletionRequest) (string, error) {
		return "analysis prose", nil
	}}
	categorizer := &fakeCompleter{model: "fast-model", respond: func(req outbound.CompletionRequest) (string, error) {
		return "past", nil
	}}

	_, err := NewEventClassifier(newTestLogger(), researcher, categorizer, fixedClock).
		Classify(context.Background(), testRequest, &recordingSink{})
	require.NoError(t, err)

	require.Len(t, researcher.Calls(), 1)
	assert.Contains(t, researcher.Calls()[0].User, "2024-10-01")
	assert.Contains(t, researcher.Calls()[0].User, testRequest.Topic)

	require.Len(t, categorizer.Calls(), 1)
	call := categorizer.Calls()[0]
	assert.Contains(t, call.User, "analysis prose")
	assert.Equal(t, 1, call.MaxTokens)
	require.NotNil(t, call.Temperature)
	assert.Zero(t, *call.Temperature)
}

func TestEventClassifier_FailuresAreFatal(t *testing.T) {
	ok := &fakeCompleter{model: "m", respond: func(req outbound.CompletionRequest) (string, error) { return "past", nil }}
	failing := &fakeCompleter{model: "m", respond: func(req outbound.CompletionRequest) (string, error) { return "", errUpstream }}

	for name, pair := range map[string][2]*fakeCompleter{
		"analysis":       {failing, ok},
		"categorization": {ok, failing},
	} {
		t.Run(name, func(t *testing.T) {
			sink := &recordingSink{}
			_, err := NewEventClassifier(newTestLogger(), pair[0], pair[1], fixedClock).
				Classify(context.Background(), testRequest, sink)

			require.ErrorIs(t, err, errUpstream)
			assert.Empty(t, sink.Events())
		})
	}
}
