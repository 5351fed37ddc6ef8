package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillaumesimon/albert-news/domain"
)

func testAnswers() []domain.AnsweredQuestion {
	return []domain.AnsweredQuestion{
		{Question: "q1", Answer: "First answer."},
		{Question: "q2", Answer: "Second answer."},
	}
}

func TestScriptWriter_Write(t *testing.T) {
	generator := &fakeScriptGenerator{tokens: []string{"Bonjour ", "et ", "bienvenue !"}}
	sink := &recordingSink{}

	script, err := NewScriptWriter(newTestLogger(), generator, "French").
		Write(context.Background(), testRequest, testAnswers(), sink)

	require.NoError(t, err)
	assert.Equal(t, "Bonjour et bienvenue !", script)
	assert.Contains(t, generator.prompt, "First answer. Second answer.")
	assert.Contains(t, generator.prompt, "aged 12 to 18")

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.PodcastScriptEventType, events[0].Type)
	assert.Equal(t, script, events[0].Data)
	assert.Empty(t, events[0].Model)
	assert.Empty(t, events[0].Prompt)
}

func TestScriptWriter_UnknownAudienceFallsBackToRawValue(t *testing.T) {
	generator := &fakeScriptGenerator{tokens: []string{"script"}}
	request := domain.NewPodcastRequest("req-2", "Volcanoes", "Japon", "Astronomy club")

	_, err := NewScriptWriter(newTestLogger(), generator, "French").
		Write(context.Background(), request, testAnswers(), &recordingSink{})

	require.NoError(t, err)
	assert.Contains(t, generator.prompt, "Astronomy club")
	assert.Contains(t, generator.prompt, "Japon")
}

func TestScriptWriter_StreamErrorIsFatal(t *testing.T) {
	generator := &fakeScriptGenerator{tokens: []string{"partial"}, err: errUpstream}
	sink := &recordingSink{}

	_, err := NewScriptWriter(newTestLogger(), generator, "French").
		Write(context.Background(), testRequest, testAnswers(), sink)

	require.ErrorIs(t, err, errUpstream)
	assert.Empty(t, sink.Events())
}

func TestScriptWriter_EmptyScriptIsStillEmitted(t *testing.T) {
	generator := &fakeScriptGenerator{tokens: []string{"  ", "\n"}}
	sink := &recordingSink{}

	script, err := NewScriptWriter(newTestLogger(), generator, "French").
		Write(context.Background(), testRequest, testAnswers(), sink)

	require.NoError(t, err)
	assert.Empty(t, script)
	events := sink.OfType(domain.PodcastScriptEventType)
	require.Len(t, events, 1)
	assert.Equal(t, "", events[0].Data)
}
