package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEventLabel(t *testing.T) {
	cases := map[string]EventLabel{
		"past":       PastEventLabel,
		" PAST\n":    PastEventLabel,
		"Future":     FutureEventLabel,
		"none":       NoEventLabel,
		"":           NoEventLabel,
		"past event": NoEventLabel,
		"passé":      NoEventLabel,
	}

	for raw, expected := range cases {
		assert.Equal(t, expected, ParseEventLabel(raw), raw)
	}
}

func TestNewQuestionSet(t *testing.T) {
	raw := "1. First?\n\n  2. Second?  \r\n1. First?\n3. Third?"

	assert.Equal(t, QuestionSet{"1. First?", "2. Second?", "3. Third?"}, NewQuestionSet(raw))
	assert.Empty(t, NewQuestionSet("\n \n"))
}

func TestNewPendingImages(t *testing.T) {
	images := NewPendingImages(ImagePromptSet{"a", "b"})

	assert.Len(t, images, 2)
	for i, image := range images {
		assert.True(t, image.Pending())
		assert.Equal(t, []string{"a", "b"}[i], image.Prompt)
	}
}

func TestStreamEvent_Terminal(t *testing.T) {
	assert.True(t, NewCompleteEvent().Terminal())
	assert.True(t, NewErrorEvent("x").Terminal())
	assert.False(t, NewPodcastScriptEvent("x").Terminal())
}

func TestNewImagesEvent_CarriesURLsInOrder(t *testing.T) {
	event := NewImagesEvent([]RenderedImage{{Prompt: "a", URL: "u1"}, {Prompt: "b", URL: "u2"}})

	assert.Equal(t, ImagesEventType, event.Type)
	assert.Equal(t, []string{"u1", "u2"}, event.Data)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, UnexpectedErrorMessage, ErrorMessage(nil))
	assert.Equal(t, UnexpectedErrorMessage, ErrorMessage(errors.New("")))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
}

func TestPodcastPackage_AnswerTexts(t *testing.T) {
	pkg := PodcastPackage{Answers: []AnsweredQuestion{{Answer: "one"}, {Answer: "two"}}}

	assert.Equal(t, []string{"one", "two"}, pkg.AnswerTexts())
}
