package gin_interface

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/donovanhide/eventsource"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guillaumesimon/albert-news/domain"
	"github.com/guillaumesimon/albert-news/infrastructure/adapters"
	"github.com/guillaumesimon/albert-news/infrastructure/gin_interface/controllers"
	mockgenerator "github.com/guillaumesimon/albert-news/mock"
)

type wireEvent struct {
	Type   string `json:"type"`
	Data   any    `json:"data"`
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := adapters.NewZerologWrapperFrom(zerolog.Nop())
	pool, err := ants.NewPool(20)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	fixtures, err := mockgenerator.NewFixtureReader(logger, "").Read()
	require.NoError(t, err)
	fixtures.DelayMs = 0
	pipeline := mockgenerator.NewPipeline(fixtures, pool, "French", logger)

	return NewRouter(nil, controllers.NewPodcastController(logger, pipeline, 0))
}

func decodeStream(t *testing.T, body string) []wireEvent {
	t.Helper()
	decoder := eventsource.NewDecoder(strings.NewReader(body))
	var events []wireEvent
	for {
		ev, err := decoder.Decode()
		if err != nil {
			break
		}
		var event wireEvent
		require.NoError(t, sonic.UnmarshalString(ev.Data(), &event))
		events = append(events, event)
	}
	return events
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/api/getInfo", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
		assert.Equal(t, "Method "+method+" Not Allowed", rec.Body.String())
	}
}

func TestRouter_FullStream(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/getInfo",
		strings.NewReader(`{"topic":"French Revolution","country":"France","audience":"High school children"}`))
	req.Header.Set("Content-Type", "application/json")

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))
	events := decodeStream(t, rec.Body.String())
	require.NotEmpty(t, events)

	byType := map[string][]wireEvent{}
	for _, event := range events {
		byType[event.Type] = append(byType[event.Type], event)
	}

	assert.Equal(t, string(domain.EventStatusEventType), events[0].Type)
	assert.Equal(t, string(domain.CompleteEventType), events[len(events)-1].Type)
	assert.Len(t, byType[string(domain.CompleteEventType)], 1)
	assert.Empty(t, byType[string(domain.ErrorEventType)])

	status := byType[string(domain.EventStatusEventType)][0].Data.(map[string]any)
	assert.Equal(t, "past", status["simplifiedLabel"])

	questions := byType[string(domain.PromptsEventType)][0].Data.([]any)
	responses := byType[string(domain.ResponseEventType)]
	require.Len(t, responses, len(questions))
	answered := make([]any, 0, len(responses))
	for _, response := range responses {
		payload := response.Data.(map[string]any)
		answered = append(answered, payload["prompt"])
		assert.NotEmpty(t, payload["response"])
		assert.NotEmpty(t, payload["model"])
		assert.NotEmpty(t, payload["systemPrompt"])
	}
	assert.ElementsMatch(t, questions, answered)

	script := byType[string(domain.PodcastScriptEventType)]
	require.Len(t, script, 1)
	assert.Empty(t, script[0].Model)

	imagePrompts := byType[string(domain.ImagePromptsEventType)][0].Data.([]any)
	images := byType[string(domain.ImagesEventType)][0].Data.([]any)
	assert.Len(t, imagePrompts, 2)
	assert.Len(t, images, len(imagePrompts))
}
