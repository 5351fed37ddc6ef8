package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/donovanhide/eventsource"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/config"
)

const DoneSignal = "[DONE]"

type chatStreamRequest struct {
	Stream      bool                `json:"stream"`
	Model       string              `json:"model"`
	Messages    []chatStreamMessage `json:"messages"`
	Temperature float64             `json:"temperature"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type chatStreamMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatStreamChunk struct {
	Choices []chatStreamChoice `json:"choices"`
}

type chatStreamChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

type podcastScriptGenerator struct {
	logger     outbound.LoggerPort
	config     *config.ChatCompletionConfig
	workerPool outbound.TaskDispatcher
}

func NewPodcastScriptGenerator(cfg *config.ChatCompletionConfig, workerPool outbound.TaskDispatcher,
	logger outbound.LoggerPort) outbound.PodcastScriptGeneratorPort {
	return &podcastScriptGenerator{
		logger:     logger,
		config:     cfg,
		workerPool: workerPool,
	}
}

func (s *podcastScriptGenerator) Model() string {
	return s.config.Model
}

// Generate streams the completion tokens. Both channels are closed when the
// stream ends; a failure is sent on the error channel before closing.
func (s *podcastScriptGenerator) Generate(ctx context.Context, req outbound.GeneratePodcastScriptRequest) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	err := s.workerPool.Submit(func() {
		defer close(out)
		defer close(errCh)

		httpReq, err := s.createRequest(ctx, req)
		if err != nil {
			s.logger.Error(err, "Failed to create HTTP request for script stream")
			errCh <- err
			return
		}

		stream, err := eventsource.SubscribeWithRequest("", httpReq)
		if err != nil {
			s.logger.Error(err, "Failed to subscribe to script stream")
			errCh <- fmt.Errorf("script stream: %w", err)
			return
		}
		defer stream.Close()

		for {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case ev, ok := <-stream.Events:
				if !ok {
					return
				}
				if ev.Data() == DoneSignal {
					s.logger.Debug("Script stream done")
					return
				}
				token, err := s.extractPayload(ev)
				if err != nil {
					errCh <- err
					return
				}
				if token == "" {
					continue
				}
				select {
				case out <- token:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			case err, ok := <-stream.Errors:
				if !ok || err == io.EOF {
					s.logger.Debug("Script stream closed")
					return
				}
				s.logger.Error(err, "Error occurred during script streaming")
				errCh <- fmt.Errorf("script stream: %w", err)
				return
			}
		}
	})
	if err != nil {
		s.logger.Error(err, "Failed to submit task to worker pool")
		errCh <- err
		close(errCh)
		close(out)
	}

	return out, errCh
}

func (s *podcastScriptGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunk chatStreamChunk
	if err := sonic.UnmarshalString(event.Data(), &chunk); err != nil {
		s.logger.Error(err, "Failed to unmarshal event data")
		return "", fmt.Errorf("script stream chunk: %w", err)
	}
	if len(chunk.Choices) == 0 {
		return "", nil
	}
	return chunk.Choices[0].Delta.Content, nil
}

func (s *podcastScriptGenerator) createRequest(ctx context.Context, req outbound.GeneratePodcastScriptRequest) (*http.Request, error) {
	payload := chatStreamRequest{
		Stream:      true,
		Model:       s.config.Model,
		Messages:    []chatStreamMessage{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	payloadBytes, err := sonic.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSuffix(s.config.ApiUrl, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.config.ApiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
