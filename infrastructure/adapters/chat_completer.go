package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/config"
)

type chatCompleter struct {
	logger outbound.LoggerPort
	client openai.Client
	model  string
}

// NewChatCompleter talks to any OpenAI-compatible chat completion API. Client
// retries are disabled: a failed call is reported as is.
func NewChatCompleter(cfg *config.ChatCompletionConfig, logger outbound.LoggerPort) outbound.ChatCompletionPort {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.ApiKey),
		option.WithMaxRetries(0),
	}
	if cfg.ApiUrl != "" {
		opts = append(opts, option.WithBaseURL(cfg.ApiUrl))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &chatCompleter{
		logger: logger,
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (c *chatCompleter) Complete(ctx context.Context, req outbound.CompletionRequest) (outbound.CompletionResult, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: messages,
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		c.logger.ErrorWithFields(err, "Chat completion failed", map[string]interface{}{
			"purpose": req.Purpose,
			"model":   c.model,
		})
		return outbound.CompletionResult{}, fmt.Errorf("%s completion: %w", req.Purpose, err)
	}
	model := resp.Model
	if model == "" {
		model = c.model
	}

	// No choices reads as empty content; each stage decides what empty means.
	if len(resp.Choices) == 0 {
		c.logger.WarnWithFields("Chat completion returned no choices", map[string]interface{}{
			"purpose": req.Purpose,
			"model":   model,
		})
		return outbound.CompletionResult{Model: model}, nil
	}

	c.logger.DebugWithFields("Chat completion done", map[string]interface{}{
		"purpose":    req.Purpose,
		"model":      model,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return outbound.CompletionResult{
		Content: resp.Choices[0].Message.Content,
		Model:   model,
	}, nil
}

func (c *chatCompleter) Model() string {
	return c.model
}
