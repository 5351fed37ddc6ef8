package outbound

import "context"

type GeneratePodcastScriptRequest struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// PodcastScriptGeneratorPort streams the script token by token. The error
// channel carries at most one error.
type PodcastScriptGeneratorPort interface {
	Generate(ctx context.Context, req GeneratePodcastScriptRequest) (<-chan string, <-chan error)
	Model() string
}
