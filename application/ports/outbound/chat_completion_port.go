package outbound

import "context"

type CompletionPurpose string

const (
	EventAnalysisPurpose  CompletionPurpose = "event_analysis"
	CategorizationPurpose CompletionPurpose = "categorization"
	QuestionsPurpose      CompletionPurpose = "questions"
	AnswerPurpose         CompletionPurpose = "answer"
	ImagePromptPurpose    CompletionPurpose = "image_prompt"
)

type CompletionRequest struct {
	Purpose CompletionPurpose
	System  string
	User    string
	// Temperature is left to the provider default when nil.
	Temperature *float64
	MaxTokens   int
}

type CompletionResult struct {
	Content string
	Model   string
}

type ChatCompletionPort interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
	Model() string
}

func Temperature(t float64) *float64 {
	return &t
}
