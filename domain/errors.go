package domain

import "errors"

const UnexpectedErrorMessage = "An unexpected error occurred"

var (
	ErrMalformedRenderOutput = errors.New("unexpected output format from image renderer")
	ErrPredictionFailed      = errors.New("image prediction did not succeed")
	ErrAudienceRequired      = errors.New("please select an audience")
	ErrTopicRequired         = errors.New("please enter a topic")
)

// ErrorMessage is the text sent in an error frame.
func ErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return UnexpectedErrorMessage
	}
	return err.Error()
}
