package outbound

import "context"

type ImageRendererPort interface {
	Render(ctx context.Context, prompt string) ([]string, error)
}
