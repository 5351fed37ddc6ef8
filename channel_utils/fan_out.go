package channel_utils

import (
	"context"
	"fmt"
	"sync"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
)

// FanOut runs task once per input on the dispatcher and waits for all of
// them. Results keep the input order whatever the completion order. The first
// error cancels the context handed to the remaining tasks; FanOut still joins
// every submitted task before returning it.
func FanOut[In any, Out any](ctx context.Context, workerPool outbound.TaskDispatcher, inputs []In,
	task func(ctx context.Context, index int, input In) (Out, error)) ([]Out, error) {
	results := make([]Out, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, input := range inputs {
		index, in := i, input
		wg.Add(1)
		err := workerPool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(fmt.Errorf("task %d panicked: %v", index, r))
				}
			}()

			if newCtx.Err() != nil {
				fail(newCtx.Err())
				return
			}
			out, err := task(newCtx, index, in)
			if err != nil {
				fail(err)
				return
			}
			results[index] = out
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("submit task %d: %w", index, err))
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
