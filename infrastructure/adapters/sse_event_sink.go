package adapters

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
	"github.com/guillaumesimon/albert-news/domain"
)

var ErrStreamClosed = errors.New("event stream already closed")

const keepAliveComment = ": keep-alive\n\n"

// SSEEventSink writes stream events as `data: <json>` frames and flushes
// after every frame. Writes are serialized so frames never interleave.
type SSEEventSink struct {
	logger outbound.LoggerPort
	writer gin.ResponseWriter

	mu     sync.Mutex
	closed bool
	stop   chan struct{}
}

func NewSSEEventSink(writer gin.ResponseWriter, logger outbound.LoggerPort) *SSEEventSink {
	return &SSEEventSink{
		logger: logger,
		writer: writer,
		stop:   make(chan struct{}),
	}
}

// Open commits the status and headers. With a positive keepAlive a comment
// line is written on that period until Close or until ctx is done. The ticker
// runs outside the stage pool.
func (s *SSEEventSink) Open(ctx context.Context, keepAlive time.Duration) {
	s.mu.Lock()
	header := s.writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache, no-transform")
	header.Set("Connection", "keep-alive")
	s.writer.WriteHeader(http.StatusOK)
	s.writer.WriteHeaderNow()
	s.writer.Flush()
	s.mu.Unlock()

	if keepAlive <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.write(keepAliveComment); err != nil {
					return
				}
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *SSEEventSink) Emit(event domain.StreamEvent) error {
	payload, err := sonic.MarshalString(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	if err = s.write("data: " + payload + "\n\n"); err != nil {
		s.logger.ErrorWithFields(err, "Failed to write event", map[string]interface{}{
			"type": event.Type,
		})
		return err
	}

	if event.Terminal() {
		s.Close()
	}
	return nil
}

// Close stops the keep-alive ticker. Emit fails afterwards.
func (s *SSEEventSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.stop)
}

func (s *SSEEventSink) write(frame string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStreamClosed
	}
	if _, err := s.writer.WriteString(frame); err != nil {
		return err
	}
	s.writer.Flush()
	return nil
}
