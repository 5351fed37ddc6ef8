package mock_generator

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/bytedance/sonic"

	"github.com/guillaumesimon/albert-news/application/ports/outbound"
)

//go:embed fixtures.json
var embeddedFixtures []byte

// Fixtures is one canned pipeline run.
type Fixtures struct {
	DelayMs        int       `json:"delayMs"`
	DetailedStatus string    `json:"detailedStatus"`
	Label          string    `json:"label"`
	Questions      string    `json:"questions"`
	Answers        []string  `json:"answers"`
	Script         string    `json:"script"`
	ImagePrompts   [2]string `json:"imagePrompts"`
	Images         [2]string `json:"images"`
}

func (f Fixtures) Delay() time.Duration {
	return time.Duration(f.DelayMs) * time.Millisecond
}

type FixtureReader interface {
	Read() (Fixtures, error)
}

type fixtureReader struct {
	logger   outbound.LoggerPort
	fileName string
}

// NewFixtureReader reads fileName, or the embedded fixtures when fileName is
// empty.
func NewFixtureReader(logger outbound.LoggerPort, fileName string) FixtureReader {
	return &fixtureReader{
		logger:   logger,
		fileName: fileName,
	}
}

func (f *fixtureReader) Read() (Fixtures, error) {
	raw := embeddedFixtures
	if f.fileName != "" {
		content, err := os.ReadFile(f.fileName)
		if err != nil {
			f.logger.Error(err, "failed to read fixtures file")
			return Fixtures{}, err
		}
		raw = content
	}

	var fixtures Fixtures
	if err := sonic.Unmarshal(raw, &fixtures); err != nil {
		f.logger.Error(err, "failed to decode fixtures")
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return fixtures, nil
}
