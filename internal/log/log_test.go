package log

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advclock/internal/clock"
)

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("WaRn")
	assert.True(t, ok)
	assert.Equal(t, Warn, level)

	level, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, Error, level)
}

func TestLevelEnables(t *testing.T) {
	assert.True(t, Debug.Enables(Error))
	assert.True(t, Info.Enables(Info))
	assert.False(t, Info.Enables(Debug))
	assert.False(t, Error.Enables(Warn))
}

func TestConsoleLoggerFormat(t *testing.T) {
	source := clock.NewManualSource(time.Unix(0, 0))
	epoch := clock.NewEpoch(source)
	source.Advance(1500 * time.Millisecond)

	var buf bytes.Buffer
	logger := NewWriterLogger(Info, &buf, epoch)

	logger.Debug("test: hidden")
	logger.Info("test: visible: value=%d", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[+1.500000s] INFO\ttest: visible: value=7")
	assert.Equal(t, Info, logger.Level())
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	logger.Error("test: discarded")
	assert.Equal(t, Error, logger.Level())
}
