package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advclock/internal/clock"
)

func TestFormat(t *testing.T) {
	hour := time.Duration(3600000000000)

	assert.Equal(t, "3600000000000", Format(hour, clock.Nanoseconds))
	assert.Equal(t, "3600", Format(hour, clock.Seconds))
	assert.Equal(t, "60", Format(hour, clock.Minutes))
	assert.Equal(t, "1", Format(hour, clock.Hours))
	assert.Equal(t, "3600000000000", Format(hour, clock.Precision(99)))
	assert.Equal(t, "0", Format(0, clock.Years))
}

func TestSingle(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Single(&buf, 1500*time.Millisecond, clock.Seconds))
	assert.Equal(t, "1.5 seconds\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Table(&buf, 90*time.Minute))

	output := buf.String()
	for _, precision := range clock.Precisions() {
		assert.Contains(t, output, precision.String())
	}
	assert.Contains(t, output, "5400000000000")
	assert.Contains(t, output, "1.5")
	assert.Equal(t, 1, strings.Count(output, "5400000000000"))
}
