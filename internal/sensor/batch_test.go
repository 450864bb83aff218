package sensor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBatch = `
- type: SWM
  data: [720, 1, 80, 25, 40]
- type: RUN
  data: [15000, 1, 75]
- type: WLK
  data: [9000, 1, 75, 180]
`

// TestReadBatch verifies reading a YAML batch into packages in order.
func TestReadBatch(t *testing.T) {
	packages, err := ReadBatch(strings.NewReader(sampleBatch))
	require.NoError(t, err)
	require.Len(t, packages, 3)

	assert.Equal(t, CodeSwimming, packages[0].Code)
	assert.Equal(t, []float64{720, 1, 80, 25, 40}, packages[0].Values)
	assert.Equal(t, CodeRunning, packages[1].Code)
	assert.Equal(t, CodeWalking, packages[2].Code)
	assert.NotEmpty(t, packages[2].ID)
}

// TestReadBatchMissingType verifies that an entry without a workout type is
// rejected with its index.
func TestReadBatchMissingType(t *testing.T) {
	_, err := ReadBatch(strings.NewReader("- data: [15000, 1, 75]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 0")
}

// TestReadBatchMalformed verifies that invalid YAML is reported as a parse
// failure rather than passed through empty.
func TestReadBatchMalformed(t *testing.T) {
	_, err := ReadBatch(strings.NewReader("type: [unclosed"))
	assert.Error(t, err)
}

// TestDetectFormat verifies file extension based format detection.
func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatBatch, DetectFormat("packages.yaml"))
	assert.Equal(t, FormatBatch, DetectFormat("PACKAGES.YML"))
	assert.Equal(t, FormatStream, DetectFormat("packages.txt"))
	assert.Equal(t, FormatStream, DetectFormat("stream"))
}
