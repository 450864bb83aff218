package sensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meltforce/fittrack/internal/workout"
)

// TestDecodeSwimming verifies that an SWM package yields a swimming workout
// with the pool values wired through.
func TestDecodeSwimming(t *testing.T) {
	w, err := Decode(Package{Code: CodeSwimming, Values: []float64{720, 1, 80, 25, 40}})
	require.NoError(t, err)

	sw, ok := w.(*workout.Swimming)
	require.True(t, ok, "want *workout.Swimming, got %T", w)
	assert.Equal(t, 720, sw.Action)
	assert.Equal(t, 25, sw.PoolLenM)
	assert.Equal(t, 40, sw.PoolLaps)
	assert.InDelta(t, 1.0, sw.MeanSpeedKmh(), 1e-9)
}

// TestDecodeRunning verifies that a RUN package yields a running workout.
func TestDecodeRunning(t *testing.T) {
	w, err := Decode(Package{Code: CodeRunning, Values: []float64{15000, 1, 75}})
	require.NoError(t, err)

	r, ok := w.(*workout.Running)
	require.True(t, ok, "want *workout.Running, got %T", w)
	assert.Equal(t, 15000, r.Action)
	assert.InDelta(t, 75, r.WeightKg, 1e-9)
}

// TestDecodeWalking verifies that a WLK package yields a sports walking
// workout with the height carried over.
func TestDecodeWalking(t *testing.T) {
	w, err := Decode(Package{Code: CodeWalking, Values: []float64{9000, 1, 75, 180}})
	require.NoError(t, err)

	sw, ok := w.(*workout.SportsWalking)
	require.True(t, ok, "want *workout.SportsWalking, got %T", w)
	assert.Equal(t, 9000, sw.Action)
	assert.InDelta(t, 180, sw.HeightCm, 1e-9)
}

// TestDecodeUnknownCode verifies that an unrecognized code is rejected with
// the sentinel error and no workout.
func TestDecodeUnknownCode(t *testing.T) {
	w, err := Decode(Package{Code: "XYZ", Values: []float64{1, 2, 3}})
	assert.ErrorIs(t, err, ErrUnknownCode)
	assert.Nil(t, w)
}

// TestDecodeArityMismatch verifies that a wrong value count is rejected
// before construction, for every code, with the expected and actual counts
// reported.
func TestDecodeArityMismatch(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		values []float64
		want   int
	}{
		{"swimming short", CodeSwimming, []float64{720, 1, 80, 25}, 5},
		{"swimming long", CodeSwimming, []float64{720, 1, 80, 25, 40, 7}, 5},
		{"running short", CodeRunning, []float64{15000, 1}, 3},
		{"running long", CodeRunning, []float64{15000, 1, 75, 9}, 3},
		{"walking short", CodeWalking, []float64{9000, 1, 75}, 4},
		{"walking empty", CodeWalking, nil, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Decode(Package{Code: tt.code, Values: tt.values})
			assert.Nil(t, w)
			require.ErrorIs(t, err, ErrArity)

			var arityErr *ArityError
			require.True(t, errors.As(err, &arityErr))
			assert.Equal(t, tt.code, arityErr.Code)
			assert.Equal(t, tt.want, arityErr.Want)
			assert.Equal(t, len(tt.values), arityErr.Got)
		})
	}
}

// TestArityErrorMessage pins the error text down so log lines stay readable.
func TestArityErrorMessage(t *testing.T) {
	err := &ArityError{Code: CodeRunning, Want: 3, Got: 2}
	assert.Equal(t, "RUN expects 3 values, got 2", err.Error())
}

// TestDecodeInvalidValues verifies that construction failures pass through
// the dispatcher unchanged.
func TestDecodeInvalidValues(t *testing.T) {
	w, err := Decode(Package{Code: CodeRunning, Values: []float64{15000, 0, 75}})
	assert.ErrorIs(t, err, workout.ErrInvalidDuration)
	assert.Nil(t, w)

	w, err = Decode(Package{Code: CodeWalking, Values: []float64{9000, 1, 75, 0}})
	assert.ErrorIs(t, err, workout.ErrInvalidHeight)
	assert.Nil(t, w)
}
