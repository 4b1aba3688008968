package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageDuration(t *testing.T) {
	accumulator := NewDurationAccumulator()
	accumulator.UpdateAccumulator(100)
	accumulator.UpdateAccumulator(200)
	accumulator.UpdateAccumulator(600)

	average, err := accumulator.GetAverageDuration()
	require.NoError(t, err)
	assert.Equal(t, 300.0, average)
	assert.Equal(t, 900.0, accumulator.TotalDuration)
}

func TestAverageDurationEmpty(t *testing.T) {
	_, err := NewDurationAccumulator().GetAverageDuration()
	assert.ErrorIs(t, err, ErrEmptyAccumulator)
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  TimeParts
	}{
		{name: "zero", total: 0, want: TimeParts{}},
		{name: "seconds only", total: 59, want: TimeParts{Seconds: 59}},
		{name: "one of each", total: 86400 + 3600 + 60 + 1, want: TimeParts{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}},
		{name: "just under a day", total: 86399, want: TimeParts{Hours: 23, Minutes: 59, Seconds: 59}},
		{name: "fraction is truncated", total: 3661.9, want: TimeParts{Hours: 1, Minutes: 1, Seconds: 1}},
		{name: "many days", total: 10*86400 + 7, want: TimeParts{Days: 10, Seconds: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decompose(tt.total))
		})
	}
}

func TestDecomposeIsExact(t *testing.T) {
	for _, total := range []int{0, 1, 59, 60, 3599, 3600, 86399, 86400, 123456, 9876543} {
		parts := Decompose(float64(total))

		assert.Equal(t, total, parts.Days*86400+parts.Hours*3600+parts.Minutes*60+parts.Seconds)
		assert.Less(t, parts.Hours, 24)
		assert.Less(t, parts.Minutes, 60)
		assert.Less(t, parts.Seconds, 60)
	}
}

func TestDecomposeMinutes(t *testing.T) {
	assert.Equal(t, TimeParts{Minutes: 15, Seconds: 32}, DecomposeMinutes(932.7))
	assert.Equal(t, TimeParts{Minutes: 0, Seconds: 45}, DecomposeMinutes(45))
	assert.Equal(t, TimeParts{Minutes: 120}, DecomposeMinutes(7200))
}
