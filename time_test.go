package scte35

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicksToDuration(t *testing.T) {
	assert.Equal(t, time.Second, TicksToDuration(TicksPerSecond))
	assert.Equal(t, 500*time.Millisecond, TicksToDuration(TicksPerSecond/2))
	assert.Equal(t, time.Duration(0), TicksToDuration(0))
}

func TestDurationToTicks(t *testing.T) {
	ticks, err := DurationToTicks(2*time.Second, Max33Bits)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2*TicksPerSecond), ticks)

	_, err = DurationToTicks(-time.Second, Max33Bits)
	assert.Error(t, err)

	_, err = DurationToTicks(time.Hour*24*365, Max33Bits)
	assert.Error(t, err)
}

func TestDurationToTicksRejectsOverflow(t *testing.T) {
	hugeMax := uint64(1000)
	_, err := DurationToTicks(time.Hour, hugeMax)
	assert.Error(t, err)
}

func TestTicksDurationRoundTrip(t *testing.T) {
	const ticks = uint64(12345678)
	d := TicksToDuration(ticks)
	back, err := DurationToTicks(d, Max33Bits)
	assert.NoError(t, err)
	assert.Equal(t, ticks, back)
}
