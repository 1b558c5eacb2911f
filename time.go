package scte35

import "time"

// TicksPerSecond is the SCTE-35 90 kHz clock rate that every PTS, duration,
// and pts_offset field is expressed in.
const TicksPerSecond = 90000

// Max33Bits is the largest value a 33-bit field (pts_adjustment, PTS times,
// break/segmentation durations expressed in the narrower fields, pts_offset)
// can hold.
const Max33Bits = uint64(1)<<33 - 1

// Max40Bits is the largest value the 40-bit segmentation_duration field can
// hold: about 1.10e12 ticks, roughly 141 days, even though the value is
// stored in a wider in-memory integer.
const Max40Bits = uint64(1)<<40 - 1

// TicksToDuration converts a 90 kHz tick count to a time.Duration.
func TicksToDuration(ticks uint64) time.Duration {
	whole := ticks / TicksPerSecond
	frac := ticks % TicksPerSecond
	return time.Duration(whole)*time.Second + time.Duration(frac)*time.Second/TicksPerSecond
}

// DurationToTicks converts a wall-clock duration to a 90 kHz tick count,
// truncating toward zero, and range-checks the result against max (33 or
// 40 bits depending on the field). time.Duration is signed, so a negative
// d is rejected as out of range.
func DurationToTicks(d time.Duration, max uint64) (uint64, error) {
	if d < 0 {
		return 0, outOfRange("duration", max)
	}
	seconds := int64(d / time.Second)
	nanos := int64(d % time.Second)
	ticks := uint64(seconds)*TicksPerSecond + uint64(nanos)*TicksPerSecond/1_000_000_000
	if ticks > max {
		return 0, outOfRange("duration", max)
	}
	return ticks, nil
}
