package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertBuilderImmediate(t *testing.T) {
	cmd, err := NewInsertBuilder(100).
		OutOfNetwork(true).
		Immediate().
		Duration(30*TicksPerSecond, true).
		Program(1, 0, 0).
		Build()
	require.NoError(t, err)
	require.NotNil(t, cmd.Insert)
	assert.True(t, cmd.Insert.SpliceImmediateFlag)
	assert.Nil(t, cmd.Insert.SpliceTime)
	assert.NotNil(t, cmd.Insert.BreakDuration)
}

func TestInsertBuilderRequiresSpliceTimeWhenNotImmediate(t *testing.T) {
	_, err := NewInsertBuilder(100).Build()
	assert.Error(t, err)
}

func TestInsertBuilderSingleUse(t *testing.T) {
	b := NewInsertBuilder(1).Immediate()
	_, err := b.Build()
	require.NoError(t, err)
	_, err = b.Build()
	assert.Error(t, err)
}

func TestSegmentationBuilderBuild(t *testing.T) {
	desc, err := NewSegmentationBuilder(42, SegmentationTypeProviderAdvertisementStart).
		UPID(UPIDTypeAdID, UPID{Raw: []byte("ABCD1234567H")}).
		Duration(60*TicksPerSecond).
		Segment(1, 1).
		Build()
	require.NoError(t, err)
	require.NotNil(t, desc.Segmentation)
	assert.Equal(t, uint32(42), desc.Segmentation.SegmentationEventID)
	assert.True(t, desc.Segmentation.SegmentationDurationFlag)
}

func TestSegmentationBuilderRequiresSubSegment(t *testing.T) {
	_, err := NewSegmentationBuilder(1, SegmentationTypeProviderPlacementOpportunityStart).
		UPID(UPIDTypeAdID, UPID{Raw: []byte("ABCD1234567H")}).
		Build()
	assert.Error(t, err)
}

func TestSectionBuilderRoundTrip(t *testing.T) {
	cmd, err := NewInsertBuilder(7).Immediate().Build()
	require.NoError(t, err)

	section, err := NewSectionBuilder().Command(cmd).Build()
	require.NoError(t, err)

	buf, err := Encode(section)
	require.NoError(t, err)

	decoded, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), decoded.Command.Insert.SpliceEventID)
}

func TestSectionBuilderRequiresCommand(t *testing.T) {
	_, err := NewSectionBuilder().Build()
	assert.Error(t, err)
}
