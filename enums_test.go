package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandTypeString(t *testing.T) {
	assert.Equal(t, "splice_insert", CommandTypeInsert.String())
	assert.Equal(t, "time_signal", CommandTypeTimeSignal.String())
	assert.Contains(t, CommandType(0x42).String(), "unknown")
}

func TestCommandTypeIsKnown(t *testing.T) {
	assert.True(t, CommandTypeNull.IsKnown())
	assert.True(t, CommandTypePrivate.IsKnown())
	assert.False(t, CommandType(0x01).IsKnown())
}

func TestUPIDTypeDescription(t *testing.T) {
	assert.Equal(t, "URI (Uniform Resource Identifier)", UPIDTypeURI.Description())
	assert.Equal(t, "Reserved/Unknown", UPIDType(0x7F).Description())
}

func TestSegmentationTypeDescription(t *testing.T) {
	assert.Equal(t, "Program Start", SegmentationTypeProgramStart.Description())
	assert.Contains(t, SegmentationType(0xEE).Description(), "Reserved/Unknown")
}

func TestSegmentationTypeHasSubSegment(t *testing.T) {
	assert.True(t, SegmentationTypeProviderPlacementOpportunityStart.HasSubSegment())
	assert.False(t, SegmentationTypeDistributorAdBlockStart.HasSubSegment())
	assert.False(t, SegmentationTypeProgramStart.HasSubSegment())
	assert.False(t, SegmentationTypeProviderPlacementOpportunityEnd.HasSubSegment())
}

func TestDeviceRestrictionsString(t *testing.T) {
	assert.Equal(t, "none", DeviceRestrictionsNone.String())
	assert.Equal(t, "restrict_both", DeviceRestrictionsRestrictBoth.String())
}

func TestDescriptorTagString(t *testing.T) {
	assert.Equal(t, "segmentation_descriptor", DescriptorTagSegmentation.String())
	assert.Contains(t, DescriptorTag(0x55).String(), "unknown")
}
