package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentationDescriptorRoundTrip(t *testing.T) {
	in := &SegmentationDescriptor{
		SegmentationEventID:       1,
		ProgramSegmentationFlag:   true,
		SegmentationDurationFlag:  true,
		SegmentationDuration:      900000,
		DeliveryNotRestrictedFlag: false,
		WebDeliveryAllowedFlag:    true,
		NoRegionalBlackoutFlag:    true,
		ArchiveAllowedFlag:        true,
		DeviceRestrictions:        DeviceRestrictionsNone,
		UPIDType:                  UPIDTypeAdID,
		UPID:                      UPID{Type: UPIDTypeAdID, Raw: []byte("ABCD1234567H")},
		SegmentationTypeID:        SegmentationTypeProviderPlacementOpportunityStart,
		SegmentNum:                1,
		SegmentsExpected:          1,
	}
	subNum, subExp := uint8(1), uint8(2)
	in.SubSegmentNum = &subNum
	in.SubSegmentsExpected = &subExp

	w := NewWriter()
	writeSegmentationDescriptor(w, in)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSegmentationDescriptor(r, int64(len(buf))*8)
	require.NoError(t, err)

	assert.Equal(t, in.SegmentationEventID, out.SegmentationEventID)
	assert.Equal(t, in.SegmentationDuration, out.SegmentationDuration)
	assert.Equal(t, in.UPID.Raw, out.UPID.Raw)
	assert.Equal(t, in.SegmentationTypeID, out.SegmentationTypeID)
	require.NotNil(t, out.SubSegmentNum)
	assert.Equal(t, subNum, *out.SubSegmentNum)
}

func TestSegmentationDescriptorCancelRoundTrip(t *testing.T) {
	in := &SegmentationDescriptor{SegmentationEventID: 5, SegmentationEventCancelIndicator: true}
	w := NewWriter()
	writeSegmentationDescriptor(w, in)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSegmentationDescriptor(r, int64(len(buf))*8)
	require.NoError(t, err)
	assert.True(t, out.SegmentationEventCancelIndicator)
	assert.False(t, out.ProgramSegmentationFlag)
}

func TestSegmentationDescriptorWithComponentsRoundTrip(t *testing.T) {
	in := &SegmentationDescriptor{
		SegmentationEventID:       7,
		ProgramSegmentationFlag:   false,
		DeliveryNotRestrictedFlag: true,
		Components: []SegmentationComponent{
			{ComponentTag: 1, PTSOffset: 1000},
			{ComponentTag: 2, PTSOffset: 2000},
		},
		UPIDType:           UPIDTypeNotUsed,
		UPID:               UPID{Type: UPIDTypeNotUsed},
		SegmentationTypeID: SegmentationTypeProgramStart,
	}
	w := NewWriter()
	writeSegmentationDescriptor(w, in)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSegmentationDescriptor(r, int64(len(buf))*8)
	require.NoError(t, err)
	require.Len(t, out.Components, 2)
	assert.Equal(t, uint64(2000), out.Components[1].PTSOffset)
	assert.Nil(t, out.SubSegmentNum)
}
