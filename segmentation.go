package scte35

// parseSegmentationDescriptor decodes a segmentation_descriptor() body.
// bodyEndBits is the bit position one past the descriptor's declared
// length (from descriptor_length), used to detect a sub-segment-capable
// type_id whose descriptor was authored without the trailing
// sub_segment_num/sub_segments_expected bytes.
func parseSegmentationDescriptor(r *Reader, bodyEndBits int64) (*SegmentationDescriptor, error) {
	d := &SegmentationDescriptor{}
	d.SegmentationEventID = uint32(r.ReadBits(32))
	d.SegmentationEventCancelIndicator = r.ReadBool()
	d.SegmentationEventIDComplianceFlag = r.ReadBool()
	r.ReadBits(6) // reserved
	if d.SegmentationEventCancelIndicator {
		return d, r.Err()
	}

	d.ProgramSegmentationFlag = r.ReadBool()
	d.SegmentationDurationFlag = r.ReadBool()
	d.DeliveryNotRestrictedFlag = r.ReadBool()
	if !d.DeliveryNotRestrictedFlag {
		d.WebDeliveryAllowedFlag = r.ReadBool()
		d.NoRegionalBlackoutFlag = r.ReadBool()
		d.ArchiveAllowedFlag = r.ReadBool()
		d.DeviceRestrictions = DeviceRestrictions(r.ReadBits(2))
	} else {
		r.ReadBits(5) // reserved
	}

	if !d.ProgramSegmentationFlag {
		count := int(r.ReadBits(8))
		d.Components = make([]SegmentationComponent, count)
		for i := range d.Components {
			d.Components[i].ComponentTag = uint8(r.ReadBits(8))
			r.ReadBits(7) // reserved
			d.Components[i].PTSOffset = r.ReadBits(33)
		}
	}

	if d.SegmentationDurationFlag {
		d.SegmentationDuration = r.ReadBits(40)
	}

	d.UPIDType = UPIDType(r.ReadBits(8))
	upidLen := int(r.ReadBits(8))
	u, err := parseUPID(r, d.UPIDType, upidLen)
	if err != nil {
		return nil, err
	}
	d.UPID = u

	d.SegmentationTypeID = SegmentationType(r.ReadBits(8))
	d.SegmentNum = uint8(r.ReadBits(8))
	d.SegmentsExpected = uint8(r.ReadBits(8))

	// sub_segment_num/sub_segments_expected are present for a
	// sub-segment-capable type_id only if the descriptor's declared
	// length leaves room for them; some encoders omit the trailing pair
	// even on a type that nominally carries it.
	if d.SegmentationTypeID.HasSubSegment() && r.PositionBits()+16 <= bodyEndBits {
		n := uint8(r.ReadBits(8))
		e := uint8(r.ReadBits(8))
		d.SubSegmentNum = &n
		d.SubSegmentsExpected = &e
	}

	return d, r.Err()
}

func writeSegmentationDescriptor(w *Writer, d *SegmentationDescriptor) {
	w.WriteBits(uint64(d.SegmentationEventID), 32)
	w.WriteBool(d.SegmentationEventCancelIndicator)
	w.WriteBool(d.SegmentationEventIDComplianceFlag)
	w.WriteBits(0x3F, 6)
	if d.SegmentationEventCancelIndicator {
		return
	}

	w.WriteBool(d.ProgramSegmentationFlag)
	w.WriteBool(d.SegmentationDurationFlag)
	w.WriteBool(d.DeliveryNotRestrictedFlag)
	if !d.DeliveryNotRestrictedFlag {
		w.WriteBool(d.WebDeliveryAllowedFlag)
		w.WriteBool(d.NoRegionalBlackoutFlag)
		w.WriteBool(d.ArchiveAllowedFlag)
		w.WriteBits(uint64(d.DeviceRestrictions), 2)
	} else {
		w.WriteBits(0x1F, 5)
	}

	if !d.ProgramSegmentationFlag {
		w.WriteBits(uint64(len(d.Components)), 8)
		for _, c := range d.Components {
			w.WriteBits(uint64(c.ComponentTag), 8)
			w.WriteBits(0x7F, 7)
			w.WriteBits(c.PTSOffset&Max33Bits, 33)
		}
	}

	if d.SegmentationDurationFlag {
		w.WriteBits(d.SegmentationDuration&Max40Bits, 40)
	}

	w.WriteBits(uint64(d.UPIDType), 8)
	upidBytes := encodeUPID(d.UPID)
	w.WriteBits(uint64(len(upidBytes)), 8)
	w.WriteBytes(upidBytes)

	w.WriteBits(uint64(d.SegmentationTypeID), 8)
	w.WriteBits(uint64(d.SegmentNum), 8)
	w.WriteBits(uint64(d.SegmentsExpected), 8)

	if d.SegmentationTypeID.HasSubSegment() {
		if d.SubSegmentNum != nil {
			w.WriteBits(uint64(*d.SubSegmentNum), 8)
		}
		if d.SubSegmentsExpected != nil {
			w.WriteBits(uint64(*d.SubSegmentsExpected), 8)
		}
	}
}
