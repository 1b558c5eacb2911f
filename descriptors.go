package scte35

// identifierCUEI is the 4-byte "CUEI" ASCII identifier every SCTE-35
// splice_descriptor() begins its private payload with.
const identifierCUEI = 0x43554549

func parseSpliceDescriptors(r *Reader, loopLenBytes int) ([]SpliceDescriptor, error) {
	var out []SpliceDescriptor
	end := r.PositionBits() + int64(loopLenBytes)*8
	for r.PositionBits() < end {
		d, err := parseSpliceDescriptor(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, r.Err()
}

func parseSpliceDescriptor(r *Reader) (*SpliceDescriptor, error) {
	d := &SpliceDescriptor{}
	tag := uint8(r.ReadBits(8))
	d.Tag = DescriptorTag(tag)
	length := int(r.ReadBits(8))
	bodyStart := r.PositionBits()
	bodyEndBits := bodyStart + int64(length)*8

	d.Identifier = uint32(r.ReadBits(32))
	remaining := int(length) - 4
	if remaining < 0 {
		return nil, ErrTruncated
	}
	if d.Identifier != identifierCUEI {
		d.UnknownBytes = r.ReadBytes(remaining)
		return d, r.Err()
	}

	switch d.Tag {
	case DescriptorTagAvail:
		a, err := parseAvailDescriptor(r)
		if err != nil {
			return nil, err
		}
		d.Avail = a
	case DescriptorTagDTMF:
		dt, err := parseDTMFDescriptor(r)
		if err != nil {
			return nil, err
		}
		d.DTMF = dt
	case DescriptorTagSegmentation:
		s, err := parseSegmentationDescriptor(r, bodyEndBits)
		if err != nil {
			return nil, err
		}
		d.Segmentation = s
	case DescriptorTagTime:
		tm, err := parseTimeDescriptor(r)
		if err != nil {
			return nil, err
		}
		d.Time = tm
	case DescriptorTagAudio:
		au, err := parseAudioDescriptor(r)
		if err != nil {
			return nil, err
		}
		d.Audio = au
	default:
		// Unrecognized tag under the CUEI identifier: the remaining body
		// bytes are captured below as UnknownBytes.
		logger.Debugf("scte35: unlisted descriptor tag 0x%x", tag)
	}

	if rem := bodyEndBits - r.PositionBits(); rem > 0 {
		d.UnknownBytes = append(d.UnknownBytes, r.ReadBytes(int(rem/8))...)
	}
	return d, r.Err()
}

func writeSpliceDescriptor(w *Writer, d *SpliceDescriptor) {
	w.WriteBits(uint64(d.Tag), 8)

	inner := NewWriter()
	inner.WriteBits(uint64(d.Identifier), 32)
	switch {
	case d.Avail != nil:
		writeAvailDescriptor(inner, d.Avail)
	case d.DTMF != nil:
		writeDTMFDescriptor(inner, d.DTMF)
	case d.Segmentation != nil:
		writeSegmentationDescriptor(inner, d.Segmentation)
	case d.Time != nil:
		writeTimeDescriptor(inner, d.Time)
	case d.Audio != nil:
		writeAudioDescriptor(inner, d.Audio)
	default:
		inner.WriteBytes(d.UnknownBytes)
	}
	body, err := inner.Bytes()
	if err != nil {
		w.w.TryError = err
		return
	}
	w.WriteBits(uint64(len(body)), 8)
	w.WriteBytes(body)
}

func parseAvailDescriptor(r *Reader) (*AvailDescriptor, error) {
	return &AvailDescriptor{ProviderAvailID: uint32(r.ReadBits(32))}, r.Err()
}

func writeAvailDescriptor(w *Writer, a *AvailDescriptor) {
	w.WriteBits(uint64(a.ProviderAvailID), 32)
}

func parseDTMFDescriptor(r *Reader) (*DTMFDescriptor, error) {
	d := &DTMFDescriptor{}
	d.Preroll = uint8(r.ReadBits(8))
	count := int(r.ReadBits(3))
	r.ReadBits(5) // reserved
	d.DTMFChars = r.ReadBytes(count)
	return d, r.Err()
}

func writeDTMFDescriptor(w *Writer, d *DTMFDescriptor) {
	w.WriteBits(uint64(d.Preroll), 8)
	w.WriteBits(uint64(len(d.DTMFChars)), 3)
	w.WriteBits(0x1F, 5)
	w.WriteBytes(d.DTMFChars)
}

func parseTimeDescriptor(r *Reader) (*TimeDescriptor, error) {
	t := &TimeDescriptor{}
	t.TAISeconds = r.ReadBits(48)
	t.TAINs = uint32(r.ReadBits(32))
	t.UTCOffset = uint16(r.ReadBits(16))
	return t, r.Err()
}

func writeTimeDescriptor(w *Writer, t *TimeDescriptor) {
	w.WriteBits(t.TAISeconds, 48)
	w.WriteBits(uint64(t.TAINs), 32)
	w.WriteBits(uint64(t.UTCOffset), 16)
}

func parseAudioDescriptor(r *Reader) (*AudioDescriptor, error) {
	a := &AudioDescriptor{}
	count := int(r.ReadBits(4))
	r.ReadBits(4) // reserved
	a.Components = make([]AudioComponent, count)
	for i := range a.Components {
		c := &a.Components[i]
		c.ComponentTag = uint8(r.ReadBits(8))
		iso := r.ReadBits(24)
		c.ISOCode = [3]byte{byte(iso >> 16), byte(iso >> 8), byte(iso)}
		c.BitStreamMode = uint8(r.ReadBits(3))
		c.NumChannels = uint8(r.ReadBits(4))
		c.FullSrvcAudio = r.ReadBool()
	}
	return a, r.Err()
}

func writeAudioDescriptor(w *Writer, a *AudioDescriptor) {
	w.WriteBits(uint64(len(a.Components)), 4)
	w.WriteBits(0x0F, 4)
	for _, c := range a.Components {
		w.WriteBits(uint64(c.ComponentTag), 8)
		iso := uint64(c.ISOCode[0])<<16 | uint64(c.ISOCode[1])<<8 | uint64(c.ISOCode[2])
		w.WriteBits(iso, 24)
		w.WriteBits(uint64(c.BitStreamMode), 3)
		w.WriteBits(uint64(c.NumChannels), 4)
		w.WriteBool(c.FullSrvcAudio)
	}
}
