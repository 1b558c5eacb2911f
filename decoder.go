package scte35

import (
	"fmt"

	"github.com/pkg/errors"
)

// maxSectionLength is the largest section_length SCTE-35 allows (0xFFD),
// slightly below the 0xFFF its 12 bits could hold.
const maxSectionLength = 0xFFD

// unknownCommandLength is the legacy sentinel meaning "read the command
// until the descriptor_loop_length field, not a declared number of bytes".
const unknownCommandLength = 0xFFF

// decodeOptions configures Decode. The zero value validates the CRC and
// treats violated reserved bits as a silently-ignored detail, matching how
// real-world encoders occasionally get reserved bits wrong without that
// being a useful signal to a caller who only wants the splice event.
type decodeOptions struct {
	skipCRC        bool
	strictReserved bool
}

// Option configures Decode.
type Option func(*decodeOptions)

// WithoutCRCValidation disables the crc_32 check, for callers decoding a
// section whose trailer was stripped or never computed, e.g. in a test
// fixture.
func WithoutCRCValidation() Option {
	return func(o *decodeOptions) { o.skipCRC = true }
}

// WithStrictReservedBits makes Decode return ErrReservedZeroViolation when
// a bit documented as reserved-and-zero is not in fact zero, instead of
// silently discarding it.
func WithStrictReservedBits() Option {
	return func(o *decodeOptions) { o.strictReserved = true }
}

// Decode parses a single splice_info_section from buf. Per spec.md §4.7
// the decoder fails on the first structural error instead of attempting
// any recovery; a successfully returned *SpliceInfoSection is always
// exactly as long, in bytes, as buf.
func Decode(buf []byte, opts ...Option) (*SpliceInfoSection, error) {
	var o decodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(buf) < 3 {
		return nil, ErrTruncated
	}

	r := NewReader(buf)
	s := &SpliceInfoSection{}

	s.TableID = uint8(r.ReadBits(8))
	if s.TableID != 0xFC {
		return nil, fmt.Errorf("%w: got 0x%02x", ErrBadTableID, s.TableID)
	}
	s.SectionSyntaxIndicator = r.ReadBool()
	s.PrivateIndicator = r.ReadBool()
	s.SAPType = uint8(r.ReadBits(2))
	sectionLength := int(r.ReadBits(12))

	if sectionLength > maxSectionLength {
		return nil, fmt.Errorf("%w: got %d", ErrSectionTooLarge, sectionLength)
	}
	total := 3 + sectionLength
	switch {
	case len(buf) < total:
		return nil, fmt.Errorf("%w: declared %d bytes, have %d", ErrTruncated, total, len(buf))
	case len(buf) > total:
		return nil, fmt.Errorf("%w: declared %d bytes, have %d", ErrTrailingBytes, total, len(buf))
	}

	if o.strictReserved {
		if s.SectionSyntaxIndicator {
			return nil, fmt.Errorf("%w: section_syntax_indicator", ErrReservedZeroViolation)
		}
		if s.PrivateIndicator {
			return nil, fmt.Errorf("%w: private_indicator", ErrReservedZeroViolation)
		}
	}

	s.ProtocolVersion = uint8(r.ReadBits(8))
	s.EncryptedPacket = r.ReadBool()
	s.EncryptionAlgorithm = uint8(r.ReadBits(6))
	if s.EncryptedPacket {
		return nil, ErrEncryptedUnsupported
	}

	s.PTSAdjustment = r.ReadBits(33)
	s.CWIndex = uint8(r.ReadBits(8))
	s.Tier = uint16(r.ReadBits(12))

	commandLength := int(r.ReadBits(12))
	commandType := CommandType(r.ReadBits(8))
	commandStart := r.PositionBits()

	cmd, err := decodeCommandBody(r, commandType, commandLength)
	if err != nil {
		return nil, errors.Wrap(err, "scte35: decoding splice command failed")
	}
	s.Command = *cmd

	if commandLength != unknownCommandLength {
		consumed := (r.PositionBits() - commandStart) / 8
		if consumed != int64(commandLength) {
			return nil, fmt.Errorf("%w: declared %d, consumed %d", ErrCommandLengthMismatch, commandLength, consumed)
		}
	}

	descLoopLen := int(r.ReadBits(16))
	descs, err := parseSpliceDescriptors(r, descLoopLen)
	if err != nil {
		return nil, errors.Wrap(err, "scte35: decoding splice descriptors failed")
	}
	s.Descriptors = descs

	if err := r.Err(); err != nil {
		return nil, err
	}

	trailerBits := int64(32)
	if s.EncryptedPacket {
		trailerBits += 32
	}
	remainingBits := int64(total)*8 - r.PositionBits() - trailerBits
	if remainingBits < 0 {
		return nil, fmt.Errorf("%w: declared %d, consumed more", ErrLengthMismatch, total)
	}
	if remainingBits > 0 {
		s.AlignmentStuffing = r.ReadBytes(int(remainingBits / 8))
	}

	s.CRC32 = uint32(r.ReadBits(32))
	if err := r.Err(); err != nil {
		return nil, err
	}

	if !o.skipCRC {
		if !VerifyCRC32(buf) {
			return nil, ErrCRCMismatch
		}
	}

	return s, nil
}

func decodeCommandBody(r *Reader, t CommandType, length int) (*SpliceCommand, error) {
	c := &SpliceCommand{Type: t}
	switch t {
	case CommandTypeNull:
		v, err := parseNullCommand(r)
		if err != nil {
			return nil, err
		}
		c.Null = v
	case CommandTypeSchedule:
		v, err := parseScheduleCommand(r)
		if err != nil {
			return nil, err
		}
		c.Schedule = v
	case CommandTypeInsert:
		v, err := parseInsertCommand(r)
		if err != nil {
			return nil, err
		}
		c.Insert = v
	case CommandTypeTimeSignal:
		v, err := parseTimeSignalCommand(r)
		if err != nil {
			return nil, err
		}
		c.TimeSignal = v
	case CommandTypeBandwidthReservation:
		v, err := parseBandwidthReservationCommand(r)
		if err != nil {
			return nil, err
		}
		c.BandwidthReservation = v
	case CommandTypePrivate:
		if length == unknownCommandLength {
			return nil, fmt.Errorf("scte35: private_command requires a declared splice_command_length")
		}
		v, err := parsePrivateCommand(r, length)
		if err != nil {
			return nil, err
		}
		c.Private = v
	default:
		if length == unknownCommandLength {
			return nil, fmt.Errorf("scte35: unknown splice_command_type 0x%02x requires a declared splice_command_length", uint8(t))
		}
		c.UnknownBytes = r.ReadBytes(length)
		if err := r.Err(); err != nil {
			return nil, err
		}
	}
	return c, r.Err()
}
