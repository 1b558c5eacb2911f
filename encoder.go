package scte35

import (
	"fmt"

	"github.com/pkg/errors"
)

// Encode serializes s into a complete splice_info_section, recomputing
// section_length, splice_command_length, descriptor_loop_length and
// crc_32 from s's contents rather than trusting any of those fields on s
// itself. Per spec.md §4.5 this package never encodes an encrypted
// section; EncryptedPacket must be false.
func Encode(s *SpliceInfoSection) ([]byte, error) {
	if s.EncryptedPacket {
		return nil, ErrEncryptedUnsupported
	}

	cmdBytes, err := encodeCommandBody(&s.Command)
	if err != nil {
		return nil, errors.Wrap(err, "scte35: encoding splice command failed")
	}
	if len(cmdBytes) > 0xFFF {
		return nil, fmt.Errorf("%w: splice_command_length", ErrFieldOverflow)
	}

	descW := NewWriter()
	for i := range s.Descriptors {
		writeSpliceDescriptor(descW, &s.Descriptors[i])
	}
	descBytes, err := descW.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "scte35: encoding splice descriptors failed")
	}
	if len(descBytes) > 0xFFFF {
		return nil, fmt.Errorf("%w: descriptor_loop_length", ErrFieldOverflow)
	}

	body := NewWriter()
	body.WriteBits(uint64(s.ProtocolVersion), 8)
	body.WriteBool(false) // encrypted_packet
	body.WriteBits(uint64(s.EncryptionAlgorithm), 6)
	body.WriteBits(s.PTSAdjustment&Max33Bits, 33)
	body.WriteBits(uint64(s.CWIndex), 8)
	body.WriteBits(uint64(s.Tier), 12)
	body.WriteBits(uint64(len(cmdBytes)), 12)
	body.WriteBits(uint64(s.Command.Type), 8)
	body.WriteBytes(cmdBytes)
	body.WriteBits(uint64(len(descBytes)), 16)
	body.WriteBytes(descBytes)
	body.WriteBytes(s.AlignmentStuffing)
	bodyBytes, err := body.Bytes()
	if err != nil {
		return nil, err
	}

	sectionLength := len(bodyBytes) + 4 // + crc_32
	if sectionLength > maxSectionLength {
		return nil, fmt.Errorf("%w: got %d", ErrSectionTooLarge, sectionLength)
	}

	head := NewWriter()
	head.WriteBits(uint64(s.TableID), 8)
	head.WriteBool(s.SectionSyntaxIndicator)
	head.WriteBool(s.PrivateIndicator)
	head.WriteBits(uint64(s.SAPType), 2)
	head.WriteBits(uint64(sectionLength), 12)
	headBytes, err := head.Bytes()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(headBytes)+len(bodyBytes)+4)
	out = append(out, headBytes...)
	out = append(out, bodyBytes...)

	crc := ComputeCRC32(out)
	crcW := NewWriter()
	crcW.WriteBits(uint64(crc), 32)
	crcBytes, err := crcW.Bytes()
	if err != nil {
		return nil, err
	}
	out = append(out, crcBytes...)

	return out, nil
}

func encodeCommandBody(c *SpliceCommand) ([]byte, error) {
	w := NewWriter()
	switch c.Type {
	case CommandTypeNull:
		writeNullCommand(w, c.Null)
	case CommandTypeSchedule:
		if c.Schedule == nil {
			return nil, missingRequired("SpliceCommand.Schedule")
		}
		writeScheduleCommand(w, c.Schedule)
	case CommandTypeInsert:
		if c.Insert == nil {
			return nil, missingRequired("SpliceCommand.Insert")
		}
		writeInsertCommand(w, c.Insert)
	case CommandTypeTimeSignal:
		if c.TimeSignal == nil {
			return nil, missingRequired("SpliceCommand.TimeSignal")
		}
		writeTimeSignalCommand(w, c.TimeSignal)
	case CommandTypeBandwidthReservation:
		writeBandwidthReservationCommand(w, c.BandwidthReservation)
	case CommandTypePrivate:
		if c.Private == nil {
			return nil, missingRequired("SpliceCommand.Private")
		}
		writePrivateCommand(w, c.Private)
	default:
		w.WriteBytes(c.UnknownBytes)
	}
	return w.Bytes()
}
