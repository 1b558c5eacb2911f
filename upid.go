package scte35

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// maxMPUPrivateData is the largest private_data a single MPU UPID payload
// can carry: upid_length is 8 bits wide, minus the 4-byte format_identifier.
const maxMPUPrivateData = 255 - 4

// validateUPID checks raw against the fixed-length and format rules
// spec.md §3's UPID table states for t, returning a *BuildError (per
// §4.6's InvalidLength/InvalidValue failure modes) when it does not
// conform. Types the table leaves as "raw bytes, length-prefixed" (ISCI,
// ADI, ATSC Content Identifier, ADS Information, SCR, the deprecated
// User Defined type) accept any length.
func validateUPID(t UPIDType, raw []byte) error {
	switch t {
	case UPIDTypeNotUsed:
		if len(raw) != 0 {
			return invalidLength("UPID", 0, len(raw))
		}
	case UPIDTypeAdID:
		if len(raw) != 12 {
			return invalidLength("UPID", 12, len(raw))
		}
		if !isASCII(raw) {
			return invalidValue("UPID", "AdID must be ASCII")
		}
	case UPIDTypeUMID:
		if len(raw) != 32 {
			return invalidLength("UPID", 32, len(raw))
		}
	case UPIDTypeISAN:
		if len(raw) != 12 {
			return invalidLength("UPID", 12, len(raw))
		}
	case UPIDTypeTID:
		if len(raw) != 12 {
			return invalidLength("UPID", 12, len(raw))
		}
		if !isASCII(raw) {
			return invalidValue("UPID", "TID must be ASCII")
		}
	case UPIDTypeAiringID:
		if len(raw) != 8 {
			return invalidLength("UPID", 8, len(raw))
		}
	case UPIDTypeEIDR:
		if len(raw) != 12 {
			return invalidLength("UPID", 12, len(raw))
		}
	case UPIDTypeUUID:
		if len(raw) != 16 {
			return invalidLength("UPID", 16, len(raw))
		}
	case UPIDTypeMPU:
		if len(raw) < 4 {
			return invalidLength("UPID", 4, len(raw))
		}
		if len(raw)-4 > maxMPUPrivateData {
			return invalidValue("UPID", "MPU private data exceeds 251 bytes")
		}
	case UPIDTypeURI:
		if len(raw) < 1 || len(raw) > 255 {
			return invalidValue("UPID", "URI must be 1-255 bytes")
		}
	}
	return nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c > 0x7F {
			return false
		}
	}
	return true
}

func parseUPID(r *Reader, t UPIDType, length int) (UPID, error) {
	u := UPID{Type: t}
	raw := r.ReadBytes(length)
	if err := r.Err(); err != nil {
		return UPID{}, err
	}
	u.Raw = raw

	if !t.IsKnown() {
		logger.Debugf("scte35: unlisted UPID type 0x%x", uint8(t))
	}

	switch t {
	case UPIDTypeMPU:
		mpu, err := decodeMPUUPID(raw)
		if err != nil {
			return UPID{}, err
		}
		u.MPU = mpu
	case UPIDTypeMID:
		sub, err := decodeMIDUPID(raw)
		if err != nil {
			return UPID{}, err
		}
		u.MID = sub
	}
	return u, nil
}

// encodeUPID returns the upid_length-prefixed payload bytes for u: the
// format_identifier+private_data pair for an MPU, the concatenated
// {type,length,bytes} triples for a MID, or Raw verbatim for everything
// else this package does not structurally interpret.
func encodeUPID(u UPID) []byte {
	switch u.Type {
	case UPIDTypeMPU:
		if u.MPU == nil {
			return u.Raw
		}
		return encodeMPUUPID(u.MPU)
	case UPIDTypeMID:
		if u.MID == nil {
			return u.Raw
		}
		return encodeMIDUPID(u.MID)
	default:
		return u.Raw
	}
}

// decodeMPUUPID splits an MPU UPID payload into its 4-byte
// format_identifier and private_data, per spec.md's description of the
// structure (the Rust original this module is grounded on leaves MPU
// encoding unimplemented, so this layout comes from spec.md alone).
func decodeMPUUPID(raw []byte) (*MPUUPID, error) {
	if len(raw) < 4 {
		return nil, fmt.Errorf("%w: MPU UPID payload shorter than its 4-byte format_identifier", ErrInvalidUpidStructure)
	}
	if len(raw)-4 > maxMPUPrivateData {
		return nil, fmt.Errorf("%w: MPU UPID private_data exceeds %d bytes", ErrInvalidUpidStructure, maxMPUPrivateData)
	}
	return &MPUUPID{
		FormatIdentifier: binary.BigEndian.Uint32(raw[:4]),
		PrivateData:      append([]byte{}, raw[4:]...),
	}, nil
}

func encodeMPUUPID(m *MPUUPID) []byte {
	out := make([]byte, 4+len(m.PrivateData))
	binary.BigEndian.PutUint32(out, m.FormatIdentifier)
	copy(out[4:], m.PrivateData)
	return out
}

// decodeMIDUPID splits a MID UPID payload into its sequence of embedded
// {upid_type:8, upid_length:8, upid_bytes} sub-UPIDs. Nesting is capped at
// one level: a sub-UPID whose own type is UPIDTypeMID is a structural
// error rather than a second level of recursion.
func decodeMIDUPID(raw []byte) ([]UPID, error) {
	r := NewReader(raw)
	var out []UPID
	for r.PositionBits() < int64(len(raw))*8 {
		t := UPIDType(r.ReadBits(8))
		length := int(r.ReadBits(8))
		if t == UPIDTypeMID {
			return nil, fmt.Errorf("%w: MID UPID must not contain a nested MID", ErrInvalidUpidStructure)
		}
		sub, err := parseUPID(r, t, length)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeMIDUPID(subs []UPID) []byte {
	w := NewWriter()
	for _, s := range subs {
		w.WriteBits(uint64(s.Type), 8)
		body := encodeUPID(s)
		w.WriteBits(uint64(len(body)), 8)
		w.WriteBytes(body)
	}
	b, _ := w.Bytes()
	return b
}

// String renders u in the display form conventional for its type: a
// dashed UUID for UPIDTypeUUID, a 0x-prefixed hex number for the binary
// AiringID, hyphen-separated groups of 4 hex digits for ISAN (current and
// deprecated), a bare hex string for other binary types, or the raw bytes
// reinterpreted as ASCII for the text-based types (ISCI, Ad-ID, TID,
// ADI, URI).
func (u UPID) String() string {
	switch u.Type {
	case UPIDTypeUUID:
		return formatUUID(u.Raw)
	case UPIDTypeAiringID:
		if len(u.Raw) != 8 {
			return hex.EncodeToString(u.Raw)
		}
		return fmt.Sprintf("0x%x", binary.BigEndian.Uint64(u.Raw))
	case UPIDTypeISCI, UPIDTypeAdID, UPIDTypeTID, UPIDTypeADI, UPIDTypeURI:
		return string(u.Raw)
	case UPIDTypeISAN, UPIDTypeISANDeprecated:
		return formatISAN(u.Raw)
	default:
		return hex.EncodeToString(u.Raw)
	}
}

// formatUUID renders 16 raw bytes as a dashed UUID string; any other
// length is returned as a plain hex string since it cannot be a UUID.
func formatUUID(b []byte) string {
	if len(b) != 16 {
		return hex.EncodeToString(b)
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// formatISAN renders an ISAN as groups of 4 hex digits separated by
// hyphens, matching the conventional ISAN-13/ISAN-16 text representation.
func formatISAN(b []byte) string {
	h := hex.EncodeToString(b)
	if len(h) <= 4 {
		return h
	}
	var out string
	for i := 0; i < len(h); i += 4 {
		end := i + 4
		if end > len(h) {
			end = len(h)
		}
		if i > 0 {
			out += "-"
		}
		out += h[i:end]
	}
	return out
}
