package scte35

// SpliceInfoSection is the fully decoded form of a splice_info_section, the
// top-level structure described in spec.md §3. Like the teacher's PSIData
// (data_psi.go), the variant-specific payload lives behind a small set of
// nilable pointer fields on SpliceCommand rather than behind an interface,
// so callers can switch on which pointer is non-nil instead of doing a
// type assertion.
type SpliceInfoSection struct {
	TableID                uint8
	SectionSyntaxIndicator bool
	PrivateIndicator       bool
	SAPType                uint8
	ProtocolVersion        uint8
	EncryptedPacket        bool
	EncryptionAlgorithm    uint8
	PTSAdjustment          uint64 // 33 bits
	CWIndex                uint8
	Tier                   uint16 // 12 bits
	Command                SpliceCommand
	Descriptors            []SpliceDescriptor

	// AlignmentStuffing carries any padding bytes observed between the
	// last descriptor and the (optional) E_CRC32/CRC_32 trailer, preserved
	// verbatim so a decode→encode round-trip reproduces the original byte
	// length exactly.
	AlignmentStuffing []byte

	// ECRC32 belongs to encrypted sections only. Decode rejects encrypted
	// sections with ErrEncryptedUnsupported and never sets this field, and
	// Encode does not write it.
	ECRC32 *uint32

	CRC32 uint32
}

// SpliceCommand holds exactly one of the six splice command payloads. Type
// identifies which field is populated; UnknownBytes carries any
// command type the decoder does not interpret structurally, per
// CommandType.IsKnown.
type SpliceCommand struct {
	Type CommandType

	Null                 *NullCommand
	Schedule             *ScheduleCommand
	Insert               *InsertCommand
	TimeSignal           *TimeSignalCommand
	BandwidthReservation *BandwidthReservationCommand
	Private              *PrivateCommand

	// UnknownBytes holds the raw splice_command payload when Type is not
	// one IsKnown recognizes.
	UnknownBytes []byte
}

// NullCommand is splice_null(); it carries no fields.
type NullCommand struct{}

// BandwidthReservationCommand is bandwidth_reservation(); it carries no
// fields.
type BandwidthReservationCommand struct{}

// PrivateCommand is splice_command_type 0xFF's private_command().
type PrivateCommand struct {
	Identifier uint32
	// PrivateBytes is whatever remains of the command after the 4-byte
	// identifier, sized by the section's splice_command_length.
	PrivateBytes []byte
}

// TimeSignalCommand is time_signal(); it carries a single splice_time().
type TimeSignalCommand struct {
	SpliceTime SpliceTime
}

// SpliceTime is the splice_time() structure: either an explicit 33-bit PTS
// or the absence of one (time_specified_flag == 0).
type SpliceTime struct {
	TimeSpecifiedFlag bool
	PTSTime           uint64 // valid only when TimeSpecifiedFlag; 33 bits
}

// BreakDuration is the break_duration() structure attached to splice_insert
// and to schedule events.
type BreakDuration struct {
	AutoReturn bool
	Duration   uint64 // 33 bits, 90 kHz ticks
}

// SpliceInsertComponent is one entry of splice_insert's component-splicing
// component_count loop.
type SpliceInsertComponent struct {
	ComponentTag uint8
	// SpliceTime is present only when the enclosing command's
	// ProgramSpliceFlag is false and SpliceImmediateFlag is false.
	SpliceTime *SpliceTime
}

// InsertCommand is splice_insert().
type InsertCommand struct {
	SpliceEventID              uint32
	SpliceEventCancelIndicator bool

	OutOfNetworkIndicator bool
	ProgramSpliceFlag     bool
	DurationFlag          bool
	SpliceImmediateFlag   bool
	EventIDComplianceFlag bool

	// SpliceTime is present when ProgramSpliceFlag is true and
	// SpliceImmediateFlag is false.
	SpliceTime *SpliceTime

	// Components is present when ProgramSpliceFlag is false.
	Components []SpliceInsertComponent

	// BreakDuration is present when DurationFlag is true.
	BreakDuration *BreakDuration

	UniqueProgramID uint16
	AvailNum        uint8
	AvailsExpected  uint8
}

// ScheduleComponent is one entry of a schedule event's component loop,
// used only when the event's ProgramSpliceFlag is false.
type ScheduleComponent struct {
	ComponentTag  uint8
	UTCSpliceTime uint32
}

// ScheduleEvent is one splice_event of splice_schedule(). Decoding of
// splice_schedule is supported; this package does not provide a builder
// for it, per SPEC_FULL.md's supplemented-features note — schedules are
// rare in practice and every real encoder in the field emits splice_insert
// instead.
type ScheduleEvent struct {
	SpliceEventID              uint32
	SpliceEventCancelIndicator bool

	OutOfNetworkIndicator bool
	ProgramSpliceFlag     bool

	// UTCSpliceTime is present when ProgramSpliceFlag is true.
	UTCSpliceTime uint32

	// Components is present when ProgramSpliceFlag is false.
	Components []ScheduleComponent

	DurationFlag  bool
	BreakDuration *BreakDuration

	UniqueProgramID uint16
	AvailNum        uint8
	AvailsExpected  uint8
}

// ScheduleCommand is splice_schedule().
type ScheduleCommand struct {
	Events []ScheduleEvent
}

// SpliceDescriptor holds exactly one of the five splice_descriptor payload
// kinds SCTE-35 defines, plus a raw fallback for any other tag.
type SpliceDescriptor struct {
	Tag DescriptorTag

	// Identifier is the 4-byte "CUEI" format identifier every known
	// descriptor carries immediately after tag and length.
	Identifier uint32

	Avail        *AvailDescriptor
	DTMF         *DTMFDescriptor
	Segmentation *SegmentationDescriptor
	Time         *TimeDescriptor
	Audio        *AudioDescriptor

	// UnknownBytes holds the descriptor payload (after identifier) for any
	// Tag other than the five defined DescriptorTag constants, or for a
	// known tag whose Identifier is not "CUEI".
	UnknownBytes []byte
}

// AvailDescriptor is the avail_descriptor().
type AvailDescriptor struct {
	ProviderAvailID uint32
}

// DTMFDescriptor is the DTMF_descriptor().
type DTMFDescriptor struct {
	Preroll uint8
	// DTMFChars holds the ASCII DTMF symbols (0-9, *, #, A-D), one byte
	// each, as transmitted.
	DTMFChars []byte
}

// TimeDescriptor is the time_descriptor(), carrying a TAI timestamp plus a
// UTC offset in seconds.
type TimeDescriptor struct {
	TAISeconds uint64 // 48 bits
	TAINs      uint32
	UTCOffset  uint16
}

// AudioComponent is one entry of an audio_descriptor's component loop.
type AudioComponent struct {
	ComponentTag  uint8
	ISOCode       [3]byte
	BitStreamMode uint8 // 3 bits
	NumChannels   uint8 // 4 bits
	FullSrvcAudio bool
}

// AudioDescriptor is the audio_descriptor().
type AudioDescriptor struct {
	Components []AudioComponent
}

// SegmentationComponent is one entry of a segmentation descriptor's
// component loop, present only when ProgramSegmentationFlag is false.
type SegmentationComponent struct {
	ComponentTag uint8
	PTSOffset    uint64 // 33 bits
}

// UPID is the tagged content-identifier carried by a segmentation
// descriptor. Raw always holds the bytes exactly as transmitted (after
// upid_length), so re-encoding a UPID this package does not structurally
// interpret still round-trips byte-for-byte. MPU and MID are populated
// in addition to Raw when Type is UPIDTypeMPU or UPIDTypeMID respectively.
type UPID struct {
	Type UPIDType
	Raw  []byte

	MPU *MPUUPID
	// MID holds the decoded sub-UPIDs of a MID container. Per spec.md's
	// nesting rule, none of these will themselves have Type ==
	// UPIDTypeMID; a MID nested inside a MID is a decode error
	// (ErrInvalidUpidStructure), not a second level of this slice.
	MID []UPID
}

// MPUUPID is the structure of a UPIDTypeMPU payload: a 4-byte registered
// format identifier followed by up to 251 bytes of format-specific data.
type MPUUPID struct {
	FormatIdentifier uint32
	PrivateData      []byte
}

// SegmentationDescriptor is the segmentation_descriptor(), the most
// structurally complex descriptor SCTE-35 defines.
type SegmentationDescriptor struct {
	SegmentationEventID               uint32
	SegmentationEventCancelIndicator  bool
	SegmentationEventIDComplianceFlag bool

	// ProgramSegmentationFlag, present when SegmentationEventCancelIndicator
	// is false, selects between a single program-wide boundary (true) and
	// a Components loop describing per-elementary-stream boundaries
	// (false).
	ProgramSegmentationFlag bool
	Components              []SegmentationComponent

	SegmentationDurationFlag bool
	SegmentationDuration     uint64 // 40 bits, 90 kHz ticks

	DeliveryNotRestrictedFlag bool
	WebDeliveryAllowedFlag    bool
	NoRegionalBlackoutFlag    bool
	ArchiveAllowedFlag        bool
	DeviceRestrictions        DeviceRestrictions

	UPIDType UPIDType
	UPID     UPID

	SegmentationTypeID SegmentationType

	SegmentNum       uint8
	SegmentsExpected uint8

	// SubSegmentNum and SubSegmentsExpected are present only when
	// SegmentationTypeID.HasSubSegment() is true.
	SubSegmentNum       *uint8
	SubSegmentsExpected *uint8
}
