package scte35

// Builders assemble a value field by field and validate it in one place
// on Build, instead of letting a caller hand-construct a struct that
// might violate an invariant Decode would have rejected (e.g. a
// sub_segment_num on a type that doesn't carry one). Per spec.md §4.6 a
// builder is single-use: Build consumes it, and calling Build twice on
// the same builder returns a BuildError rather than silently repeating
// the first result.

// SectionBuilder assembles a SpliceInfoSection.
type SectionBuilder struct {
	used bool

	ptsAdjustment uint64
	cwIndex       uint8
	tier          uint16
	command       *SpliceCommand
	descriptors   []SpliceDescriptor
}

// NewSectionBuilder creates an empty SectionBuilder. Tier defaults to
// 0xFFF (unused) as recommended by SCTE-35 for senders not using tiering.
func NewSectionBuilder() *SectionBuilder {
	return &SectionBuilder{tier: 0xFFF}
}

func (b *SectionBuilder) PTSAdjustment(ticks uint64) *SectionBuilder {
	b.ptsAdjustment = ticks
	return b
}

func (b *SectionBuilder) CWIndex(v uint8) *SectionBuilder {
	b.cwIndex = v
	return b
}

func (b *SectionBuilder) Tier(v uint16) *SectionBuilder {
	b.tier = v
	return b
}

func (b *SectionBuilder) Command(c SpliceCommand) *SectionBuilder {
	b.command = &c
	return b
}

func (b *SectionBuilder) AddDescriptor(d SpliceDescriptor) *SectionBuilder {
	b.descriptors = append(b.descriptors, d)
	return b
}

// Build validates the accumulated fields and returns the finished
// section. b must not be reused afterward.
func (b *SectionBuilder) Build() (*SpliceInfoSection, error) {
	if b.used {
		return nil, invalidValue("SectionBuilder", "Build called more than once")
	}
	b.used = true

	if b.command == nil {
		return nil, missingRequired("Command")
	}
	if b.ptsAdjustment > Max33Bits {
		return nil, outOfRange("PTSAdjustment", Max33Bits)
	}
	if b.tier > 0xFFF {
		return nil, outOfRange("Tier", 0xFFF)
	}
	if len(b.descriptors) > 0xFFFF {
		return nil, outOfRange("Descriptors", 0xFFFF)
	}

	return &SpliceInfoSection{
		TableID:       0xFC,
		PTSAdjustment: b.ptsAdjustment,
		CWIndex:       b.cwIndex,
		Tier:          b.tier,
		Command:       *b.command,
		Descriptors:   b.descriptors,
	}, nil
}

// InsertBuilder assembles an InsertCommand wrapped ready to hand to
// SectionBuilder.Command.
type InsertBuilder struct {
	used bool

	eventID           uint32
	cancel            bool
	outOfNetwork      bool
	immediate         bool
	eventIDCompliance bool
	ptsTime           *uint64
	components        []SpliceInsertComponent
	breakDuration     *BreakDuration
	uniqueProgramID   uint16
	availNum          uint8
	availsExpected    uint8
}

// NewInsertBuilder creates an InsertBuilder for splice_event_id eventID.
func NewInsertBuilder(eventID uint32) *InsertBuilder {
	return &InsertBuilder{eventID: eventID}
}

func (b *InsertBuilder) Cancel() *InsertBuilder {
	b.cancel = true
	return b
}

func (b *InsertBuilder) OutOfNetwork(v bool) *InsertBuilder {
	b.outOfNetwork = v
	return b
}

// EventIDCompliance sets event_id_compliance_flag, which signals whether
// splice_event_id increases monotonically across the stream's commands.
func (b *InsertBuilder) EventIDCompliance(v bool) *InsertBuilder {
	b.eventIDCompliance = v
	return b
}

// Immediate marks the splice point as taking effect as soon as this
// command is received, omitting an explicit splice_time.
func (b *InsertBuilder) Immediate() *InsertBuilder {
	b.immediate = true
	return b
}

// At sets an explicit 90 kHz PTS splice point. It is ignored if Immediate
// was also called.
func (b *InsertBuilder) At(ptsTicks uint64) *InsertBuilder {
	b.ptsTime = &ptsTicks
	return b
}

func (b *InsertBuilder) AddComponent(tag uint8, ptsTicks *uint64) *InsertBuilder {
	comp := SpliceInsertComponent{ComponentTag: tag}
	if ptsTicks != nil {
		comp.SpliceTime = &SpliceTime{TimeSpecifiedFlag: true, PTSTime: *ptsTicks}
	}
	b.components = append(b.components, comp)
	return b
}

func (b *InsertBuilder) Duration(ticks uint64, autoReturn bool) *InsertBuilder {
	b.breakDuration = &BreakDuration{AutoReturn: autoReturn, Duration: ticks}
	return b
}

func (b *InsertBuilder) Program(uniqueProgramID uint16, availNum, availsExpected uint8) *InsertBuilder {
	b.uniqueProgramID = uniqueProgramID
	b.availNum = availNum
	b.availsExpected = availsExpected
	return b
}

// Build validates the accumulated fields and returns the finished
// SpliceCommand. b must not be reused afterward.
func (b *InsertBuilder) Build() (SpliceCommand, error) {
	if b.used {
		return SpliceCommand{}, invalidValue("InsertBuilder", "Build called more than once")
	}
	b.used = true

	cmd := &InsertCommand{
		SpliceEventID:              b.eventID,
		SpliceEventCancelIndicator: b.cancel,
	}
	if b.cancel {
		return SpliceCommand{Type: CommandTypeInsert, Insert: cmd}, nil
	}

	cmd.OutOfNetworkIndicator = b.outOfNetwork
	cmd.SpliceImmediateFlag = b.immediate
	cmd.EventIDComplianceFlag = b.eventIDCompliance
	cmd.ProgramSpliceFlag = len(b.components) == 0

	if cmd.ProgramSpliceFlag {
		if !b.immediate {
			if b.ptsTime == nil {
				return SpliceCommand{}, missingRequired("SpliceTime")
			}
			if *b.ptsTime > Max33Bits {
				return SpliceCommand{}, outOfRange("PTSTime", Max33Bits)
			}
			cmd.SpliceTime = &SpliceTime{TimeSpecifiedFlag: true, PTSTime: *b.ptsTime}
		}
	} else {
		if len(b.components) > 0xFF {
			return SpliceCommand{}, invalidComponentCount("Components", len(b.components))
		}
		cmd.Components = b.components
	}

	if b.breakDuration != nil {
		if b.breakDuration.Duration > Max33Bits {
			return SpliceCommand{}, outOfRange("BreakDuration.Duration", Max33Bits)
		}
		cmd.DurationFlag = true
		cmd.BreakDuration = b.breakDuration
	}

	cmd.UniqueProgramID = b.uniqueProgramID
	cmd.AvailNum = b.availNum
	cmd.AvailsExpected = b.availsExpected

	return SpliceCommand{Type: CommandTypeInsert, Insert: cmd}, nil
}

// SegmentationBuilder assembles a SegmentationDescriptor wrapped ready to
// hand to SectionBuilder.AddDescriptor.
type SegmentationBuilder struct {
	used bool

	eventID           uint32
	cancel            bool
	eventIDCompliance bool
	typeID            SegmentationType
	upidType          UPIDType
	upid              UPID
	duration          *uint64
	restricted        bool
	web               bool
	noBlackout        bool
	archive           bool
	devices           DeviceRestrictions
	segNum            uint8
	segsExp           uint8
	subNum            *uint8
	subExp            *uint8
}

// NewSegmentationBuilder creates a SegmentationBuilder for
// segmentation_event_id eventID and the given boundary type.
func NewSegmentationBuilder(eventID uint32, typeID SegmentationType) *SegmentationBuilder {
	return &SegmentationBuilder{eventID: eventID, typeID: typeID}
}

func (b *SegmentationBuilder) Cancel() *SegmentationBuilder {
	b.cancel = true
	return b
}

// EventIDCompliance sets segmentation_event_id_compliance_indicator.
func (b *SegmentationBuilder) EventIDCompliance(v bool) *SegmentationBuilder {
	b.eventIDCompliance = v
	return b
}

func (b *SegmentationBuilder) UPID(t UPIDType, u UPID) *SegmentationBuilder {
	b.upidType = t
	b.upid = u
	b.upid.Type = t
	return b
}

func (b *SegmentationBuilder) Duration(ticks uint64) *SegmentationBuilder {
	b.duration = &ticks
	return b
}

// DeliveryRestrictions sets the four delivery_not_restricted_flag==0
// sub-fields. Calling this at all implies delivery_not_restricted_flag is
// false; omitting it leaves delivery unrestricted.
func (b *SegmentationBuilder) DeliveryRestrictions(web, noBlackout, archive bool, devices DeviceRestrictions) *SegmentationBuilder {
	b.restricted = true
	b.web = web
	b.noBlackout = noBlackout
	b.archive = archive
	b.devices = devices
	return b
}

func (b *SegmentationBuilder) Segment(num, expected uint8) *SegmentationBuilder {
	b.segNum = num
	b.segsExp = expected
	return b
}

func (b *SegmentationBuilder) SubSegment(num, expected uint8) *SegmentationBuilder {
	b.subNum = &num
	b.subExp = &expected
	return b
}

// Build validates the accumulated fields and returns the finished
// SpliceDescriptor. b must not be reused afterward.
func (b *SegmentationBuilder) Build() (SpliceDescriptor, error) {
	if b.used {
		return SpliceDescriptor{}, invalidValue("SegmentationBuilder", "Build called more than once")
	}
	b.used = true

	sd := &SegmentationDescriptor{
		SegmentationEventID:               b.eventID,
		SegmentationEventCancelIndicator:  b.cancel,
		SegmentationEventIDComplianceFlag: b.eventIDCompliance,
	}
	if b.cancel {
		return SpliceDescriptor{
			Tag:          DescriptorTagSegmentation,
			Identifier:   identifierCUEI,
			Segmentation: sd,
		}, nil
	}

	sd.ProgramSegmentationFlag = true
	sd.DeliveryNotRestrictedFlag = !b.restricted
	if b.restricted {
		sd.WebDeliveryAllowedFlag = b.web
		sd.NoRegionalBlackoutFlag = b.noBlackout
		sd.ArchiveAllowedFlag = b.archive
		sd.DeviceRestrictions = b.devices
	}

	if b.duration != nil {
		if *b.duration > Max40Bits {
			return SpliceDescriptor{}, outOfRange("SegmentationDuration", Max40Bits)
		}
		sd.SegmentationDurationFlag = true
		sd.SegmentationDuration = *b.duration
	}

	if err := validateUPID(b.upidType, b.upid.Raw); err != nil {
		return SpliceDescriptor{}, err
	}

	sd.UPIDType = b.upidType
	sd.UPID = b.upid
	sd.SegmentationTypeID = b.typeID
	sd.SegmentNum = b.segNum
	sd.SegmentsExpected = b.segsExp

	if b.typeID.HasSubSegment() {
		if b.subNum == nil || b.subExp == nil {
			return SpliceDescriptor{}, missingRequired("SubSegment")
		}
		sd.SubSegmentNum = b.subNum
		sd.SubSegmentsExpected = b.subExp
	}

	return SpliceDescriptor{
		Tag:          DescriptorTagSegmentation,
		Identifier:   identifierCUEI,
		Segmentation: sd,
	}, nil
}
