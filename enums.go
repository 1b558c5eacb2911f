package scte35

import "fmt"

// CommandType identifies the splice command carried by a SpliceInfoSection.
// Like the teacher's PSITableTypeId (data_psi.go), this is a closed integer
// type with a total String() rather than a sealed interface hierarchy, so
// an unrecognized value round-trips as its raw CommandType value instead of
// failing decode.
type CommandType uint8

const (
	CommandTypeNull                 CommandType = 0x00
	CommandTypeSchedule             CommandType = 0x04
	CommandTypeInsert               CommandType = 0x05
	CommandTypeTimeSignal           CommandType = 0x06
	CommandTypeBandwidthReservation CommandType = 0x07
	CommandTypePrivate              CommandType = 0xFF
)

// String returns a human-readable name for the command type, falling back
// to "unknown(0xNN)" for any value outside the six defined ones.
func (t CommandType) String() string {
	switch t {
	case CommandTypeNull:
		return "splice_null"
	case CommandTypeSchedule:
		return "splice_schedule"
	case CommandTypeInsert:
		return "splice_insert"
	case CommandTypeTimeSignal:
		return "time_signal"
	case CommandTypeBandwidthReservation:
		return "bandwidth_reservation"
	case CommandTypePrivate:
		return "private_command"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(t))
	}
}

// IsKnown reports whether t is one of the six command types the decoder
// interprets structurally, as opposed to passing through as raw bytes.
func (t CommandType) IsKnown() bool {
	switch t {
	case CommandTypeNull, CommandTypeSchedule, CommandTypeInsert,
		CommandTypeTimeSignal, CommandTypeBandwidthReservation, CommandTypePrivate:
		return true
	}
	return false
}

// DescriptorTag identifies the kind of a splice descriptor.
type DescriptorTag uint8

const (
	DescriptorTagAvail        DescriptorTag = 0x00
	DescriptorTagDTMF         DescriptorTag = 0x01
	DescriptorTagSegmentation DescriptorTag = 0x02
	DescriptorTagTime         DescriptorTag = 0x03
	DescriptorTagAudio        DescriptorTag = 0x04
)

func (t DescriptorTag) String() string {
	switch t {
	case DescriptorTagAvail:
		return "avail_descriptor"
	case DescriptorTagDTMF:
		return "DTMF_descriptor"
	case DescriptorTagSegmentation:
		return "segmentation_descriptor"
	case DescriptorTagTime:
		return "time_descriptor"
	case DescriptorTagAudio:
		return "audio_descriptor"
	default:
		return fmt.Sprintf("unknown(0x%02x)", uint8(t))
	}
}

// UPIDType identifies the encoded form of a segmentation descriptor's
// UPID, per the table in upid.go. Values outside the ones SCTE-35 defines
// keep their raw byte value as the UPIDType instead of failing decode,
// mirroring the Reserved(u8) tail of the Rust original's
// SegmentationUpidType (original_source/src/upid.rs).
type UPIDType uint8

const (
	UPIDTypeNotUsed               UPIDType = 0x00
	UPIDTypeUserDefinedDeprecated UPIDType = 0x01
	UPIDTypeISCI                  UPIDType = 0x02
	UPIDTypeAdID                  UPIDType = 0x03
	UPIDTypeUMID                  UPIDType = 0x04
	UPIDTypeISANDeprecated        UPIDType = 0x05
	UPIDTypeISAN                  UPIDType = 0x06
	UPIDTypeTID                   UPIDType = 0x07
	UPIDTypeAiringID              UPIDType = 0x08
	UPIDTypeADI                   UPIDType = 0x09
	UPIDTypeEIDR                  UPIDType = 0x0A
	UPIDTypeATSCContentIdentifier UPIDType = 0x0B
	UPIDTypeMPU                   UPIDType = 0x0C
	UPIDTypeMID                   UPIDType = 0x0D
	UPIDTypeADSInformation        UPIDType = 0x0E
	UPIDTypeURI                   UPIDType = 0x0F
	UPIDTypeUUID                  UPIDType = 0x10
	UPIDTypeSCR                   UPIDType = 0x11
)

// IsKnown reports whether t is one of the UPID types SCTE-35 defines, as
// opposed to a reserved value preserved round-trip as raw bytes.
func (t UPIDType) IsKnown() bool {
	return t <= UPIDTypeSCR
}

// Description returns the human-readable name SCTE-35 uses for this UPID
// type, matching original_source/src/upid.rs's description() table.
func (t UPIDType) Description() string {
	switch t {
	case UPIDTypeNotUsed:
		return "Not Used"
	case UPIDTypeUserDefinedDeprecated:
		return "User Defined (Deprecated)"
	case UPIDTypeISCI:
		return "ISCI (Industry Standard Commercial Identifier)"
	case UPIDTypeAdID:
		return "Ad Identifier"
	case UPIDTypeUMID:
		return "UMID (Unique Material Identifier)"
	case UPIDTypeISANDeprecated:
		return "ISAN (Deprecated)"
	case UPIDTypeISAN:
		return "ISAN (International Standard Audiovisual Number)"
	case UPIDTypeTID:
		return "TID (Turner Identifier)"
	case UPIDTypeAiringID:
		return "Airing ID"
	case UPIDTypeADI:
		return "ADI (Advertising Digital Identification)"
	case UPIDTypeEIDR:
		return "EIDR (Entertainment Identifier Registry)"
	case UPIDTypeATSCContentIdentifier:
		return "ATSC Content Identifier"
	case UPIDTypeMPU:
		return "MPU (Media Processing Unit)"
	case UPIDTypeMID:
		return "MID (Media Identifier)"
	case UPIDTypeADSInformation:
		return "ADS Information"
	case UPIDTypeURI:
		return "URI (Uniform Resource Identifier)"
	case UPIDTypeUUID:
		return "UUID (Universally Unique Identifier)"
	case UPIDTypeSCR:
		return "SCR (Subscriber Company Reporting)"
	default:
		return "Reserved/Unknown"
	}
}

// DeviceRestrictions is the 2-bit device_restrictions field of a
// segmentation descriptor's delivery restrictions. spec.md §9 flags that
// the source treats this as any 2-bit value with no reserved tail needed,
// since the spec defines all four combinations — unlike most of this
// module's enums, it is total without a Reserved/Unknown case.
type DeviceRestrictions uint8

const (
	DeviceRestrictionsNone           DeviceRestrictions = 0x00
	DeviceRestrictionsRestrictGroup0 DeviceRestrictions = 0x01
	DeviceRestrictionsRestrictGroup1 DeviceRestrictions = 0x02
	DeviceRestrictionsRestrictBoth   DeviceRestrictions = 0x03
)

func (d DeviceRestrictions) String() string {
	switch d {
	case DeviceRestrictionsNone:
		return "none"
	case DeviceRestrictionsRestrictGroup0:
		return "restrict_group_0"
	case DeviceRestrictionsRestrictGroup1:
		return "restrict_group_1"
	default:
		return "restrict_both"
	}
}

// SegmentationType identifies the kind of content boundary a segmentation
// descriptor signals. The table is carried in full from
// original_source/src/types.rs's SegmentationType, including the
// deprecated opening/closing credit values the distilled spec.md omits.
type SegmentationType uint8

const (
	SegmentationTypeNotIndicated                                SegmentationType = 0x00
	SegmentationTypeContentIdentification                       SegmentationType = 0x01
	SegmentationTypeProgramStart                                SegmentationType = 0x10
	SegmentationTypeProgramEnd                                  SegmentationType = 0x11
	SegmentationTypeProgramEarlyTermination                     SegmentationType = 0x12
	SegmentationTypeProgramBreakaway                            SegmentationType = 0x13
	SegmentationTypeProgramResumption                           SegmentationType = 0x14
	SegmentationTypeProgramRunoverPlanned                       SegmentationType = 0x15
	SegmentationTypeProgramRunoverUnplanned                     SegmentationType = 0x16
	SegmentationTypeProgramOverlapStart                         SegmentationType = 0x17
	SegmentationTypeProgramBlackoutOverride                     SegmentationType = 0x18
	SegmentationTypeProgramJoin                                 SegmentationType = 0x19
	SegmentationTypeChapterStart                                SegmentationType = 0x20
	SegmentationTypeChapterEnd                                  SegmentationType = 0x21
	SegmentationTypeBreakStart                                  SegmentationType = 0x22
	SegmentationTypeBreakEnd                                    SegmentationType = 0x23
	SegmentationTypeOpeningCreditStartDeprecated                SegmentationType = 0x24
	SegmentationTypeOpeningCreditEndDeprecated                  SegmentationType = 0x25
	SegmentationTypeClosingCreditStartDeprecated                SegmentationType = 0x26
	SegmentationTypeClosingCreditEndDeprecated                  SegmentationType = 0x27
	SegmentationTypeProviderAdvertisementStart                  SegmentationType = 0x30
	SegmentationTypeProviderAdvertisementEnd                    SegmentationType = 0x31
	SegmentationTypeDistributorAdvertisementStart               SegmentationType = 0x32
	SegmentationTypeDistributorAdvertisementEnd                 SegmentationType = 0x33
	SegmentationTypeProviderPlacementOpportunityStart           SegmentationType = 0x34
	SegmentationTypeProviderPlacementOpportunityEnd             SegmentationType = 0x35
	SegmentationTypeDistributorPlacementOpportunityStart        SegmentationType = 0x36
	SegmentationTypeDistributorPlacementOpportunityEnd          SegmentationType = 0x37
	SegmentationTypeProviderOverlayPlacementOpportunityStart    SegmentationType = 0x38
	SegmentationTypeProviderOverlayPlacementOpportunityEnd      SegmentationType = 0x39
	SegmentationTypeDistributorOverlayPlacementOpportunityStart SegmentationType = 0x3A
	SegmentationTypeDistributorOverlayPlacementOpportunityEnd   SegmentationType = 0x3B
	SegmentationTypeProviderPromoStart                          SegmentationType = 0x3C
	SegmentationTypeProviderPromoEnd                            SegmentationType = 0x3D
	SegmentationTypeDistributorPromoStart                       SegmentationType = 0x3E
	SegmentationTypeDistributorPromoEnd                         SegmentationType = 0x3F
	SegmentationTypeUnscheduledEventStart                       SegmentationType = 0x40
	SegmentationTypeUnscheduledEventEnd                         SegmentationType = 0x41
	SegmentationTypeAlternateContentOpportunityStart            SegmentationType = 0x42
	SegmentationTypeAlternateContentOpportunityEnd              SegmentationType = 0x43
	SegmentationTypeProviderAdBlockStart                        SegmentationType = 0x44
	SegmentationTypeProviderAdBlockEnd                          SegmentationType = 0x45
	SegmentationTypeDistributorAdBlockStart                     SegmentationType = 0x46
	SegmentationTypeDistributorAdBlockEnd                       SegmentationType = 0x47
	SegmentationTypeNetworkStart                                SegmentationType = 0x50
	SegmentationTypeNetworkEnd                                  SegmentationType = 0x51
)

// subSegmentTypes is the four-element set for which a segmentation
// descriptor carries sub_segment_num/sub_segments_expected, matching
// original_source/src/parser.rs's match on segmentation_type_id. Ad Block
// Start (0x44/0x46) is not in this set in the original parser despite
// sharing the placement-opportunity shape.
var subSegmentTypes = map[SegmentationType]bool{
	SegmentationTypeProviderPlacementOpportunityStart:           true,
	SegmentationTypeDistributorPlacementOpportunityStart:        true,
	SegmentationTypeProviderOverlayPlacementOpportunityStart:    true,
	SegmentationTypeDistributorOverlayPlacementOpportunityStart: true,
}

// HasSubSegment reports whether type_id is one of {0x34,0x36,0x38,0x3A}.
func (t SegmentationType) HasSubSegment() bool {
	return subSegmentTypes[t]
}

// Description returns the human-readable name for the segmentation type,
// matching original_source/src/types.rs's description() table. Unknown
// values describe themselves by their raw numeric id.
func (t SegmentationType) Description() string {
	switch t {
	case SegmentationTypeNotIndicated:
		return "Not Indicated"
	case SegmentationTypeContentIdentification:
		return "Content Identification"
	case SegmentationTypeProgramStart:
		return "Program Start"
	case SegmentationTypeProgramEnd:
		return "Program End"
	case SegmentationTypeProgramEarlyTermination:
		return "Program Early Termination"
	case SegmentationTypeProgramBreakaway:
		return "Program Breakaway"
	case SegmentationTypeProgramResumption:
		return "Program Resumption"
	case SegmentationTypeProgramRunoverPlanned:
		return "Program Runover Planned"
	case SegmentationTypeProgramRunoverUnplanned:
		return "Program Runover Unplanned"
	case SegmentationTypeProgramOverlapStart:
		return "Program Overlap Start"
	case SegmentationTypeProgramBlackoutOverride:
		return "Program Blackout Override"
	case SegmentationTypeProgramJoin:
		return "Program Join"
	case SegmentationTypeChapterStart:
		return "Chapter Start"
	case SegmentationTypeChapterEnd:
		return "Chapter End"
	case SegmentationTypeBreakStart:
		return "Break Start"
	case SegmentationTypeBreakEnd:
		return "Break End"
	case SegmentationTypeOpeningCreditStartDeprecated:
		return "Opening Credit Start (Deprecated)"
	case SegmentationTypeOpeningCreditEndDeprecated:
		return "Opening Credit End (Deprecated)"
	case SegmentationTypeClosingCreditStartDeprecated:
		return "Closing Credit Start (Deprecated)"
	case SegmentationTypeClosingCreditEndDeprecated:
		return "Closing Credit End (Deprecated)"
	case SegmentationTypeProviderAdvertisementStart:
		return "Provider Advertisement Start"
	case SegmentationTypeProviderAdvertisementEnd:
		return "Provider Advertisement End"
	case SegmentationTypeDistributorAdvertisementStart:
		return "Distributor Advertisement Start"
	case SegmentationTypeDistributorAdvertisementEnd:
		return "Distributor Advertisement End"
	case SegmentationTypeProviderPlacementOpportunityStart:
		return "Provider Placement Opportunity Start"
	case SegmentationTypeProviderPlacementOpportunityEnd:
		return "Provider Placement Opportunity End"
	case SegmentationTypeDistributorPlacementOpportunityStart:
		return "Distributor Placement Opportunity Start"
	case SegmentationTypeDistributorPlacementOpportunityEnd:
		return "Distributor Placement Opportunity End"
	case SegmentationTypeProviderOverlayPlacementOpportunityStart:
		return "Provider Overlay Placement Opportunity Start"
	case SegmentationTypeProviderOverlayPlacementOpportunityEnd:
		return "Provider Overlay Placement Opportunity End"
	case SegmentationTypeDistributorOverlayPlacementOpportunityStart:
		return "Distributor Overlay Placement Opportunity Start"
	case SegmentationTypeDistributorOverlayPlacementOpportunityEnd:
		return "Distributor Overlay Placement Opportunity End"
	case SegmentationTypeProviderPromoStart:
		return "Provider Promo Start"
	case SegmentationTypeProviderPromoEnd:
		return "Provider Promo End"
	case SegmentationTypeDistributorPromoStart:
		return "Distributor Promo Start"
	case SegmentationTypeDistributorPromoEnd:
		return "Distributor Promo End"
	case SegmentationTypeUnscheduledEventStart:
		return "Unscheduled Event Start"
	case SegmentationTypeUnscheduledEventEnd:
		return "Unscheduled Event End"
	case SegmentationTypeAlternateContentOpportunityStart:
		return "Alternate Content Opportunity Start"
	case SegmentationTypeAlternateContentOpportunityEnd:
		return "Alternate Content Opportunity End"
	case SegmentationTypeProviderAdBlockStart:
		return "Provider Ad Block Start"
	case SegmentationTypeProviderAdBlockEnd:
		return "Provider Ad Block End"
	case SegmentationTypeDistributorAdBlockStart:
		return "Distributor Ad Block Start"
	case SegmentationTypeDistributorAdBlockEnd:
		return "Distributor Ad Block End"
	case SegmentationTypeNetworkStart:
		return "Network Start"
	case SegmentationTypeNetworkEnd:
		return "Network End"
	default:
		return fmt.Sprintf("Reserved/Unknown (0x%02x)", uint8(t))
	}
}
