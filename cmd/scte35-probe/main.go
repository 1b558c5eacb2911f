package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/rafaelcaricio/scte35"
)

// Flags
var (
	cpuProfiling    = flag.Bool("cp", false, "if yes, cpu profiling is enabled")
	memoryProfiling = flag.Bool("mp", false, "if yes, memory profiling is enabled")
	format          = flag.String("f", "", "the output format (json or default)")
	inputPath       = flag.String("i", "", "path to a file containing a base64-encoded splice_info_section, or - for stdin")
	skipCRC         = flag.Bool("skip-crc", false, "if yes, crc_32 validation is skipped")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *cpuProfiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memoryProfiling {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	buf, err := readInput()
	if err != nil {
		log.Fatal(fmt.Errorf("scte35-probe: reading input failed: %w", err))
	}

	var opts []scte35.Option
	if *skipCRC {
		opts = append(opts, scte35.WithoutCRCValidation())
	}

	section, err := scte35.Decode(buf, opts...)
	if err != nil {
		log.Fatal(fmt.Errorf("scte35-probe: decoding failed: %w", err))
	}

	switch *format {
	case "json":
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "  ")
		if err := e.Encode(section); err != nil {
			log.Fatal(fmt.Errorf("scte35-probe: json encoding to stdout failed: %w", err))
		}
	default:
		fmt.Println(describe(section))
	}
}

func readInput() ([]byte, error) {
	var r io.Reader
	switch *inputPath {
	case "":
		return nil, errors.New("use -i to indicate an input path, or - for stdin")
	case "-":
		r = os.Stdin
	default:
		f, err := os.Open(*inputPath)
		if err != nil {
			return nil, fmt.Errorf("opening %s failed: %w", *inputPath, err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input failed: %w", err)
	}
	raw = []byte(strings.TrimSpace(string(raw)))

	buf, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("base64 decoding input failed: %w", err)
	}
	return buf, nil
}

func describe(s *scte35.SpliceInfoSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "splice_info_section:\n")
	fmt.Fprintf(&b, "  protocol_version: %d\n", s.ProtocolVersion)
	fmt.Fprintf(&b, "  pts_adjustment: %d (%s)\n", s.PTSAdjustment, scte35.TicksToDuration(s.PTSAdjustment))
	fmt.Fprintf(&b, "  tier: 0x%03x\n", s.Tier)
	fmt.Fprintf(&b, "  command: %s\n", s.Command.Type)
	describeCommand(&b, s)
	fmt.Fprintf(&b, "  descriptors (%d):\n", len(s.Descriptors))
	for _, d := range s.Descriptors {
		fmt.Fprintf(&b, "    - %s\n", describeDescriptor(d))
	}
	return b.String()
}

func describeCommand(b *strings.Builder, s *scte35.SpliceInfoSection) {
	switch {
	case s.Command.Insert != nil:
		c := s.Command.Insert
		fmt.Fprintf(b, "    splice_event_id: %d\n", c.SpliceEventID)
		fmt.Fprintf(b, "    out_of_network: %v\n", c.OutOfNetworkIndicator)
		fmt.Fprintf(b, "    immediate: %v\n", c.SpliceImmediateFlag)
		if c.SpliceTime != nil && c.SpliceTime.TimeSpecifiedFlag {
			fmt.Fprintf(b, "    pts_time: %d (%s)\n", c.SpliceTime.PTSTime, scte35.TicksToDuration(c.SpliceTime.PTSTime))
		}
		if c.BreakDuration != nil {
			fmt.Fprintf(b, "    break_duration: %s (auto_return=%v)\n", scte35.TicksToDuration(c.BreakDuration.Duration), c.BreakDuration.AutoReturn)
		}
	case s.Command.TimeSignal != nil:
		t := s.Command.TimeSignal.SpliceTime
		if t.TimeSpecifiedFlag {
			fmt.Fprintf(b, "    pts_time: %d (%s)\n", t.PTSTime, scte35.TicksToDuration(t.PTSTime))
		}
	}
}

func describeDescriptor(d scte35.SpliceDescriptor) string {
	switch {
	case d.Segmentation != nil:
		sd := d.Segmentation
		return fmt.Sprintf("segmentation_descriptor: event_id=%d type=%s upid=%s(%s)",
			sd.SegmentationEventID, sd.SegmentationTypeID.Description(), sd.UPIDType.Description(), sd.UPID.String())
	case d.Avail != nil:
		return fmt.Sprintf("avail_descriptor: provider_avail_id=%d", d.Avail.ProviderAvailID)
	case d.DTMF != nil:
		return fmt.Sprintf("DTMF_descriptor: preroll=%d chars=%s", d.DTMF.Preroll, string(d.DTMF.DTMFChars))
	case d.Time != nil:
		return fmt.Sprintf("time_descriptor: tai_seconds=%d utc_offset=%d", d.Time.TAISeconds, d.Time.UTCOffset)
	case d.Audio != nil:
		return fmt.Sprintf("audio_descriptor: %d component(s)", len(d.Audio.Components))
	default:
		return fmt.Sprintf("unlisted descriptor tag 0x%02x", uint8(d.Tag))
	}
}
