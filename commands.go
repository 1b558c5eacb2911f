package scte35

// This file pairs a parseX/writeX function for every splice command body,
// mirroring the teacher's data_pmt.go/data_pes.go convention of one parse
// function and one matching write function per syntax element.

func parseSpliceTime(r *Reader) SpliceTime {
	var t SpliceTime
	t.TimeSpecifiedFlag = r.ReadBool()
	if t.TimeSpecifiedFlag {
		r.ReadBits(6) // reserved
		t.PTSTime = r.ReadBits(33)
	} else {
		r.ReadBits(7) // reserved
	}
	return t
}

func writeSpliceTime(w *Writer, t SpliceTime) {
	w.WriteBool(t.TimeSpecifiedFlag)
	if t.TimeSpecifiedFlag {
		w.WriteBits(0x3F, 6)
		w.WriteBits(t.PTSTime&Max33Bits, 33)
	} else {
		w.WriteBits(0x7F, 7)
	}
}

func parseBreakDuration(r *Reader) BreakDuration {
	var d BreakDuration
	d.AutoReturn = r.ReadBool()
	r.ReadBits(6) // reserved
	d.Duration = r.ReadBits(33)
	return d
}

func writeBreakDuration(w *Writer, d BreakDuration) {
	w.WriteBool(d.AutoReturn)
	w.WriteBits(0x3F, 6)
	w.WriteBits(d.Duration&Max33Bits, 33)
}

func parseNullCommand(r *Reader) (*NullCommand, error) {
	return &NullCommand{}, r.Err()
}

func writeNullCommand(w *Writer, _ *NullCommand) {}

func parseBandwidthReservationCommand(r *Reader) (*BandwidthReservationCommand, error) {
	return &BandwidthReservationCommand{}, r.Err()
}

func writeBandwidthReservationCommand(w *Writer, _ *BandwidthReservationCommand) {}

func parseTimeSignalCommand(r *Reader) (*TimeSignalCommand, error) {
	c := &TimeSignalCommand{SpliceTime: parseSpliceTime(r)}
	return c, r.Err()
}

func writeTimeSignalCommand(w *Writer, c *TimeSignalCommand) {
	writeSpliceTime(w, c.SpliceTime)
}

func parsePrivateCommand(r *Reader, bodyLen int) (*PrivateCommand, error) {
	c := &PrivateCommand{}
	c.Identifier = uint32(r.ReadBits(32))
	if bodyLen > 4 {
		c.PrivateBytes = r.ReadBytes(bodyLen - 4)
	}
	return c, r.Err()
}

func writePrivateCommand(w *Writer, c *PrivateCommand) {
	w.WriteBits(uint64(c.Identifier), 32)
	w.WriteBytes(c.PrivateBytes)
}

func parseScheduleEvent(r *Reader) (ScheduleEvent, error) {
	var e ScheduleEvent
	e.SpliceEventID = uint32(r.ReadBits(32))
	e.SpliceEventCancelIndicator = r.ReadBool()
	r.ReadBits(7) // reserved
	if !e.SpliceEventCancelIndicator {
		e.OutOfNetworkIndicator = r.ReadBool()
		e.ProgramSpliceFlag = r.ReadBool()
		e.DurationFlag = r.ReadBool()
		r.ReadBits(5) // reserved
		if e.ProgramSpliceFlag {
			e.UTCSpliceTime = uint32(r.ReadBits(32))
		} else {
			count := int(r.ReadBits(8))
			e.Components = make([]ScheduleComponent, count)
			for i := range e.Components {
				e.Components[i].ComponentTag = uint8(r.ReadBits(8))
				e.Components[i].UTCSpliceTime = uint32(r.ReadBits(32))
			}
		}
		if e.DurationFlag {
			d := parseBreakDuration(r)
			e.BreakDuration = &d
		}
		e.UniqueProgramID = uint16(r.ReadBits(16))
		e.AvailNum = uint8(r.ReadBits(8))
		e.AvailsExpected = uint8(r.ReadBits(8))
	}
	return e, r.Err()
}

func writeScheduleEvent(w *Writer, e ScheduleEvent) {
	w.WriteBits(uint64(e.SpliceEventID), 32)
	w.WriteBool(e.SpliceEventCancelIndicator)
	w.WriteBits(0x7F, 7)
	if e.SpliceEventCancelIndicator {
		return
	}
	w.WriteBool(e.OutOfNetworkIndicator)
	w.WriteBool(e.ProgramSpliceFlag)
	w.WriteBool(e.DurationFlag)
	w.WriteBits(0x1F, 5)
	if e.ProgramSpliceFlag {
		w.WriteBits(uint64(e.UTCSpliceTime), 32)
	} else {
		w.WriteBits(uint64(len(e.Components)), 8)
		for _, c := range e.Components {
			w.WriteBits(uint64(c.ComponentTag), 8)
			w.WriteBits(uint64(c.UTCSpliceTime), 32)
		}
	}
	if e.DurationFlag && e.BreakDuration != nil {
		writeBreakDuration(w, *e.BreakDuration)
	}
	w.WriteBits(uint64(e.UniqueProgramID), 16)
	w.WriteBits(uint64(e.AvailNum), 8)
	w.WriteBits(uint64(e.AvailsExpected), 8)
}

func parseScheduleCommand(r *Reader) (*ScheduleCommand, error) {
	c := &ScheduleCommand{}
	count := int(r.ReadBits(8))
	c.Events = make([]ScheduleEvent, count)
	for i := range c.Events {
		e, err := parseScheduleEvent(r)
		if err != nil {
			return nil, err
		}
		c.Events[i] = e
	}
	return c, r.Err()
}

func writeScheduleCommand(w *Writer, c *ScheduleCommand) {
	w.WriteBits(uint64(len(c.Events)), 8)
	for _, e := range c.Events {
		writeScheduleEvent(w, e)
	}
}

func parseInsertCommand(r *Reader) (*InsertCommand, error) {
	c := &InsertCommand{}
	c.SpliceEventID = uint32(r.ReadBits(32))
	c.SpliceEventCancelIndicator = r.ReadBool()
	r.ReadBits(7) // reserved
	if c.SpliceEventCancelIndicator {
		return c, r.Err()
	}

	c.OutOfNetworkIndicator = r.ReadBool()
	c.ProgramSpliceFlag = r.ReadBool()
	c.DurationFlag = r.ReadBool()
	c.SpliceImmediateFlag = r.ReadBool()
	c.EventIDComplianceFlag = r.ReadBool()
	r.ReadBits(3) // reserved

	if c.ProgramSpliceFlag && !c.SpliceImmediateFlag {
		t := parseSpliceTime(r)
		c.SpliceTime = &t
	}
	if !c.ProgramSpliceFlag {
		count := int(r.ReadBits(8))
		c.Components = make([]SpliceInsertComponent, count)
		for i := range c.Components {
			c.Components[i].ComponentTag = uint8(r.ReadBits(8))
			if !c.SpliceImmediateFlag {
				t := parseSpliceTime(r)
				c.Components[i].SpliceTime = &t
			}
		}
	}
	if c.DurationFlag {
		d := parseBreakDuration(r)
		c.BreakDuration = &d
	}
	c.UniqueProgramID = uint16(r.ReadBits(16))
	c.AvailNum = uint8(r.ReadBits(8))
	c.AvailsExpected = uint8(r.ReadBits(8))
	return c, r.Err()
}

func writeInsertCommand(w *Writer, c *InsertCommand) {
	w.WriteBits(uint64(c.SpliceEventID), 32)
	w.WriteBool(c.SpliceEventCancelIndicator)
	w.WriteBits(0x7F, 7)
	if c.SpliceEventCancelIndicator {
		return
	}

	w.WriteBool(c.OutOfNetworkIndicator)
	w.WriteBool(c.ProgramSpliceFlag)
	w.WriteBool(c.DurationFlag)
	w.WriteBool(c.SpliceImmediateFlag)
	w.WriteBool(c.EventIDComplianceFlag)
	w.WriteBits(0x07, 3)

	if c.ProgramSpliceFlag && !c.SpliceImmediateFlag && c.SpliceTime != nil {
		writeSpliceTime(w, *c.SpliceTime)
	}
	if !c.ProgramSpliceFlag {
		w.WriteBits(uint64(len(c.Components)), 8)
		for _, comp := range c.Components {
			w.WriteBits(uint64(comp.ComponentTag), 8)
			if !c.SpliceImmediateFlag {
				// A nil SpliceTime is written as a splice_time() with
				// time_specified_flag == 0, since the field is always on
				// the wire for a non-immediate component splice.
				var t SpliceTime
				if comp.SpliceTime != nil {
					t = *comp.SpliceTime
				}
				writeSpliceTime(w, t)
			}
		}
	}
	if c.DurationFlag && c.BreakDuration != nil {
		writeBreakDuration(w, *c.BreakDuration)
	}
	w.WriteBits(uint64(c.UniqueProgramID), 16)
	w.WriteBits(uint64(c.AvailNum), 8)
	w.WriteBits(uint64(c.AvailsExpected), 8)
}
