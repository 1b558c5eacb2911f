package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripBits(t *testing.T, write func(w *Writer), read func(r *Reader)) {
	t.Helper()
	w := NewWriter()
	write(w)
	buf, err := w.Bytes()
	require.NoError(t, err)
	r := NewReader(buf)
	read(r)
	require.NoError(t, r.Err())
}

func TestSpliceTimeRoundTrip(t *testing.T) {
	in := SpliceTime{TimeSpecifiedFlag: true, PTSTime: 900000}
	roundTripBits(t,
		func(w *Writer) { writeSpliceTime(w, in) },
		func(r *Reader) {
			out := parseSpliceTime(r)
			assert.Equal(t, in, out)
		},
	)
}

func TestSpliceTimeUnspecifiedRoundTrip(t *testing.T) {
	in := SpliceTime{TimeSpecifiedFlag: false}
	roundTripBits(t,
		func(w *Writer) { writeSpliceTime(w, in) },
		func(r *Reader) {
			out := parseSpliceTime(r)
			assert.Equal(t, in, out)
		},
	)
}

func TestInsertCommandWithComponentsRoundTrip(t *testing.T) {
	pts := uint64(123456)
	in := &InsertCommand{
		SpliceEventID:         5,
		OutOfNetworkIndicator: true,
		ProgramSpliceFlag:     false,
		Components: []SpliceInsertComponent{
			{ComponentTag: 1, SpliceTime: &SpliceTime{TimeSpecifiedFlag: true, PTSTime: pts}},
			{ComponentTag: 2},
		},
		UniqueProgramID: 99,
	}
	roundTripBits(t,
		func(w *Writer) { writeInsertCommand(w, in) },
		func(r *Reader) {
			out, err := parseInsertCommand(r)
			require.NoError(t, err)
			assert.Equal(t, in.SpliceEventID, out.SpliceEventID)
			require.Len(t, out.Components, 2)
			assert.Equal(t, uint8(1), out.Components[0].ComponentTag)
			require.NotNil(t, out.Components[0].SpliceTime)
			assert.Equal(t, pts, out.Components[0].SpliceTime.PTSTime)
			assert.Equal(t, uint16(99), out.UniqueProgramID)
		},
	)
}

func TestInsertCommandCancelRoundTrip(t *testing.T) {
	in := &InsertCommand{SpliceEventID: 9, SpliceEventCancelIndicator: true}
	roundTripBits(t,
		func(w *Writer) { writeInsertCommand(w, in) },
		func(r *Reader) {
			out, err := parseInsertCommand(r)
			require.NoError(t, err)
			assert.True(t, out.SpliceEventCancelIndicator)
			assert.Nil(t, out.SpliceTime)
		},
	)
}

func TestScheduleCommandRoundTrip(t *testing.T) {
	in := &ScheduleCommand{Events: []ScheduleEvent{
		{SpliceEventID: 1, ProgramSpliceFlag: true, UTCSpliceTime: 1000, UniqueProgramID: 2},
		{SpliceEventID: 2, SpliceEventCancelIndicator: true},
	}}
	roundTripBits(t,
		func(w *Writer) { writeScheduleCommand(w, in) },
		func(r *Reader) {
			out, err := parseScheduleCommand(r)
			require.NoError(t, err)
			require.Len(t, out.Events, 2)
			assert.Equal(t, uint32(1000), out.Events[0].UTCSpliceTime)
			assert.True(t, out.Events[1].SpliceEventCancelIndicator)
		},
	)
}

func TestPrivateCommandRoundTrip(t *testing.T) {
	in := &PrivateCommand{Identifier: 0x41424344, PrivateBytes: []byte{1, 2, 3}}
	w := NewWriter()
	writePrivateCommand(w, in)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parsePrivateCommand(r, len(buf))
	require.NoError(t, err)
	assert.Equal(t, in.Identifier, out.Identifier)
	assert.Equal(t, in.PrivateBytes, out.PrivateBytes)
}
