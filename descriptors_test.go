package scte35

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailDescriptorRoundTrip(t *testing.T) {
	d := &SpliceDescriptor{Tag: DescriptorTagAvail, Identifier: identifierCUEI, Avail: &AvailDescriptor{ProviderAvailID: 12345}}
	w := NewWriter()
	writeSpliceDescriptor(w, d)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSpliceDescriptor(r)
	require.NoError(t, err)
	require.NotNil(t, out.Avail)
	assert.Equal(t, uint32(12345), out.Avail.ProviderAvailID)
}

func TestDTMFDescriptorRoundTrip(t *testing.T) {
	d := &SpliceDescriptor{Tag: DescriptorTagDTMF, Identifier: identifierCUEI, DTMF: &DTMFDescriptor{Preroll: 5, DTMFChars: []byte("123")}}
	w := NewWriter()
	writeSpliceDescriptor(w, d)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSpliceDescriptor(r)
	require.NoError(t, err)
	require.NotNil(t, out.DTMF)
	assert.Equal(t, uint8(5), out.DTMF.Preroll)
	assert.Equal(t, []byte("123"), out.DTMF.DTMFChars)
}

func TestAudioDescriptorRoundTrip(t *testing.T) {
	d := &SpliceDescriptor{Tag: DescriptorTagAudio, Identifier: identifierCUEI, Audio: &AudioDescriptor{Components: []AudioComponent{
		{ComponentTag: 1, ISOCode: [3]byte{'e', 'n', 'g'}, BitStreamMode: 0, NumChannels: 2, FullSrvcAudio: true},
	}}}
	w := NewWriter()
	writeSpliceDescriptor(w, d)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSpliceDescriptor(r)
	require.NoError(t, err)
	require.NotNil(t, out.Audio)
	require.Len(t, out.Audio.Components, 1)
	assert.Equal(t, [3]byte{'e', 'n', 'g'}, out.Audio.Components[0].ISOCode)
	assert.True(t, out.Audio.Components[0].FullSrvcAudio)
}

func TestUnknownDescriptorPreservesBytes(t *testing.T) {
	d := &SpliceDescriptor{Tag: DescriptorTag(0x7F), Identifier: identifierCUEI, UnknownBytes: []byte{0xAA, 0xBB}}
	w := NewWriter()
	writeSpliceDescriptor(w, d)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSpliceDescriptor(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, out.UnknownBytes)
}

func TestDescriptorWithForeignIdentifierPreservesBytes(t *testing.T) {
	w := NewWriter()
	w.WriteBits(uint64(DescriptorTagAvail), 8)
	w.WriteBits(8, 8)
	w.WriteBits(0x12345678, 32)
	w.WriteBits(0xDEADBEEF, 32)
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	out, err := parseSpliceDescriptor(r)
	require.NoError(t, err)
	assert.Nil(t, out.Avail)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, out.UnknownBytes)
}
