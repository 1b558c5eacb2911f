package scte35

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

var crc32TestVectors = []struct {
	name string
	b64  string
}{
	{name: "splice_null", b64: "/DARAAAAAAAAAP/wAAAAAHpPv/8="},
	{name: "splice_insert", b64: "/DAvAAAAAAAA///wFAVIAACPf+/+c2nALv4AUsz1AAAAAAAKAAhDVUVJAAABNWLbowo="},
	{name: "time_signal_segmentation", b64: "/DAnAAAAAAAAAP/wBQb+AA27oAARAg9DVUVJAAAAAX+HCQA0AAE0xUZn"},
	// time_signal, one segmentation descriptor type_id=0x34 with duration
	// present and an 8-byte AiringID UPID.
	{name: "time_signal_airing_id_duration", b64: "/DA0AAAAAAAA///wBQb+cr0AUAAeAhxDVUVJSAAAjn/PAAGlmbAICAAAAAAsoKGKNAIAmsnRfg=="},
	// time_signal, two segmentation descriptors (Program End then Program
	// Start), both with AiringID UPIDs.
	{name: "time_signal_two_airing_id_segments", b64: "/DBIAAAAAAAA///wBQb+ek2ItgAyAhdDVUVJSAAAGH+fCAgAAAAALMvDRBEAAAIXQ1VFSUgAABl/nwgIAAAAACyk26AQAACZcuND"},
}

func TestComputeCRC32(t *testing.T) {
	for _, tt := range crc32TestVectors {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := base64.StdEncoding.DecodeString(tt.b64)
			assert.NoError(t, err)

			stored := binary.BigEndian.Uint32(buf[len(buf)-4:])
			assert.Equal(t, stored, ComputeCRC32(buf[:len(buf)-4]))
		})
	}
}

func TestVerifyCRC32(t *testing.T) {
	for _, tt := range crc32TestVectors {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := base64.StdEncoding.DecodeString(tt.b64)
			assert.NoError(t, err)
			assert.True(t, VerifyCRC32(buf))

			corrupted := append([]byte{}, buf...)
			corrupted[0] ^= 0xFF
			assert.False(t, VerifyCRC32(corrupted))
		})
	}
}

func TestVerifyCRC32ShortBuffer(t *testing.T) {
	assert.False(t, VerifyCRC32([]byte{0x01, 0x02}))
}

func BenchmarkComputeCRC32(b *testing.B) {
	buf, _ := base64.StdEncoding.DecodeString(crc32TestVectors[1].b64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ComputeCRC32(buf[:len(buf)-4])
	}
}
