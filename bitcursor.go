package scte35

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Reader walks a byte buffer bit by bit, big-endian, high bit first,
// matching the order the SCTE-35 syntax tables list their fields in.
// It never panics on a short read: failures are recorded internally and
// every subsequent read becomes a no-op, so a decoder can perform a whole
// syntax table's worth of reads and check Err once at the end.
type Reader struct {
	r *bitio.CountReader
}

// NewReader creates a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{r: bitio.NewCountReader(bytes.NewReader(buf))}
}

// ReadBits reads the next n bits (1 <= n <= 64) as an unsigned integer.
func (r *Reader) ReadBits(n uint8) uint64 {
	return r.r.TryReadBits(n)
}

// ReadBool reads a single bit as a bool.
func (r *Reader) ReadBool() bool {
	return r.r.TryReadBool()
}

// ReadBytes reads n whole bytes. The cursor must already be byte-aligned.
func (r *Reader) ReadBytes(n int) []byte {
	if r.r.TryError != nil {
		return nil
	}
	if !r.ByteAligned() {
		r.r.TryError = fmt.Errorf("scte35: ReadBytes called at non-byte-aligned bit offset %d", r.PositionBits())
		return nil
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = r.r.TryReadByte()
		if r.r.TryError != nil {
			return nil
		}
	}
	return buf
}

// PositionBits returns the number of bits consumed so far.
func (r *Reader) PositionBits() int64 {
	return r.r.BitsCount
}

// ByteAligned reports whether the cursor sits on a byte boundary.
func (r *Reader) ByteAligned() bool {
	return r.PositionBits()%8 == 0
}

// AlignToByte discards bits up to the next byte boundary.
func (r *Reader) AlignToByte() {
	if rem := r.PositionBits() % 8; rem != 0 {
		r.r.TryReadBits(uint8(8 - rem))
	}
}

// Err returns ErrTruncated if any prior read ran past the end of the
// buffer, wrapping the underlying bitio error for context.
func (r *Reader) Err() error {
	if r.r.TryError != nil {
		return fmt.Errorf("%w: %v", ErrTruncated, r.r.TryError)
	}
	return nil
}

// Writer appends bits to a growing buffer, padding the final byte with
// zeros on Bytes(). Like Reader, it defers error reporting to Err().
type Writer struct {
	buf      *bytes.Buffer
	w        *bitio.Writer
	bitCount int64
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	buf := &bytes.Buffer{}
	return &Writer{buf: buf, w: bitio.NewWriter(buf)}
}

// WriteBits writes the low n bits (1 <= n <= 64) of v.
func (w *Writer) WriteBits(v uint64, n uint8) {
	w.w.TryWriteBits(v, n)
	w.bitCount += int64(n)
}

// WriteBool writes a single bit.
func (w *Writer) WriteBool(v bool) {
	w.w.TryWriteBool(v)
	w.bitCount++
}

// WriteBytes writes b verbatim. The cursor must already be byte-aligned.
func (w *Writer) WriteBytes(b []byte) {
	if w.w.TryError != nil {
		return
	}
	if !w.ByteAligned() {
		w.w.TryError = fmt.Errorf("scte35: WriteBytes called at non-byte-aligned bit offset %d", w.PositionBits())
		return
	}
	for _, by := range b {
		w.w.TryWriteByte(by)
	}
	w.bitCount += int64(len(b)) * 8
}

// PositionBits returns the number of bits written so far.
func (w *Writer) PositionBits() int64 {
	return w.bitCount
}

// ByteAligned reports whether the cursor sits on a byte boundary.
func (w *Writer) ByteAligned() bool {
	return w.PositionBits()%8 == 0
}

// AlignToByte pads the final byte with zero bits.
func (w *Writer) AlignToByte() {
	if rem := w.PositionBits() % 8; rem != 0 {
		w.WriteBits(0, uint8(8-rem))
	}
}

// Err returns any error recorded by a prior write.
func (w *Writer) Err() error {
	return w.w.TryError
}

// Bytes finalizes the writer, padding to a byte boundary, and returns the
// accumulated buffer.
func (w *Writer) Bytes() ([]byte, error) {
	w.AlignToByte()
	if err := w.w.Close(); err != nil && w.w.TryError == nil {
		return nil, err
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// Len returns the number of whole bytes written so far (rounded up).
func (w *Writer) Len() int {
	return int((w.PositionBits() + 7) / 8)
}
