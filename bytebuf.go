package bytebuf

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// ByteBuf is a growable byte store partitioned by two cursors into discarded
// bytes [0, readerIndex), readable bytes [readerIndex, writerIndex) and
// writable bytes [writerIndex, capacity).
//
// A ByteBuf is not safe for concurrent use, callers sharing one across
// goroutines must serialize access themselves.
type ByteBuf struct {
	// storage, len(buf) is the capacity and every slot past the write
	// cursor is zero filled
	buf []byte

	rPos     int
	wPos     int
	readOnly bool
}

// compile time check that ByteBuf satisfies the Buffer interface
var _ Buffer = (*ByteBuf)(nil)

// New creates an empty ByteBuf with zero capacity
func New() *ByteBuf {
	return &ByteBuf{}
}

// NewWithCapacity creates a ByteBuf with storage reserved for n bytes, both
// cursors at 0, so nothing is readable yet and n bytes are writable
func NewWithCapacity(n int) *ByteBuf {
	if n < 0 {
		n = 0
	}
	return &ByteBuf{buf: make([]byte, n)}
}

// NewFromBytes creates a ByteBuf holding a copy of p with the entire input
// immediately readable, readerIndex 0 and writerIndex len(p)
func NewFromBytes(p []byte) *ByteBuf {
	buf := make([]byte, len(p))
	copy(buf, p)
	return &ByteBuf{buf: buf, wPos: len(p)}
}

// Cap returns the number of bytes the buffer can contain without growing
func (b *ByteBuf) Cap() int { return len(b.buf) }

// SetCap resizes the storage to exactly n bytes. Growing reallocates with the
// extra capacity zero filled and never moves the cursors. Shrinking below the
// write cursor truncates: the write cursor is clamped to n and the read
// cursor to the clamped write cursor. Rejected on a read-only buffer.
func (b *ByteBuf) SetCap(n int) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "setCapacity"}
	}
	if n < 0 {
		return errNegative("setCapacity", "capacity", n)
	}

	if n == len(b.buf) {
		return nil
	}

	buf := make([]byte, n)
	copy(buf, b.buf)
	b.buf = buf

	if b.wPos > n {
		if logging {
			logger.Debug("shrink truncated written bytes",
				zap.Int("capacity", n),
				zap.Int("writerIndex", b.wPos),
			)
		}
		b.wPos = n
	}
	if b.rPos > b.wPos {
		b.rPos = b.wPos
	}
	return nil
}

// Clear resets both cursors to 0. The capacity is kept as an amortization
// hint and previously written bytes are not erased, only made unreadable.
// Rejected on a read-only buffer since it moves the write cursor.
func (b *ByteBuf) Clear() error {
	if b.readOnly {
		return &ReadOnlyError{Op: "clear"}
	}
	b.rPos = 0
	b.wPos = 0
	return nil
}

// ReadableBytes returns the number of bytes between the read and write
// cursors
func (b *ByteBuf) ReadableBytes() int { return b.wPos - b.rPos }

// WritableBytes returns the number of bytes between the write cursor and the
// capacity, always 0 for a read-only buffer
func (b *ByteBuf) WritableBytes() int {
	if b.readOnly {
		return 0
	}
	return len(b.buf) - b.wPos
}

// IsReadable reports whether at least one byte is readable
func (b *ByteBuf) IsReadable() bool { return b.ReadableBytes() >= 1 }

// CanRead reports whether at least n bytes are readable
func (b *ByteBuf) CanRead(n int) bool { return b.ReadableBytes() >= n }

// IsWritable reports whether at least one byte is writable without growing
func (b *ByteBuf) IsWritable() bool { return b.WritableBytes() >= 1 }

// CanWrite reports whether at least n bytes are writable without growing
func (b *ByteBuf) CanWrite(n int) bool { return b.WritableBytes() >= n }

// Skip advances the read cursor by n bytes
func (b *ByteBuf) Skip(n int) error {
	if n < 0 {
		return errNegative("skipBytes", "length", n)
	}
	if n > b.ReadableBytes() {
		return errSkip(n, b.ReadableBytes())
	}
	b.rPos += n
	return nil
}

// ReaderIndex returns the read cursor
func (b *ByteBuf) ReaderIndex() int { return b.rPos }

// SetReaderIndex moves the read cursor, which may never pass the write
// cursor
func (b *ByteBuf) SetReaderIndex(i int) error {
	if i < 0 {
		return errNegative("setReaderIndex", "readerIndex", i)
	}
	if i > b.wPos {
		return errIndex("setReaderIndex", "readerIndex", i, "writerIndex", b.wPos)
	}
	b.rPos = i
	return nil
}

// WriterIndex returns the write cursor
func (b *ByteBuf) WriterIndex() int { return b.wPos }

// SetWriterIndex moves the write cursor, which may never retreat before the
// read cursor or pass the capacity
func (b *ByteBuf) SetWriterIndex(i int) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "setWriterIndex"}
	}
	if i < b.rPos {
		return errIndex("setWriterIndex", "writerIndex", i, "readerIndex", b.rPos)
	}
	if i > len(b.buf) {
		return errCapacity("setWriterIndex", "writerIndex", i, len(b.buf))
	}
	b.wPos = i
	return nil
}

// SetIndex sets both cursors together. Validation happens before either
// cursor moves, so no intermediate invalid state is observable.
func (b *ByteBuf) SetIndex(r, w int) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "setIndex"}
	}
	if r < 0 {
		return errNegative("setIndex", "readerIndex", r)
	}
	if w < r {
		return errIndex("setIndex", "writerIndex", w, "given readerIndex", r)
	}
	if w > len(b.buf) {
		return errCapacity("setIndex", "writerIndex", w, len(b.buf))
	}
	b.rPos = r
	b.wPos = w
	return nil
}

// READ CODECS
//
// every read checks the readable window first and fails without moving the
// read cursor, so a caller can retry once more data has been written

// ReadBool reads 1 byte, any nonzero value is true
func (b *ByteBuf) ReadBool() (bool, error) {
	if !b.CanRead(1) {
		return false, errReadable("readBoolean", 1, b.ReadableBytes())
	}
	v := b.buf[b.rPos]
	b.rPos++
	return v != 0, nil
}

// ReadByte reads a sign extended 8 bit value
func (b *ByteBuf) ReadByte() (int8, error) {
	if !b.CanRead(1) {
		return 0, errReadable("readByte", 1, b.ReadableBytes())
	}
	v := int8(b.buf[b.rPos])
	b.rPos++
	return v, nil
}

// ReadUnsignedByte reads a zero extended 8 bit value
func (b *ByteBuf) ReadUnsignedByte() (uint8, error) {
	if !b.CanRead(1) {
		return 0, errReadable("readUnsignedByte", 1, b.ReadableBytes())
	}
	v := b.buf[b.rPos]
	b.rPos++
	return v, nil
}

// ReadShort reads a big-endian 16 bit value
func (b *ByteBuf) ReadShort() (int16, error) {
	if !b.CanRead(2) {
		return 0, errReadable("readShort", 2, b.ReadableBytes())
	}
	v := int16(binary.BigEndian.Uint16(b.buf[b.rPos:]))
	b.rPos += 2
	return v, nil
}

// ReadShortLE reads a little-endian 16 bit value
func (b *ByteBuf) ReadShortLE() (int16, error) {
	if !b.CanRead(2) {
		return 0, errReadable("readShortLE", 2, b.ReadableBytes())
	}
	v := int16(binary.LittleEndian.Uint16(b.buf[b.rPos:]))
	b.rPos += 2
	return v, nil
}

// ReadUnsignedShort reads a big-endian unsigned 16 bit value
func (b *ByteBuf) ReadUnsignedShort() (uint16, error) {
	if !b.CanRead(2) {
		return 0, errReadable("readUnsignedShort", 2, b.ReadableBytes())
	}
	v := binary.BigEndian.Uint16(b.buf[b.rPos:])
	b.rPos += 2
	return v, nil
}

// ReadUnsignedShortLE reads a little-endian unsigned 16 bit value
func (b *ByteBuf) ReadUnsignedShortLE() (uint16, error) {
	if !b.CanRead(2) {
		return 0, errReadable("readUnsignedShortLE", 2, b.ReadableBytes())
	}
	v := binary.LittleEndian.Uint16(b.buf[b.rPos:])
	b.rPos += 2
	return v, nil
}

// ReadMedium reads a 24 bit value reconstructed big-endian as
// (b0<<16)|(b1<<8)|b2, always in [0, 1<<24), no sign extension past bit 23
func (b *ByteBuf) ReadMedium() (int32, error) {
	if !b.CanRead(3) {
		return 0, errReadable("readMedium", 3, b.ReadableBytes())
	}
	v := int32(b.buf[b.rPos])<<16 | int32(b.buf[b.rPos+1])<<8 | int32(b.buf[b.rPos+2])
	b.rPos += 3
	return v, nil
}

// WRITE CODECS
//
// a write appends at the write cursor, growing the storage geometrically
// when the writable window is too small

// grow ensures room for n more bytes past the write cursor. New storage is
// allocated zero filled, so resizing never exposes uninitialized bytes to the
// readable window.
func (b *ByteBuf) grow(n int) {
	need := b.wPos + n
	if need <= len(b.buf) {
		return
	}
	newCap := 2 * len(b.buf)
	if newCap < need {
		newCap = 2 * need
	}
	buf := make([]byte, newCap)
	copy(buf, b.buf)
	b.buf = buf
	if logging {
		logger.Debug("grew buffer storage", zap.Int("capacity", newCap), zap.Int("writerIndex", b.wPos))
	}
}

// WriteBool writes 1 byte, 0 or 1
func (b *ByteBuf) WriteBool(v bool) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "writeBoolean"}
	}
	b.grow(1)
	if v {
		b.buf[b.wPos] = 1
	} else {
		b.buf[b.wPos] = 0
	}
	b.wPos++
	return nil
}

// WriteByte writes a single byte
func (b *ByteBuf) WriteByte(v byte) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "writeByte"}
	}
	b.grow(1)
	b.buf[b.wPos] = v
	b.wPos++
	return nil
}

// WriteShort writes 16 bits big-endian, two's-complement
func (b *ByteBuf) WriteShort(v int16) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "writeShort"}
	}
	b.grow(2)
	binary.BigEndian.PutUint16(b.buf[b.wPos:], uint16(v))
	b.wPos += 2
	return nil
}

// WriteMedium writes the low 24 bits of v big-endian, bits 16-23, 8-15 and
// 0-7 in that order
func (b *ByteBuf) WriteMedium(v int32) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "writeMedium"}
	}
	b.grow(3)
	b.buf[b.wPos] = byte(v >> 16)
	b.buf[b.wPos+1] = byte(v >> 8)
	b.buf[b.wPos+2] = byte(v)
	b.wPos += 3
	return nil
}

// WriteBytes appends a copy of p at the write cursor
func (b *ByteBuf) WriteBytes(p []byte) error {
	if b.readOnly {
		return &ReadOnlyError{Op: "writeBytes"}
	}
	b.grow(len(p))
	copy(b.buf[b.wPos:], p)
	b.wPos += len(p)
	return nil
}

// Write implements io.Writer over WriteBytes
func (b *ByteBuf) Write(p []byte) (int, error) {
	if err := b.WriteBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// VIEWS
//
// views are copies, never aliases, a returned slice does not observe later
// mutation of the buffer and writing into it does not reach the buffer

// Bytes returns an independent copy of the entire backing store, not just
// the readable window
func (b *ByteBuf) Bytes() []byte {
	p := make([]byte, len(b.buf))
	copy(p, b.buf)
	return p
}

// ReadableView returns an independent copy of exactly the readable window
// [readerIndex, writerIndex)
func (b *ByteBuf) ReadableView() []byte {
	p := make([]byte, b.ReadableBytes())
	copy(p, b.buf[b.rPos:b.wPos])
	return p
}

// AsReadOnly returns a new read-only buffer holding an independent copy of
// the full storage with both cursors reset to 0. It does not observe future
// mutation of the source and the source stays writable.
func (b *ByteBuf) AsReadOnly() *ByteBuf {
	buf := make([]byte, len(b.buf))
	copy(buf, b.buf)
	return &ByteBuf{buf: buf, readOnly: true}
}

// IsReadOnly reports whether the buffer rejects writes
func (b *ByteBuf) IsReadOnly() bool { return b.readOnly }
