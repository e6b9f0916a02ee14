// Package bytebuf implements a netty like byte buffer for go
//
// initially tried to use bytes.Buffer but the main restriction with that is
// that reading always consumes from the front and writing always appends at
// the end, with no way to inspect or move either position independently
//
// another attempt was to keep two integer offsets beside a plain slice and
// pass them to every codec helper, which resulted in calls like
//
//	val, rpos, err = readShort(buf, rpos)
//
// which became unmaintainable after a while
//
// this implements a buffer with two independent cursors, a read position and
// a write position, that partition the storage into discarded, readable and
// writable regions, with every operation bounds checked against the region
// it touches
package bytebuf

import "io"

// Version is the last tagged version of the package
const Version = "1.0.0"

// Buffer defines an abstraction for a growable byte store with independent
// read and write cursors and fixed width codecs for wire data
type Buffer interface {
	io.Writer

	Cap() int
	SetCap(n int) error
	Clear() error

	ReadableBytes() int
	WritableBytes() int
	IsReadable() bool
	CanRead(n int) bool
	IsWritable() bool
	CanWrite(n int) bool

	Skip(n int) error
	ReaderIndex() int
	SetReaderIndex(i int) error
	WriterIndex() int
	SetWriterIndex(i int) error
	SetIndex(r, w int) error

	ReadBool() (bool, error)
	ReadByte() (int8, error)
	ReadUnsignedByte() (uint8, error)
	ReadShort() (int16, error)
	ReadShortLE() (int16, error)
	ReadUnsignedShort() (uint16, error)
	ReadUnsignedShortLE() (uint16, error)
	ReadMedium() (int32, error)

	WriteBool(v bool) error
	WriteByte(v byte) error
	WriteShort(v int16) error
	WriteMedium(v int32) error
	WriteBytes(p []byte) error

	Bytes() []byte
	ReadableView() []byte
	AsReadOnly() *ByteBuf
}
