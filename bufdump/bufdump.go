// Package bufdump implements a human readable inspector for bytebuf buffers
//
// the reader is separate from the cli, with the report primarily implemented
// in bufdump.go while the cli is implemented in cmd/bufdump
//
// the report lists the capacity, both cursors and the three regions the
// cursors partition the storage into, followed by a hex and ascii dump of
// each region, which is handy when debugging a codec that leaves a buffer in
// an unexpected state
package bufdump

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/wirebyte/bytebuf"
)

const bytesPerRow = 16

// Dump writes a report of the buffer snapshot to w
func Dump(b *bytebuf.ByteBuf, w io.Writer) error {
	r, wi := b.ReaderIndex(), b.WriterIndex()

	_, err := fmt.Fprintf(w, "capacity = %d\nreaderIndex = %d\nwriterIndex = %d\n",
		b.Cap(), r, wi)
	if err != nil {
		return errors.Wrap(err, "cannot write dump header")
	}

	_, err = fmt.Fprintf(w, "discarded = %d, readable = %d, writable = %d\n",
		r, b.ReadableBytes(), b.WritableBytes())
	if err != nil {
		return errors.Wrap(err, "cannot write dump header")
	}

	store := b.Bytes()

	if err := dumpRegion(w, "discarded bytes", store[:r], 0); err != nil {
		return err
	}
	if err := dumpRegion(w, "readable bytes", store[r:wi], r); err != nil {
		return err
	}
	return dumpRegion(w, "writable window", store[wi:], wi)
}

// DumpBytes reports a raw byte sequence as a fully readable buffer
func DumpBytes(p []byte, w io.Writer) error {
	return Dump(bytebuf.NewFromBytes(p), w)
}

func dumpRegion(w io.Writer, name string, p []byte, base int) error {
	if _, err := fmt.Fprintf(w, "\n%s [%d, %d):\n", name, base, base+len(p)); err != nil {
		return errors.Wrapf(err, "cannot write %s region", name)
	}
	if len(p) == 0 {
		_, err := fmt.Fprintf(w, "\t(empty)\n")
		return errors.Wrapf(err, "cannot write %s region", name)
	}

	for off := 0; off < len(p); off += bytesPerRow {
		row := p[off:]
		if len(row) > bytesPerRow {
			row = row[:bytesPerRow]
		}
		if _, err := fmt.Fprintf(w, "\t%06x  % -48x  |%s|\n", base+off, row, ascii(row)); err != nil {
			return errors.Wrapf(err, "cannot write %s region", name)
		}
	}
	return nil
}

// ascii renders printable bytes as themselves and everything else as a dot,
// the same convention hexdump -C uses
func ascii(p []byte) string {
	out := make([]byte, len(p))
	for i, c := range p {
		if c >= 0x20 && c <= 0x7e {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
