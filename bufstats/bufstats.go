// Package bufstats implements optional instrumentation for bytebuf buffers
//
// it records the size distribution of writes and the capacities reached by
// storage reallocations in hdr histograms, which is useful when tuning the
// initial capacity of buffers on a hot encode path
package bufstats

import (
	"github.com/codahale/hdrhistogram"

	"github.com/wirebyte/bytebuf"
)

// histogram bounds, values above are clamped rather than dropped
const (
	maxTrackedWrite    = 1 << 20
	maxTrackedCapacity = 1 << 30
	sigfigs            = 3
)

// Recorder accumulates write and growth observations. Like the buffer it
// instruments, a Recorder is not safe for concurrent use.
type Recorder struct {
	writes *hdrhistogram.Histogram
	caps   *hdrhistogram.Histogram
	grows  int64
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{
		writes: hdrhistogram.New(1, maxTrackedWrite, sigfigs),
		caps:   hdrhistogram.New(1, maxTrackedCapacity, sigfigs),
	}
}

func (r *Recorder) record(n, beforeCap, afterCap int) {
	r.observe(r.writes, int64(n), maxTrackedWrite)
	if afterCap != beforeCap {
		r.grows++
		r.observe(r.caps, int64(afterCap), maxTrackedCapacity)
	}
}

func (r *Recorder) observe(h *hdrhistogram.Histogram, v, limit int64) {
	if v < 1 {
		v = 1
	}
	if v > limit {
		v = limit
	}
	// cannot fail after clamping to the histogram bounds
	_ = h.RecordValue(v)
}

// Writes returns the number of recorded write operations
func (r *Recorder) Writes() int64 { return r.writes.TotalCount() }

// Growths returns the number of writes that forced a storage reallocation
func (r *Recorder) Growths() int64 { return r.grows }

// WriteSizeAtQuantile returns the write size in bytes at quantile q in
// [0, 100]
func (r *Recorder) WriteSizeAtQuantile(q float64) int64 {
	return r.writes.ValueAtQuantile(q)
}

// MaxWriteSize returns the largest recorded write size in bytes
func (r *Recorder) MaxWriteSize() int64 { return r.writes.Max() }

// MeanWriteSize returns the mean recorded write size in bytes
func (r *Recorder) MeanWriteSize() float64 { return r.writes.Mean() }

// MaxCapacity returns the largest capacity reached by a recorded growth
func (r *Recorder) MaxCapacity() int64 { return r.caps.Max() }

// Reset discards all recorded observations
func (r *Recorder) Reset() {
	r.writes.Reset()
	r.caps.Reset()
	r.grows = 0
}

// Instrumented wraps a ByteBuf and records every successful write codec call
// into a Recorder. Reads, cursor moves and views pass through untouched.
type Instrumented struct {
	*bytebuf.ByteBuf
	rec *Recorder
}

// Wrap instruments b with r
func Wrap(b *bytebuf.ByteBuf, r *Recorder) *Instrumented {
	return &Instrumented{ByteBuf: b, rec: r}
}

// Recorder returns the Recorder observations are written to
func (i *Instrumented) Recorder() *Recorder { return i.rec }

// WriteBool records a 1 byte write
func (i *Instrumented) WriteBool(v bool) error {
	before := i.ByteBuf.Cap()
	if err := i.ByteBuf.WriteBool(v); err != nil {
		return err
	}
	i.rec.record(1, before, i.ByteBuf.Cap())
	return nil
}

// WriteByte records a 1 byte write
func (i *Instrumented) WriteByte(v byte) error {
	before := i.ByteBuf.Cap()
	if err := i.ByteBuf.WriteByte(v); err != nil {
		return err
	}
	i.rec.record(1, before, i.ByteBuf.Cap())
	return nil
}

// WriteShort records a 2 byte write
func (i *Instrumented) WriteShort(v int16) error {
	before := i.ByteBuf.Cap()
	if err := i.ByteBuf.WriteShort(v); err != nil {
		return err
	}
	i.rec.record(2, before, i.ByteBuf.Cap())
	return nil
}

// WriteMedium records a 3 byte write
func (i *Instrumented) WriteMedium(v int32) error {
	before := i.ByteBuf.Cap()
	if err := i.ByteBuf.WriteMedium(v); err != nil {
		return err
	}
	i.rec.record(3, before, i.ByteBuf.Cap())
	return nil
}

// WriteBytes records a bulk write of len(p) bytes
func (i *Instrumented) WriteBytes(p []byte) error {
	before := i.ByteBuf.Cap()
	if err := i.ByteBuf.WriteBytes(p); err != nil {
		return err
	}
	i.rec.record(len(p), before, i.ByteBuf.Cap())
	return nil
}

// Write implements io.Writer over the recording WriteBytes, so writes
// through the io.Writer surface are observed too
func (i *Instrumented) Write(p []byte) (int, error) {
	if err := i.WriteBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
