package bufdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wirebyte/bytebuf"
)

func TestDump(t *testing.T) {
	require := require.New(t)

	b := bytebuf.NewFromBytes([]byte("ABCD"))
	require.NoError(b.SetReaderIndex(1))

	var out bytes.Buffer
	require.NoError(Dump(b, &out))
	report := out.String()

	require.Contains(report, "capacity = 4")
	require.Contains(report, "readerIndex = 1")
	require.Contains(report, "writerIndex = 4")
	require.Contains(report, "discarded = 1, readable = 3, writable = 0")
	require.Contains(report, "discarded bytes [0, 1):")
	require.Contains(report, "readable bytes [1, 4):")
	require.Contains(report, "writable window [4, 4):")
	require.Contains(report, "|BCD|")
	require.Contains(report, "(empty)")
}

func TestDumpNonPrintable(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	require.NoError(DumpBytes([]byte{0x00, 'A', 0x7F}, &out))

	require.Contains(out.String(), "|.A.|")
}

func TestDumpRowSplitting(t *testing.T) {
	require := require.New(t)

	data := bytes.Repeat([]byte{0xAB}, 20)
	var out bytes.Buffer
	require.NoError(DumpBytes(data, &out))

	report := out.String()
	// 20 readable bytes split across two rows of at most 16
	require.Contains(report, "000000")
	require.Contains(report, "000010")
	require.Equal(2, strings.Count(report, "|"+strings.Repeat(".", 16)+"|")+strings.Count(report, "|"+strings.Repeat(".", 4)+"|"))
}

func TestDumpEmptyBuffer(t *testing.T) {
	require := require.New(t)

	var out bytes.Buffer
	require.NoError(Dump(bytebuf.New(), &out))

	report := out.String()
	require.Contains(report, "capacity = 0")
	require.Equal(3, strings.Count(report, "(empty)"))
}
