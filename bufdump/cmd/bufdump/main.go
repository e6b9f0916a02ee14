// bufdump dumps the contents of a byte sequence as a bytebuf report
//
// with no arguments it reads the sequence from stdin, otherwise from the
// file named by the first argument. the -r and -w flags place the cursors
// before dumping, so a partially consumed buffer can be reproduced.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/wirebyte/bytebuf"
	"github.com/wirebyte/bytebuf/bufdump"
)

var (
	readerIndex = flag.Int("r", 0, "reader index to place before dumping")
	writerIndex = flag.Int("w", -1, "writer index to place before dumping (-1 means end of input)")
)

func main() {
	flag.Parse()

	var (
		data []byte
		err  error
	)

	if flag.NArg() == 0 {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(flag.Arg(0))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	buf := bytebuf.NewFromBytes(data)

	w := *writerIndex
	if w < 0 {
		w = buf.WriterIndex()
	}
	if err := buf.SetIndex(*readerIndex, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := bufdump.Dump(buf, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
