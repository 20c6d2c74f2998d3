package draw

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// ChunkWriter collects one frame of terminal output and sends it in chunks on
// Flush, so a frame leaves as a few large writes instead of many small ones.
type ChunkWriter struct {
	buf []byte
	out *bufio.Writer
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{out: bufio.NewWriterSize(w, 8192)}
}

// Write buffers p until the next Flush.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString buffers s until the next Flush.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteAt buffers s to be printed at the 1-based position (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.buf = appendCursor(cw.buf, col, row)
	cw.buf = append(cw.buf, s...)
}

// Flush sends everything buffered since the last Flush.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.out, cw.buf)
	cw.buf = cw.buf[:0]
	if err != nil {
		return err
	}
	return cw.out.Flush()
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the process's stdout terminal.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
