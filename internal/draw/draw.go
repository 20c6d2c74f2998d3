// Package draw renders to ANSI terminals using a half-block canvas.
package draw

import (
	"io"
	"strconv"
)

// Point is a position in logical coordinates.
type Point struct {
	X, Y float64
}

// Half-block glyphs: each terminal cell holds a top and a bottom pixel.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
	seqResetStyle = "\033[0m"
)

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) { _, _ = io.WriteString(w, seqClear) }

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) { _, _ = io.WriteString(w, seqHideCursor) }

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) { _, _ = io.WriteString(w, seqShowCursor) }

// ResetStyle clears colours and attributes left by styled text.
func ResetStyle(w io.Writer) { _, _ = io.WriteString(w, seqResetStyle) }

// maxChunkSize is the largest single write, sized to fit one TCP segment over ssh.
const maxChunkSize = 1400

// writeChunks writes data in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// appendCursor appends a 1-based cursor position sequence.
func appendCursor(buf []byte, col, row int) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
