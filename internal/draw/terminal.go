package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Terminal switches a connection in and out of game mode.
type Terminal struct {
	out *termenv.Output
}

// NewTerminal wraps w. Colors are always emitted as 24-bit.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: termenv.NewOutput(w, termenv.WithProfile(termenv.TrueColor))}
}

// Enter switches to the alternate screen, hides the cursor and turns on
// any-motion mouse reports in SGR encoding.
func (t *Terminal) Enter() {
	t.out.AltScreen()
	t.out.HideCursor()
	t.out.EnableMouseAllMotion()
	t.out.EnableMouseExtendedMode()
	t.out.ClearScreen()
}

// Leave restores what Enter changed.
func (t *Terminal) Leave() {
	t.out.DisableMouseExtendedMode()
	t.out.DisableMouseAllMotion()
	t.out.Reset()
	t.out.ClearScreen()
	t.out.ShowCursor()
	t.out.ExitAltScreen()
}

// Clear erases the screen.
func (t *Terminal) Clear() {
	t.out.ClearScreen()
}

// ChunkWriter collects one frame of terminal output and sends it in chunks
// of at most maxChunkSize, which keeps SSH channel writes small.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter on w. The offset is added to every
// cursor position.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor queues a cursor move to the 1-based canvas cell col, row.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString(termenv.CSI)
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer for Canvas.Render.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteAt queues s at the 1-based canvas cell col, row.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// Clear queues a full screen erase ahead of the rest of the frame.
func (cw *ChunkWriter) Clear() {
	cw.buf.WriteString(termenv.CSI + "H" + termenv.CSI + "2J")
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the queued frame and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data[:min(len(data), maxChunkSize)]
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}
