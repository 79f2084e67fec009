// Package trace writes the wanderer's event log: one line per move,
// objective, impassable path and advisor choice, in a fixed format that
// reference traces are compared against byte for byte.
package trace

import (
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/katalvlaran/wanderer/gridgraph"
)

// Line formats. Each is newline-terminated when written.
const (
	FormatMoving   = "Moving to %s"
	FormatReached  = "Objective %d reached!"
	LineImpassable = "Path is impassable!"
	FormatChosen   = "Number %d is chosen!"
	lineDelim      = "\n"
)

// Writer writes event lines to an io.Writer. The first write error is kept;
// once set, further writes are dropped and Err reports it.
type Writer struct {
	w     io.Writer
	err   error
	color bool

	moving  color.Style
	reached color.Style
	blocked color.Style
	chosen  color.Style
}

// Option configures a Writer.
type Option func(*Writer)

// WithColor enables ANSI styling of each line. Use only for terminals;
// styled output no longer matches reference traces.
func WithColor(enabled bool) Option {
	return func(tw *Writer) {
		tw.color = enabled
	}
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	tw := &Writer{
		w:       w,
		moving:  color.Style{color.FgGray},
		reached: color.Style{color.FgGreen, color.OpBold},
		blocked: color.Style{color.FgRed, color.OpBold},
		chosen:  color.Style{color.FgMagenta},
	}
	for _, opt := range opts {
		opt(tw)
	}

	return tw
}

// MovingTo records one step onto c.
func (tw *Writer) MovingTo(c gridgraph.Cell) {
	tw.line(tw.moving, fmt.Sprintf(FormatMoving, c))
}

// ObjectiveReached records completion of objective n (1-based).
func (tw *Writer) ObjectiveReached(n int) {
	tw.line(tw.reached, fmt.Sprintf(FormatReached, n))
}

// PathImpassable records a halted or unplannable path.
func (tw *Writer) PathImpassable() {
	tw.line(tw.blocked, LineImpassable)
}

// NumberChosen records the resolution of an advisor offer.
func (tw *Writer) NumberChosen(k int) {
	tw.line(tw.chosen, fmt.Sprintf(FormatChosen, k))
}

// Err returns the first write error, if any.
func (tw *Writer) Err() error {
	return tw.err
}

func (tw *Writer) line(style color.Style, s string) {
	if tw.err != nil {
		return
	}
	if tw.color {
		s = style.Sprint(s)
	}
	_, tw.err = io.WriteString(tw.w, s+lineDelim)
}
