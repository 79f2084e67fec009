package trace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wanderer/gridgraph"
)

// Recorder keeps event lines in memory, without newlines.
type Recorder struct {
	Lines []string
}

// MovingTo records one step onto c.
func (r *Recorder) MovingTo(c gridgraph.Cell) {
	r.Lines = append(r.Lines, fmt.Sprintf(FormatMoving, c))
}

// ObjectiveReached records completion of objective n.
func (r *Recorder) ObjectiveReached(n int) {
	r.Lines = append(r.Lines, fmt.Sprintf(FormatReached, n))
}

// PathImpassable records a halted or unplannable path.
func (r *Recorder) PathImpassable() {
	r.Lines = append(r.Lines, LineImpassable)
}

// NumberChosen records the resolution of an advisor offer.
func (r *Recorder) NumberChosen(k int) {
	r.Lines = append(r.Lines, fmt.Sprintf(FormatChosen, k))
}

// String joins the lines as a Writer would have written them.
func (r *Recorder) String() string {
	if len(r.Lines) == 0 {
		return ""
	}

	return strings.Join(r.Lines, lineDelim) + lineDelim
}
