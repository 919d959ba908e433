package sweep

import (
	"github.com/henderiw/gapfinder/pkg/geometry"
	"github.com/henderiw/gapfinder/pkg/interval"
)

// Result holds the uncovered points found by a sweep, ordered by row and
// then by column. When Terminated is set the points all come from the one
// row that stopped the sweep; rows after it were never checked.
type Result struct {
	Points []geometry.Point

	// Terminated is set when the sweep stopped before the last row.
	Terminated bool

	// StoppedAt is the row being processed when the sweep ended.
	StoppedAt int

	// MaxRetainedRows is the largest number of rows held at once.
	MaxRetainedRows int
}

func (r *Result) add(y int, row *interval.Set[int]) {
	for x := range row.Positions() {
		r.Points = append(r.Points, geometry.Point{X: x, Y: y})
	}
}

// Unique returns the uncovered point when exactly one was found. After an
// early stop this only means the point is alone on its row: other rows may
// still hold uncovered positions.
func (r *Result) Unique() (geometry.Point, bool) {
	if len(r.Points) != 1 {
		return geometry.Point{}, false
	}
	return r.Points[0], true
}

// TuningFrequency combines the coordinates of p into a single score.
func TuningFrequency(p geometry.Point, multiplier int) int {
	return p.X*multiplier + p.Y
}
