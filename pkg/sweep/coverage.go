package sweep

import (
	"fmt"

	"github.com/henderiw/gapfinder/pkg/geometry"
	"github.com/henderiw/gapfinder/pkg/interval"
	"k8s.io/apimachinery/pkg/labels"
)

// CountCovered returns the number of positions on row y that lie within
// reach of a selected sensor and are not occupied. Every sensor center
// counts as occupied, selected or not. The row is not bounded by a domain.
func CountCovered(y int, sensors []geometry.Sensor, occupied []geometry.Point, selector labels.Selector) (int, error) {
	if selector == nil {
		selector = labels.Everything()
	}

	var spans []interval.Erasure[int]
	lo, hi := 0, -1
	for _, sensor := range sensors {
		if err := sensor.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if !selector.Matches(sensor.Labels) {
			continue
		}
		from, to, ok := sensor.Span(y)
		if !ok {
			continue
		}
		if len(spans) == 0 {
			lo, hi = from, to
		}
		lo, hi = min(lo, from), max(hi, to)
		spans = append(spans, interval.EraseSpan(from, to))
	}
	if len(spans) == 0 {
		return 0, nil
	}

	// whatever is left after erasing every span lies in a gap between them
	gaps, err := interval.New(lo, hi)
	if err != nil {
		return 0, err
	}
	for _, e := range spans {
		gaps.Erase(e)
	}
	covered := hi - lo + 1 - gaps.Len()

	taken := make([]geometry.Point, 0, len(occupied)+len(sensors))
	taken = append(taken, occupied...)
	for _, sensor := range sensors {
		taken = append(taken, sensor.Center)
	}

	seen := map[int]struct{}{}
	for _, p := range taken {
		if p.Y != y || p.X < lo || p.X > hi || gaps.Contains(p.X) {
			continue
		}
		if _, ok := seen[p.X]; ok {
			continue
		}
		seen[p.X] = struct{}{}
		covered--
	}
	return covered, nil
}
