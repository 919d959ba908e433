package geometry

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
)

// ErrNegativeReach is returned by Validate for a sensor with a negative reach.
var ErrNegativeReach = errors.New("geometry: negative reach")

// Sensor covers every point within manhattan distance Reach of Center.
type Sensor struct {
	Center Point
	Reach  int
	Labels labels.Set
}

func (s Sensor) String() string {
	return fmt.Sprintf("sensor %s reach %d", s.Center, s.Reach)
}

func (s Sensor) Validate() error {
	if s.Reach < 0 {
		return fmt.Errorf("%w: %d for sensor at %s", ErrNegativeReach, s.Reach, s.Center)
	}
	return nil
}

func (s Sensor) Covers(p Point) bool {
	return s.Center.Dist(p) <= s.Reach
}

// Span returns the columns [lo, hi] the sensor covers on row y. ok is false
// when the row is out of reach.
func (s Sensor) Span(y int) (lo, hi int, ok bool) {
	r := s.Reach - absDiff(y, s.Center.Y)
	if r < 0 {
		return 0, 0, false
	}
	return s.Center.X - r, s.Center.X + r, true
}

// Rows returns the rows the sensor reaches, clamped to [0, maxSize]. The
// returned range is empty (lo > hi) when it does not intersect the domain.
func (s Sensor) Rows(maxSize int) (lo, hi int) {
	return max(s.Center.Y-s.Reach, 0), min(s.Center.Y+s.Reach, maxSize)
}

// Reading is a sensor together with the closest beacon it detected.
type Reading struct {
	Sensor
	Beacon Point
}

// NewReading derives the reach of the sensor at center from the distance
// to its closest beacon.
func NewReading(center, beacon Point, l labels.Set) Reading {
	return Reading{
		Sensor: Sensor{
			Center: center,
			Reach:  center.Dist(beacon),
			Labels: l,
		},
		Beacon: beacon,
	}
}

// Split separates readings into their sensors and the beacons, which are
// occupied positions and can never be the uncovered one.
func Split(readings []Reading) ([]Sensor, []Point) {
	sensors := make([]Sensor, 0, len(readings))
	beacons := make([]Point, 0, len(readings))
	seen := map[Point]struct{}{}
	for _, r := range readings {
		sensors = append(sensors, r.Sensor)
		if _, ok := seen[r.Beacon]; ok {
			continue
		}
		seen[r.Beacon] = struct{}{}
		beacons = append(beacons, r.Beacon)
	}
	return sensors, beacons
}
