package sweep

import (
	"context"
	"fmt"
	"math"

	"github.com/henderiw/gapfinder/pkg/geometry"
	"github.com/henderiw/gapfinder/pkg/interval"
	"github.com/henderiw/gapfinder/pkg/rowtable"
	"github.com/sirupsen/logrus"
)

type Sweep struct {
	maxSize  int
	maxReach int
	// sensors and occupied columns, keyed by the row they are applied on
	sensors  map[int][]geometry.Sensor
	occupied map[int][]int
	log      logrus.FieldLogger
}

type rowStore = rowtable.Table[*interval.Set[int]]

// New prepares a sweep of the domain [0, maxSize]² over the sensors
// matching opts.Selector. occupied points are never reported as uncovered.
func New(maxSize int, sensors []geometry.Sensor, occupied []geometry.Point, opts Options) (*Sweep, error) {
	if maxSize < 0 {
		return nil, fmt.Errorf("%w: max size %d is negative", ErrInvalidInput, maxSize)
	}
	// the row count maxSize+1 must fit in an int
	if maxSize == math.MaxInt {
		return nil, fmt.Errorf("%w: max size %d is too large", ErrInvalidInput, maxSize)
	}
	opts = opts.withDefaults()

	s := &Sweep{
		maxSize:  maxSize,
		sensors:  map[int][]geometry.Sensor{},
		occupied: map[int][]int{},
		log:      opts.Logger,
	}

	for _, sensor := range sensors {
		if err := sensor.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if !opts.Selector.Matches(sensor.Labels) {
			continue
		}
		s.maxReach = max(s.maxReach, sensor.Reach)
		// a center outside the domain is applied on the nearest domain row,
		// which still happens before any row it reaches is released
		y := min(max(sensor.Center.Y, 0), maxSize)
		s.sensors[y] = append(s.sensors[y], sensor)
	}
	for _, p := range occupied {
		if p.Y < 0 || p.Y > maxSize {
			continue
		}
		s.occupied[p.Y] = append(s.occupied[p.Y], p.X)
	}
	return s, nil
}

// MaxReach returns the largest reach over the selected sensors.
func (s *Sweep) MaxReach() int { return s.maxReach }

// Run sweeps the rows in ascending order. It stops at the first row found
// to hold uncovered positions once that row can no longer change.
// Otherwise every row left with uncovered positions at the end is reported.
// Each call works on its own row table.
func (s *Sweep) Run(ctx context.Context) (*Result, error) {
	rows := rowtable.NewTable[*interval.Set[int]](int64(s.maxSize) + 1)
	res := &Result{}

	for y := 0; y <= s.maxSize; y++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		done, err := s.prune(rows, y-s.maxReach-1, res)
		if err != nil {
			return nil, err
		}
		if done {
			res.Terminated = true
			res.StoppedAt = y
			res.MaxRetainedRows = rows.HighWater()
			return res, nil
		}

		row, err := s.row(rows, y)
		if err != nil {
			return nil, err
		}
		for _, x := range s.occupied[y] {
			row.ErasePoint(x)
		}
		for _, sensor := range s.sensors[y] {
			if err := s.apply(rows, sensor); err != nil {
				return nil, err
			}
		}
	}

	res.StoppedAt = s.maxSize
	it := rows.Iterate()
	for it.Next() {
		if it.Value().IsEmpty() {
			continue
		}
		res.add(int(it.ID()), it.Value())
	}
	res.MaxRetainedRows = rows.HighWater()
	s.log.WithFields(logrus.Fields{
		"rows":   rows.Count(),
		"points": len(res.Points),
	}).Debug("sweep completed")
	return res, nil
}

// prune releases row y once every sensor reaching it has been applied.
// It reports true when the row still holds uncovered positions.
func (s *Sweep) prune(rows rowStore, y int, res *Result) (bool, error) {
	if y < 0 || !rows.Has(int64(y)) {
		return false, nil
	}
	row, err := rows.Get(int64(y))
	if err != nil {
		return false, err
	}
	if !row.IsEmpty() {
		s.log.WithFields(logrus.Fields{
			"row":       y,
			"remaining": row.Len(),
			"intervals": row.String(),
		}).Debug("row has uncovered positions")
		res.add(y, row)
		return true, nil
	}
	return false, rows.Release(int64(y))
}

func (s *Sweep) row(rows rowStore, y int) (*interval.Set[int], error) {
	return rows.ClaimOrGet(int64(y), func() (*interval.Set[int], error) {
		return interval.New(0, s.maxSize)
	})
}

// apply erases the coverage of sensor from every row it reaches.
func (s *Sweep) apply(rows rowStore, sensor geometry.Sensor) error {
	lo, hi := sensor.Rows(s.maxSize)
	for y := lo; y <= hi; y++ {
		from, to, ok := sensor.Span(y)
		if !ok {
			continue
		}
		row, err := s.row(rows, y)
		if err != nil {
			return err
		}
		row.EraseRange(from, to)
	}
	s.log.WithFields(logrus.Fields{
		"sensor": sensor.Center.String(),
		"reach":  sensor.Reach,
		"rows":   fmt.Sprintf("%d-%d", lo, hi),
	}).Debug("sensor applied")
	return nil
}
