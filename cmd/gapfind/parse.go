package main

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/henderiw/gapfinder/pkg/geometry"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/labels"
)

var readingRx = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)(?:\s+labels:\s*(\S+))?$`)

// parseReadings reads one sensor reading per line. Empty lines are skipped.
func parseReadings(r io.Reader) ([]geometry.Reading, error) {
	var readings []geometry.Reading
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		reading, err := parseReading(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		readings = append(readings, reading)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return readings, nil
}

func parseReading(line string) (geometry.Reading, error) {
	m := readingRx.FindStringSubmatch(line)
	if m == nil {
		return geometry.Reading{}, errors.Errorf("malformed reading %q", line)
	}
	var coords [4]int
	for i := range coords {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return geometry.Reading{}, errors.Wrapf(err, "coordinate %q", m[i+1])
		}
		coords[i] = v
	}
	var l labels.Set
	if m[5] != "" {
		set, err := labels.ConvertSelectorToLabelsMap(m[5])
		if err != nil {
			return geometry.Reading{}, errors.Wrapf(err, "labels %q", m[5])
		}
		l = set
	}
	return geometry.NewReading(
		geometry.Point{X: coords[0], Y: coords[1]},
		geometry.Point{X: coords[2], Y: coords[3]},
		l,
	), nil
}
