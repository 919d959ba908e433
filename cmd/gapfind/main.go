package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/henderiw/gapfinder/pkg/geometry"
	"github.com/henderiw/gapfinder/pkg/sweep"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/labels"
)

type config struct {
	input      string
	maxSize    int
	row        int
	multiplier int
	selector   string
	timeout    time.Duration
}

var errAnomaly = errors.New("more than one uncovered position")

func main() {
	os.Exit(gapfind())
}

func gapfind() int {
	var cfg config
	flag.StringVar(&cfg.input, "input", "input.txt", "file with one sensor reading per line")
	flag.IntVar(&cfg.maxSize, "max", 4000000, "upper bound of both coordinates of the searched domain")
	flag.IntVar(&cfg.row, "row", 2000000, "row on which covered positions are counted")
	flag.IntVar(&cfg.multiplier, "multiplier", 4000000, "x multiplier of the tuning frequency")
	flag.StringVar(&cfg.selector, "selector", "", "label selector picking the sensors to use")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "abort the sweep after this long, 0 disables")
	verbose := flag.Bool("v", false, "log sweep progress")
	prof := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		log.WithError(err).Error("gapfind failed")
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config, log logrus.FieldLogger, out io.Writer) error {
	selector, err := labels.Parse(cfg.selector)
	if err != nil {
		return errors.Wrap(err, "parsing selector")
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer f.Close()

	readings, err := parseReadings(f)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", cfg.input)
	}
	sensors, beacons := geometry.Split(readings)
	log.WithFields(logrus.Fields{
		"sensors": len(sensors),
		"beacons": len(beacons),
	}).Info("loaded readings")

	covered, err := sweep.CountCovered(cfg.row, sensors, beacons, selector)
	if err != nil {
		return errors.Wrap(err, "counting covered positions")
	}
	fmt.Fprintf(out, "covered positions on row %d: %d\n", cfg.row, covered)

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}
	s, err := sweep.New(cfg.maxSize, sensors, beacons, sweep.Options{
		Selector: selector,
		Logger:   log,
	})
	if err != nil {
		return errors.Wrap(err, "preparing sweep")
	}
	res, err := s.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "sweeping")
	}
	log.WithFields(logrus.Fields{
		"stoppedAt":  res.StoppedAt,
		"terminated": res.Terminated,
		"rows":       res.MaxRetainedRows,
	}).Info("sweep done")

	// an early stop leaves the rows after the reported one unchecked, so a
	// unique point below is only unique within its own row
	if res.Terminated && len(res.Points) > 0 {
		fmt.Fprintf(out, "sweep stopped at row %d, only row %d was searched for uncovered positions\n",
			res.StoppedAt, res.Points[0].Y)
	}
	if p, ok := res.Unique(); ok {
		fmt.Fprintf(out, "uncovered position: %s\n", p)
		fmt.Fprintf(out, "tuning frequency: %d\n", sweep.TuningFrequency(p, cfg.multiplier))
		return nil
	}
	if len(res.Points) == 0 {
		fmt.Fprintln(out, "no uncovered position")
		return nil
	}
	for _, p := range res.Points {
		fmt.Fprintf(out, "uncovered position: %s\n", p)
	}
	return errors.Wrapf(errAnomaly, "found %d", len(res.Points))
}
