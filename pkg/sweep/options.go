package sweep

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/labels"
)

// ErrInvalidInput indicates a negative domain size or sensor reach.
var ErrInvalidInput = errors.New("sweep: invalid input")

// Options tunes a sweep.
type Options struct {
	// Selector picks the sensors taking part in the sweep by their labels.
	Selector labels.Selector
	// Logger receives debug events about pruned and leftover rows.
	Logger   logrus.FieldLogger
}

// DefaultOptions selects every sensor and discards log output.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Options{
		Selector: labels.Everything(),
		Logger:   l,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Selector == nil {
		o.Selector = d.Selector
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}
