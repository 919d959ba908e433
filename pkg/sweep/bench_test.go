package sweep_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/henderiw/gapfinder/pkg/geometry"
	"github.com/henderiw/gapfinder/pkg/sweep"
)

// BenchmarkRun sweeps a 100000×100000 domain covered by 40 random sensors.
// Memory stays bounded by the largest reach rather than the domain.
func BenchmarkRun(b *testing.B) {
	const size = 100_000
	rnd := rand.New(rand.NewSource(42))
	sensors := make([]geometry.Sensor, 0, 40)
	for i := 0; i < 40; i++ {
		sensors = append(sensors, geometry.Sensor{
			Center: geometry.Point{X: rnd.Intn(size), Y: rnd.Intn(size)},
			Reach:  size/8 + rnd.Intn(size/8),
		})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := sweep.New(size, sensors, nil, sweep.DefaultOptions())
		if err != nil {
			b.Fatalf("setup New failed: %v", err)
		}
		if _, err := s.Run(context.Background()); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}
