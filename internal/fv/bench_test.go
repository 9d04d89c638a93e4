package fv_test

import (
	"math"
	"testing"

	"github.com/san-kum/advect/internal/fv"
	"github.com/san-kum/advect/internal/schemes"
)

func benchState(n int) fv.State {
	s := make(fv.State, n)
	for i := range s {
		s[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}
	return s
}

func BenchmarkStepUpwind1k(b *testing.B) {
	stepper, _ := fv.NewPeriodicStepper(1024, 1.0/1024, schemes.NewUpwind())
	x := benchState(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _ = stepper.Step(x, 0.0001, 1.0)
	}
}

func BenchmarkStepLaxWendroff1k(b *testing.B) {
	stepper, _ := fv.NewPeriodicStepper(1024, 1.0/1024, schemes.NewLaxWendroff())
	x := benchState(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _ = stepper.Step(x, 0.0001, 1.0)
	}
}

func BenchmarkStepUpwind64k(b *testing.B) {
	n := 1 << 16
	stepper, _ := fv.NewPeriodicStepper(n, 1.0/float64(n), schemes.NewUpwind())
	x := benchState(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, _ = stepper.Step(x, 1e-6, 1.0)
	}
}
