package locus_test

import (
	"testing"

	"github.com/katalvlaran/planar/locus"
	"github.com/katalvlaran/planar/vec"
)

// BenchmarkIntersect_CircleCircle measures the generic two-point crossing.
func BenchmarkIntersect_CircleCircle(b *testing.B) {
	c0 := locus.Circle{C: vec.Zero, R: 1}
	c1 := locus.Circle{C: vec.Vector{X: 1, Y: 0}, R: 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = locus.Intersect(c0, c1)
	}
}

// BenchmarkMeet_Fold measures a small multi-locus meet, the solver's inner
// loop shape.
func BenchmarkMeet_Fold(b *testing.B) {
	circles := []locus.Locus{
		locus.Circle{C: vec.Zero, R: 2},
		locus.Circle{C: vec.Vector{X: 1, Y: 1}, R: 2},
	}
	line := []locus.Locus{locus.Line{O: vec.Zero, V: vec.PosX, L: vec.NegInf}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = locus.Meet(circles, line)
	}
}
