package figure_test

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planar/figure"
)

// mask is a shorthand for building knowledge masks in tests.
func mask(bits ...bool) []bool { return bits }

// pids is a shorthand for point tuples.
func pids(ids ...figure.PID) []figure.PID { return ids }

// TestDistance_Dispatch: one known endpoint targets the other; anything
// else targets nothing.
func TestDistance_Dispatch(t *testing.T) {
	c := figure.Distance{Measure: 10}

	tgts := c.Targets(pids(0, 1), mask(true, false))
	require.Len(t, tgts, 1)
	assert.Equal(t, figure.PID(1), tgts[0].Point)
	assert.Equal(t, figure.DistanceOp{Known: 0, Measure: 10}, tgts[0].Op)

	tgts = c.Targets(pids(0, 1), mask(false, true))
	require.Len(t, tgts, 1)
	assert.Equal(t, figure.PID(0), tgts[0].Point)

	assert.Empty(t, c.Targets(pids(0, 1), mask(true, true)))
	assert.Empty(t, c.Targets(pids(0, 1), mask(false, false)))
	assert.Empty(t, c.Targets(pids(0, 1, 2), mask(true, false, false)), "wrong arity")
}

// TestAngle_Dispatch: vertex+end → the far end, two ends → the vertex.
func TestAngle_Dispatch(t *testing.T) {
	m := unit.Angle(math.Pi / 3)
	c := figure.Angle{Measure: m}

	tgts := c.Targets(pids(0, 1, 2), mask(true, true, false))
	require.Len(t, tgts, 1)
	assert.Equal(t, figure.PID(2), tgts[0].Point)
	assert.Equal(t, figure.AngleEndOp{Vertex: 1, Other: 0, Measure: m}, tgts[0].Op)

	tgts = c.Targets(pids(0, 1, 2), mask(false, true, true))
	require.Len(t, tgts, 1)
	assert.Equal(t, figure.PID(0), tgts[0].Point)
	assert.Equal(t, figure.AngleEndOp{Vertex: 1, Other: 2, Measure: m}, tgts[0].Op)

	tgts = c.Targets(pids(0, 1, 2), mask(true, false, true))
	require.Len(t, tgts, 1)
	assert.Equal(t, figure.PID(1), tgts[0].Point)
	assert.Equal(t, figure.AngleVertexOp{P0: 0, P1: 2, Measure: m}, tgts[0].Op)

	assert.Empty(t, c.Targets(pids(0, 1, 2), mask(true, false, false)))
	assert.Empty(t, c.Targets(pids(0, 1), mask(true, false)), "wrong arity")
}

// TestParallel_Dispatch: first fully-known line is the reference; each
// half-known line targets its unknown endpoint.
func TestParallel_Dispatch(t *testing.T) {
	c := figure.Parallel{}

	// Lines (0,1), (2,3), (4,5): reference plus one target each way round.
	tgts := c.Targets(pids(0, 1, 2, 3, 4, 5), mask(true, true, true, false, false, true))
	require.Len(t, tgts, 2)
	assert.Equal(t, figure.PID(3), tgts[0].Point)
	assert.Equal(t, figure.ParallelOp{P0: 0, P1: 1, Origin: 2}, tgts[0].Op)
	assert.Equal(t, figure.PID(4), tgts[1].Point)
	assert.Equal(t, figure.ParallelOp{P0: 0, P1: 1, Origin: 5}, tgts[1].Op)

	// No fully-known reference line: nothing.
	assert.Empty(t, c.Targets(pids(0, 1, 2, 3), mask(true, false, false, true)))
	// Fully unknown lines are silently skipped.
	assert.Empty(t, c.Targets(pids(0, 1, 2, 3), mask(true, true, false, false)))
	// Odd tuple: malformed.
	assert.Empty(t, c.Targets(pids(0, 1, 2), mask(true, true, false)))
}

// TestPerpendicular_Dispatch: same scan as Parallel, with direction chosen
// by line-index parity against the reference.
func TestPerpendicular_Dispatch(t *testing.T) {
	c := figure.Perpendicular{}

	// Reference line 0; line 1 differs in parity (perpendicular), line 2
	// matches it (parallel).
	tgts := c.Targets(pids(0, 1, 2, 3, 4, 5), mask(true, true, true, false, true, false))
	require.Len(t, tgts, 2)
	assert.Equal(t, figure.PerpendicularOp{P0: 0, P1: 1, Origin: 2}, tgts[0].Op)
	assert.Equal(t, figure.ParallelOp{P0: 0, P1: 1, Origin: 4}, tgts[1].Op)

	// Reference at index 1: line 0 is perpendicular to it.
	tgts = c.Targets(pids(0, 1, 2, 3), mask(true, false, true, true))
	require.Len(t, tgts, 1)
	assert.Equal(t, figure.PID(1), tgts[0].Point)
	assert.Equal(t, figure.PerpendicularOp{P0: 2, P1: 3, Origin: 0}, tgts[0].Op)
}

// TestCollinear_Dispatch: two known points define the line, every unknown
// point is targeted onto it.
func TestCollinear_Dispatch(t *testing.T) {
	c := figure.Collinear{}

	tgts := c.Targets(pids(0, 1, 2, 3), mask(false, true, true, false))
	require.Len(t, tgts, 2)
	assert.Equal(t, figure.PID(0), tgts[0].Point)
	assert.Equal(t, figure.CollinearOp{P0: 1, P1: 2}, tgts[0].Op)
	assert.Equal(t, figure.PID(3), tgts[1].Point)

	assert.Empty(t, c.Targets(pids(0, 1, 2), mask(true, false, false)), "one known is not a line")
}

// TestChirality_Dispatch: the first fully-known triple is the reference;
// half-known triples target their unknown slot with cyclic known pairs.
func TestChirality_Dispatch(t *testing.T) {
	c := figure.Chirality{Polarities: []figure.Polarity{figure.Pro, figure.Pro, figure.Anti}}

	// Triple 0 fully known; triple 1 misses its last point; triple 2 (an
	// Anti triple) misses its middle point.
	tgts := c.Targets(
		pids(0, 1, 2, 3, 4, 5, 6, 7, 8),
		mask(true, true, true, true, true, false, true, false, true),
	)
	require.Len(t, tgts, 2)

	assert.Equal(t, figure.PID(5), tgts[0].Point)
	assert.Equal(t, figure.ChiralityOp{
		Pol: figure.Pro, // same polarity as the reference
		P0:  0, P1: 1, P2: 2,
		P3: 3, P4: 4,
	}, tgts[0].Op)

	assert.Equal(t, figure.PID(7), tgts[1].Point)
	assert.Equal(t, figure.ChiralityOp{
		Pol: figure.Anti, // opposite polarity to the reference
		P0:  0, P1: 1, P2: 2,
		P3: 8, P4: 6, // cyclic pair around the unknown middle slot
	}, tgts[1].Op)

	// No fully-known reference triple: nothing.
	assert.Empty(t, c.Targets(
		pids(0, 1, 2, 3, 4, 5),
		mask(true, true, false, true, true, false),
	))
	// Arity mismatch against the polarity list: malformed.
	assert.Empty(t, c.Targets(pids(0, 1, 2), mask(true, true, true)))
}

// TestDiscretizing: 1D ops discretize, the chirality halfplane does not.
func TestDiscretizing(t *testing.T) {
	assert.True(t, figure.DistanceOp{}.Discretizing())
	assert.True(t, figure.AngleEndOp{}.Discretizing())
	assert.True(t, figure.AngleVertexOp{}.Discretizing())
	assert.True(t, figure.ParallelOp{}.Discretizing())
	assert.True(t, figure.PerpendicularOp{}.Discretizing())
	assert.True(t, figure.CollinearOp{}.Discretizing())
	assert.False(t, figure.ChiralityOp{}.Discretizing())
}

// TestPolarity_String pins the display names.
func TestPolarity_String(t *testing.T) {
	assert.Equal(t, "pro", figure.Pro.String())
	assert.Equal(t, "anti", figure.Anti.String())
}
