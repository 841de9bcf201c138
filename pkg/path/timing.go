// Package path computes per-marker timing for moving platforms and
// resolves trigger-to-marker target times. Everything here is a pure
// function of its inputs; identical input yields identical output, which
// the export pass relies on for deterministic artifacts.
package path

import (
	"github.com/chewxy/math32"

	"github.com/RandomityGuy/io-dif/pkg/dif"
	"github.com/RandomityGuy/io-dif/pkg/interior/catmullrom"
)

const (
	// minSegmentLength is the marker distance below which a segment is
	// treated as an explicit pause instead of a speed-timed move.
	minSegmentLength = 0.01
	// splineArcSteps is the number of uniform parameter steps used to
	// sample a spline segment's arc length.
	splineArcSteps = 20
	// minSegmentMS floors every speed-derived segment duration.
	minSegmentMS = 1
)

// Config is the timing policy of one platform path.
type Config struct {
	// ConstantSpeed selects speed-derived segment durations; otherwise
	// TotalTimeMS is split evenly across segments.
	ConstantSpeed bool
	// Speed is the platform speed in units per second.
	Speed float32
	// TotalTimeMS is the full path duration under the fixed-time policy.
	TotalTimeMS int32
	// StartIndex is the marker the platform starts at (constant speed).
	StartIndex int
	// StartTimeMS is the starting path time (fixed-time policy).
	StartTimeMS int32
	// PauseDurationMS is the duration given to zero-length segments.
	PauseDurationMS int32
	// Reverse starts the platform moving toward the previous marker.
	Reverse bool
}

// ComputeTimings fills in each marker's duration to the next marker
// under the configured policy and returns the adjusted markers together
// with the cumulative time table. The table has one entry per marker
// plus a leading zero; with no markers it degenerates to [0, 0].
func ComputeTimings(markers []dif.WayPoint, cfg Config) ([]dif.WayPoint, []int32) {
	n := len(markers)
	if n == 0 {
		return nil, []int32{0, 0}
	}

	out := make([]dif.WayPoint, n)
	copy(out, markers)

	if cfg.ConstantSpeed {
		for i := 0; i < n-1; i++ {
			out[i].MSToNext = constantSpeedMS(out, i, cfg)
		}
	} else {
		per := cfg.TotalTimeMS / int32(max(n-1, 1))
		for i := 0; i < n-1; i++ {
			out[i].MSToNext = per
		}
	}

	out[n-1].MSToNext = 0

	table := make([]int32, n+1)
	for i := range out {
		table[i+1] = table[i] + out[i].MSToNext
	}

	return out, table
}

// constantSpeedMS times the segment from marker i to i+1. Spline
// segments use sampled arc length over the wrap-around control points;
// near-coincident markers become an explicit pause.
func constantSpeedMS(markers []dif.WayPoint, i int, cfg Config) int32 {
	n := len(markers)

	dist := markers[i+1].Position.Sub(markers[i].Position).Len()
	if dist < minSegmentLength {
		return cfg.PauseDurationMS
	}

	length := dist
	if markers[i].SmoothingType == dif.SmoothingSpline {
		length = catmullrom.ArcLength(
			markers[(i-1+n)%n].Position,
			markers[i].Position,
			markers[i+1].Position,
			markers[(i+2)%n].Position,
			splineArcSteps,
		)
	}

	ms := int32(math32.Round(length / (cfg.Speed / 1000)))
	if ms < minSegmentMS {
		ms = minSegmentMS
	}

	return ms
}

// StartingTime resolves the platform's starting time on its path: the
// cumulative time of the start marker under constant speed, the
// configured start time otherwise.
func StartingTime(cfg Config, table []int32) int32 {
	if !cfg.ConstantSpeed {
		return cfg.StartTimeMS
	}

	idx := cfg.StartIndex
	if idx > len(table)-2 {
		idx = len(table) - 2
	}
	if idx < 0 {
		idx = 0
	}

	return table[idx]
}

// InitialTarget returns the sentinel initial target marker: -2 when the
// platform starts in reverse, -1 otherwise. Trigger resolution may
// override it with a concrete starting time.
func InitialTarget(cfg Config) int32 {
	if cfg.Reverse {
		return -2
	}

	return -1
}
