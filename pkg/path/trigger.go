package path

import (
	"fmt"
	"strconv"

	"github.com/RandomityGuy/io-dif/pkg/dif"
)

// PlatformTrigger couples a trigger record with its authored platform
// target.
type PlatformTrigger struct {
	Trigger dif.Trigger
	// TargetRef names the platform object the trigger points at; empty
	// for triggers that target nothing.
	TargetRef string
	// UsesMarker selects target-marker activation: the trigger sends
	// the platform to a specific marker's path time.
	UsesMarker bool
	// MarkerIndex is the targeted marker (clamped to the path).
	MarkerIndex int
}

// ResolvePath times a platform's waypoints, binds the triggers that
// target it and writes the resulting starting state into the follower's
// properties. Returns the trigger list with target-marker triggers
// rewritten; triggers aimed at other platforms pass through untouched.
func ResolvePath(follower *dif.PathFollower, triggers []PlatformTrigger, cfg Config) []PlatformTrigger {
	adjusted, table := ComputeTimings(follower.WayPoints, cfg)

	follower.WayPoints = adjusted
	follower.TotalMS = follower.TotalDuration()
	follower.TriggerIDs = nil

	startingTime := StartingTime(cfg, table)
	initialTarget := InitialTarget(cfg)

	resolved := make([]PlatformTrigger, len(triggers))
	copy(resolved, triggers)

	targeted := false

	for i := range resolved {
		if resolved[i].TargetRef != follower.Name {
			continue
		}

		targeted = true
		follower.TriggerIDs = append(follower.TriggerIDs, uint32(i))

		if resolved[i].UsesMarker {
			resolved[i] = rewriteTargetMarker(resolved[i], table)
		}
	}

	// A platform addressed by any trigger starts parked at its starting
	// time rather than chasing the -1/-2 sentinel.
	if targeted {
		follower.Properties.Set("initialTargetPosition", strconv.Itoa(int(startingTime)))
	} else {
		follower.Properties.Set("initialTargetPosition", strconv.Itoa(int(initialTarget)))
	}
	follower.Properties.Set("initialPosition", strconv.Itoa(int(startingTime)))

	return resolved
}

// rewriteTargetMarker pins the trigger's activation time to the
// cumulative time of its target marker and renames the trigger so the
// downstream builder can tell otherwise-identical datablocks apart.
func rewriteTargetMarker(t PlatformTrigger, table []int32) PlatformTrigger {
	idx := t.MarkerIndex

	last := len(table) - 2
	if idx > last {
		idx = last
	}
	if idx < 0 {
		idx = 0
	}

	t.Trigger.Properties.Set("targetTime", strconv.Itoa(int(table[idx])))
	t.Trigger.Name = fmt.Sprintf("%s_marker_%d", t.Trigger.Name, idx)

	return t
}
