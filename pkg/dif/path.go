package dif

import "github.com/go-gl/mathgl/mgl32"

// SmoothingType selects how a platform moves between a marker and the
// next one.
type SmoothingType uint32

const (
	SmoothingLinear SmoothingType = iota
	SmoothingSpline
	SmoothingAccelerate
)

// WayPoint is one waypoint of a platform's motion path.
type WayPoint struct {
	Position      mgl32.Vec3
	Rotation      mgl32.Quat
	MSToNext      int32
	SmoothingType SmoothingType
}

// PathFollower is a moving platform: a sub-object interior driven along
// a sequence of timed waypoints.
type PathFollower struct {
	Name             string
	Datablock        string
	InteriorResIndex uint32
	Offset           mgl32.Vec3
	Properties       Dictionary
	TriggerIDs       []uint32
	WayPoints        []WayPoint
	TotalMS          int32
}

// TotalDuration returns the sum of the waypoint durations.
func (p *PathFollower) TotalDuration() int32 {
	var total int32
	for _, wp := range p.WayPoints {
		total += wp.MSToNext
	}

	return total
}
