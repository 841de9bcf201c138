package dif

// SurfaceFlags is the per-surface geometry flag bitmask.
type SurfaceFlags uint8

const (
	SurfaceDetail SurfaceFlags = 1 << iota
	SurfaceAmbiguous
	SurfaceOrphan
	SurfaceSharedLMaps
	SurfaceOutsideVisible
)

var surfaceFlagNames = []struct {
	flag SurfaceFlags
	name string
}{
	{SurfaceDetail, "SurfaceDetail"},
	{SurfaceAmbiguous, "SurfaceAmbiguous"},
	{SurfaceOrphan, "SurfaceOrphan"},
	{SurfaceSharedLMaps, "SurfaceSharedLMaps"},
	{SurfaceOutsideVisible, "SurfaceOutsideVisible"},
}

// Names returns the names of the flags set in f.
func (f SurfaceFlags) Names() []string {
	var names []string

	for _, fn := range surfaceFlagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}

	return names
}

// SurfaceLightMap is the packed lightmap coordinate-generation record of
// a surface: a bit-packed word plus the two UV offsets.
type SurfaceLightMap struct {
	FinalWord uint32
	TexGenXD  float32
	TexGenYD  float32
}

// LegacyPlaneFlipBit marks a flipped plane in legacy surface records,
// which fold the flip into the top bit of the plane index.
const LegacyPlaneFlipBit = 0x8000

// SurfaceRecord is one surface of an interior, abstracting over the two
// on-disk record revisions. The revision is fixed when the record is
// constructed; callers never branch on it again.
type SurfaceRecord interface {
	// WindingRange returns the surface's slice of the winding list.
	WindingRange() (start, count int)
	// PlaneRef returns the referenced plane index and whether the
	// plane normal must be negated for this surface.
	PlaneRef() (index int, flipped bool)
	// Material returns the index into the interior's material list.
	Material() int
	// TexGenRef returns the index into the interior's texgen table.
	TexGenRef() int
	// SurfaceFlags returns the surface's geometry flags.
	SurfaceFlags() SurfaceFlags
	// LightMapRef returns the packed lightmap texgen record.
	LightMapRef() SurfaceLightMap
	// FaceIndices decodes the surface's windings into outward-ordered
	// vertex-index loops. Each loop has at least 3 entries; a malformed
	// winding yields nil.
	FaceIndices(windings []int32) [][]int32
}

// LegacySurface is an old-revision surface record. Its windings store a
// triangle fan in zigzag order and the plane flip lives in the top bit
// of the plane index.
type LegacySurface struct {
	WindingStart int
	WindingCount int
	PlaneIndex   uint16
	TextureIndex int
	TexGenIndex  int
	Flags        SurfaceFlags
	LightMap     SurfaceLightMap
}

func (s LegacySurface) WindingRange() (int, int) {
	return s.WindingStart, s.WindingCount
}

func (s LegacySurface) PlaneRef() (int, bool) {
	return int(s.PlaneIndex &^ LegacyPlaneFlipBit), s.PlaneIndex&LegacyPlaneFlipBit != 0
}

func (s LegacySurface) Material() int                { return s.TextureIndex }
func (s LegacySurface) TexGenRef() int               { return s.TexGenIndex }
func (s LegacySurface) SurfaceFlags() SurfaceFlags   { return s.Flags }
func (s LegacySurface) LightMapRef() SurfaceLightMap { return s.LightMap }

// FaceIndices emits the fan as explicit triangles, alternating the
// winding order by parity so every triangle comes out consistently
// oriented despite the zigzag vertex order of the record.
func (s LegacySurface) FaceIndices(windings []int32) [][]int32 {
	if s.WindingCount < 3 || s.WindingStart < 0 || s.WindingStart+s.WindingCount > len(windings) {
		return nil
	}

	tris := make([][]int32, 0, s.WindingCount-2)

	for i := 0; i < s.WindingCount-2; i++ {
		base := s.WindingStart + i

		if i%2 == 0 {
			tris = append(tris, []int32{windings[base+2], windings[base+1], windings[base]})
		} else {
			tris = append(tris, []int32{windings[base], windings[base+1], windings[base+2]})
		}
	}

	return tris
}

// CurrentSurface is a current-revision surface record with a dedicated
// plane-flip field. Its windings still store the polygon in zigzag fan
// order, but the loop is recoverable without splitting into triangles.
type CurrentSurface struct {
	WindingStart int
	WindingCount int
	PlaneIndex   int
	PlaneFlipped bool
	TextureIndex int
	TexGenIndex  int
	Flags        SurfaceFlags
	LightMap     SurfaceLightMap
}

func (s CurrentSurface) WindingRange() (int, int) {
	return s.WindingStart, s.WindingCount
}

func (s CurrentSurface) PlaneRef() (int, bool) {
	return s.PlaneIndex, s.PlaneFlipped
}

func (s CurrentSurface) Material() int                { return s.TextureIndex }
func (s CurrentSurface) TexGenRef() int               { return s.TexGenIndex }
func (s CurrentSurface) SurfaceFlags() SurfaceFlags   { return s.Flags }
func (s CurrentSurface) LightMapRef() SurfaceLightMap { return s.LightMap }

// FaceIndices un-zigzags the fan into a simple polygon loop and reverses
// it so the winding faces outward under the target convention.
func (s CurrentSurface) FaceIndices(windings []int32) [][]int32 {
	if s.WindingCount < 3 || s.WindingStart < 0 || s.WindingStart+s.WindingCount > len(windings) {
		return nil
	}

	loop := unzigzag(windings[s.WindingStart : s.WindingStart+s.WindingCount])

	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}

	return [][]int32{loop}
}

// unzigzag reorders a zigzag fan index list into a polygon loop: odd
// source positions walk forward from the start of the loop, even ones
// walk backward from its end.
func unzigzag(raw []int32) []int32 {
	out := make([]int32, len(raw))

	for i, idx := range raw {
		switch {
		case i < 2:
			out[i] = idx
		case i%2 == 0:
			out[len(raw)-1-(i-2)/2] = idx
		default:
			out[(i+1)/2] = idx
		}
	}

	return out
}
