package builder

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/RandomityGuy/io-dif/pkg/dif"
	"github.com/RandomityGuy/io-dif/pkg/path"
)

var (
	errNoUVLayer = errors.New("mesh has no active UV layer")
	errEmptyMesh = errors.New("mesh has no triangles")
)

// SceneMesh is the per-object triangulated mesh data handed in by the
// host scene: object-local vertex positions, per-vertex normals,
// per-corner UVs and a material list.
type SceneMesh struct {
	Name          string
	Vertices      []mgl32.Vec3
	Normals       []mgl32.Vec3
	Faces         [][3]int
	FaceUVs       [][3]mgl32.Vec2
	FaceMaterials []int
	Materials     []string
	Transform     mgl32.Mat4
}

// PathedInterior is one moving platform in the hand-off payload: its
// own triangle set plus the timed path follower.
type PathedInterior struct {
	Follower  dif.PathFollower
	Triangles []Triangle

	cfg path.Config
}

// Artifact is the finished hand-off payload for the native builder. The
// pathed interiors, triggers and entities attach to the first batch.
type Artifact struct {
	Batches         [][]Triangle
	PathedInteriors []PathedInterior
	Triggers        []path.PlatformTrigger
	GameEntities    []dif.GameEntity
}

// SkippedObjectsError reports scene objects the export pass had to skip.
// The artifact is still usable; the error only carries the omissions.
type SkippedObjectsError struct {
	skipped []string
}

func (e SkippedObjectsError) Error() string {
	return fmt.Sprintf(`skipped objects: ("%s")`, strings.Join(e.skipped, `", "`))
}

// Skipped returns the names of the skipped objects.
func (e SkippedObjectsError) Skipped() []string {
	return e.skipped
}

// Exporter runs a sequential export pass over scene objects. Objects
// that fail to evaluate are skipped and logged; already-accepted
// geometry is never corrupted by a later failure.
type Exporter struct {
	cfg ExportConfig
	log *zap.Logger

	static   Builder
	pathed   []PathedInterior
	triggers []path.PlatformTrigger
	entities []dif.GameEntity
	skipped  []string
}

// NewExporter returns an exporter with the given config. A nil logger
// disables logging.
func NewExporter(cfg ExportConfig, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}

	return &Exporter{cfg: cfg, log: log}
}

// AddStatic adds a static interior object to the export. Malformed
// meshes are skipped, not fatal.
func (e *Exporter) AddStatic(mesh *SceneMesh) {
	if err := addMesh(&e.static, mesh, e.cfg); err != nil {
		e.skip(mesh.Name, err)
	}
}

// AddPathedInterior adds a moving platform: its mesh becomes a
// sub-object interior and the markers are timed at Build.
func (e *Exporter) AddPathedInterior(mesh *SceneMesh, markers []dif.WayPoint, cfg path.Config) {
	var b Builder

	if err := addMesh(&b, mesh, e.cfg); err != nil {
		e.skip(mesh.Name, err)
		return
	}

	name := mesh.Name
	if name == "" {
		name = "MustChange"
	}

	e.pathed = append(e.pathed, PathedInterior{
		Follower: dif.PathFollower{
			Name:             name,
			Datablock:        "PathedDefault",
			InteriorResIndex: uint32(len(e.pathed)),
			WayPoints:        markers,
		},
		Triangles: b.Triangles,
		cfg:       cfg,
	})
}

// AddPathTrigger queues a trigger for resolution against the platforms
// at Build.
func (e *Exporter) AddPathTrigger(t path.PlatformTrigger) {
	e.triggers = append(e.triggers, t)
}

// AddGameEntity adds a scene entity with its flattened properties.
func (e *Exporter) AddGameEntity(gameClass, datablock string, position, scale mgl32.Vec3, props dif.Dictionary) {
	e.entities = append(e.entities, FlattenGameEntity(gameClass, datablock, position, scale, props))
}

// Build partitions the accumulated triangles into batches, times every
// platform path and resolves its triggers. When objects were skipped
// the artifact is returned together with a SkippedObjectsError.
func (e *Exporter) Build() (*Artifact, error) {
	a := &Artifact{
		Batches:         PartitionTriangles(e.static.Triangles, e.cfg.MaxTriangles),
		PathedInteriors: e.pathed,
		Triggers:        e.triggers,
		GameEntities:    e.entities,
	}

	for i := range a.PathedInteriors {
		pi := &a.PathedInteriors[i]
		a.Triggers = path.ResolvePath(&pi.Follower, a.Triggers, pi.cfg)
	}

	e.log.Info("export pass finished",
		zap.Int("batches", len(a.Batches)),
		zap.Int("triangles", len(e.static.Triangles)),
		zap.Int("pathedInteriors", len(a.PathedInteriors)),
		zap.Int("skipped", len(e.skipped)))

	if len(e.skipped) > 0 {
		return a, SkippedObjectsError{skipped: e.skipped}
	}

	return a, nil
}

func (e *Exporter) skip(name string, err error) {
	e.skipped = append(e.skipped, name)
	e.log.Warn("skipping object", zap.String("object", name), zap.Error(err))
}

// addMesh feeds a scene mesh's triangles into a builder, applying the
// world transform and the flip/double options.
func addMesh(b *Builder, mesh *SceneMesh, cfg ExportConfig) error {
	if len(mesh.Faces) == 0 {
		return errors.Wrapf(errEmptyMesh, "object %q", mesh.Name)
	}

	if len(mesh.FaceUVs) != len(mesh.Faces) {
		return errors.Wrapf(errNoUVLayer, "object %q", mesh.Name)
	}

	for fi, face := range mesh.Faces {
		var pts [3]mgl32.Vec3

		for c, vi := range face {
			if vi < 0 || vi >= len(mesh.Vertices) {
				return errors.Errorf("object %q: face %d references vertex %d of %d",
					mesh.Name, fi, vi, len(mesh.Vertices))
			}

			pts[c] = mgl32.TransformCoordinate(mesh.Vertices[vi], mesh.Transform)
		}

		normal := mgl32.Vec3{0, 0, 1}
		if face[0] < len(mesh.Normals) {
			normal = mesh.Normals[face[0]]
		}

		uvs := mesh.FaceUVs[fi]
		material := faceMaterial(mesh, fi)

		if !cfg.Flip {
			b.AddTriangle(pts[0], pts[1], pts[2], uvs[0], uvs[1], uvs[2], normal, material)
			if cfg.Double {
				b.AddTriangle(pts[2], pts[1], pts[0], uvs[2], uvs[1], uvs[0], normal, material)
			}
		} else {
			b.AddTriangle(pts[2], pts[1], pts[0], uvs[2], uvs[1], uvs[0], normal, material)
			if cfg.Double {
				b.AddTriangle(pts[0], pts[1], pts[2], uvs[0], uvs[1], uvs[2], normal, material)
			}
		}
	}

	return nil
}

func faceMaterial(mesh *SceneMesh, fi int) string {
	if fi >= len(mesh.FaceMaterials) {
		return "NULL"
	}

	mi := mesh.FaceMaterials[fi]
	if mi < 0 || mi >= len(mesh.Materials) {
		return "NULL"
	}

	return mesh.Materials[mi]
}
