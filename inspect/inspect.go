// Package inspect walks a glTF document and builds the geometry report the
// browser serves: per-primitive GPU formats and buffer sizes, per-level
// bounding boxes with centering translations, and deterministic debug colors.
package inspect

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/gltf_browser/geom"
	"github.com/mogaika/gltf_browser/gpuformat"
	"github.com/mogaika/gltf_browser/status"
	"github.com/mogaika/gltf_browser/utils"
)

type Options struct {
	// Debug color saturation/value, passed unclamped to the HSV conversion.
	Saturation float32
	Value      float32
}

func DefaultOptions() Options {
	return Options{Saturation: 0.5, Value: 1.0}
}

type Primitive struct {
	Name             string           `json:"name"`
	VertexCount      uint32           `json:"vertexCount"`
	IndexCount       uint32           `json:"indexCount"`
	VertexFormat     string           `json:"vertexFormat"`
	IndexFormat      string           `json:"indexFormat,omitempty"`
	VertexBufferSize uint64           `json:"vertexBufferSize"`
	IndexBufferSize  uint64           `json:"indexBufferSize,omitempty"`
	BBox             geom.BBox        `json:"bbox"`
	DebugColor       utils.ColorFloat `json:"debugColor"`
}

type Mesh struct {
	Name       string       `json:"name"`
	Primitives []*Primitive `json:"primitives"`
	BBox       geom.BBox    `json:"bbox"`
}

type Model struct {
	Name   string    `json:"name"`
	Meshes []*Mesh   `json:"meshes"`
	BBox   geom.BBox `json:"bbox"`
}

// LoadModel reads a .gltf/.glb asset and builds its geometry report.
func LoadModel(path string, opts Options) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open gltf %q", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return BuildModel(doc, name, opts)
}

// BuildModel walks every mesh primitive of doc. Primitive boxes roll up into
// mesh boxes and the model box; each aggregate is centered exactly once after
// its last merge. An attribute outside the recognized format table aborts the
// whole model: guessing a format would corrupt the GPU-side layout.
func BuildModel(doc *gltf.Document, name string, opts Options) (*Model, error) {
	model := &Model{
		Name:   name,
		Meshes: make([]*Mesh, 0, len(doc.Meshes)),
	}

	totalPrimitives := 0
	for _, gm := range doc.Meshes {
		totalPrimitives += len(gm.Primitives)
	}

	var names utils.NameGenerator
	var modelAcc geom.BBoxAccumulator
	iPrimitive := 0

	for iMesh, gm := range doc.Meshes {
		mesh := &Mesh{
			Name:       gm.Name,
			Primitives: make([]*Primitive, 0, len(gm.Primitives)),
		}
		if mesh.Name == "" {
			mesh.Name = names.Next()
		}

		var meshAcc geom.BBoxAccumulator
		for iPrim, gp := range gm.Primitives {
			prim, err := buildPrimitive(doc, gp, opts, iPrimitive, totalPrimitives)
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to inspect mesh %q primitive %d", mesh.Name, iPrim)
			}
			prim.Name = fmt.Sprintf("%s:%d", mesh.Name, iPrim)
			iPrimitive++

			meshAcc.Add(prim.BBox)
			mesh.Primitives = append(mesh.Primitives, prim)
		}

		if box, ok := meshAcc.Box(); ok {
			box.Center()
			mesh.BBox = box
			modelAcc.Add(box)
		}

		model.Meshes = append(model.Meshes, mesh)
		status.Progress(float32(iMesh+1)/float32(len(doc.Meshes)),
			"inspected mesh %q (%d of %d)", mesh.Name, iMesh+1, len(doc.Meshes))
	}

	if box, ok := modelAcc.Box(); ok {
		box.Center()
		model.BBox = box
	}

	status.Info("model %q: %d meshes, %d primitives", model.Name, len(model.Meshes), iPrimitive)
	return model, nil
}

func buildPrimitive(doc *gltf.Document, gp *gltf.Primitive, opts Options, ordinal, total int) (*Primitive, error) {
	iPosition, ok := gp.Attributes["POSITION"]
	if !ok {
		return nil, errors.Errorf("primitive has no POSITION attribute")
	}
	if int(iPosition) >= len(doc.Accessors) {
		return nil, errors.Errorf("position accessor index %d out of range (%d accessors)",
			iPosition, len(doc.Accessors))
	}
	posAccessor := doc.Accessors[iPosition]

	vertexFormat, err := gpuformat.FromAccessor(posAccessor)
	if err != nil {
		return nil, errors.Wrapf(err, "position attribute")
	}

	box, err := primitiveBBox(doc, posAccessor)
	if err != nil {
		return nil, err
	}

	hue := float32(0)
	if total > 0 {
		hue = float32(ordinal) / float32(total)
	}

	prim := &Primitive{
		VertexCount:      posAccessor.Count,
		VertexFormat:     vertexFormat.String(),
		VertexBufferSize: gpuformat.ResourceSize(uint64(posAccessor.Count) * uint64(vertexFormat.ByteSize())),
		BBox:             box,
		DebugColor:       utils.HSVToRGB(hue, opts.Saturation, opts.Value),
	}

	if gp.Indices != nil {
		if int(*gp.Indices) >= len(doc.Accessors) {
			return nil, errors.Errorf("index accessor index %d out of range (%d accessors)",
				*gp.Indices, len(doc.Accessors))
		}
		idxAccessor := doc.Accessors[*gp.Indices]
		indexFormat, err := gpuformat.FromAccessor(idxAccessor)
		if err != nil {
			return nil, errors.Wrapf(err, "index attribute")
		}
		prim.IndexCount = idxAccessor.Count
		prim.IndexFormat = indexFormat.String()
		prim.IndexBufferSize = gpuformat.ResourceSize(uint64(idxAccessor.Count) * uint64(indexFormat.ByteSize()))
	}

	return prim, nil
}

// primitiveBBox trusts the accessor min/max when the asset carries both,
// otherwise falls back to scanning the position stream.
func primitiveBBox(doc *gltf.Document, acc *gltf.Accessor) (geom.BBox, error) {
	if len(acc.Min) == 3 && len(acc.Max) == 3 {
		return geom.NewBBox(
			mgl32.Vec3{acc.Min[0], acc.Min[1], acc.Min[2]},
			mgl32.Vec3{acc.Max[0], acc.Max[1], acc.Max[2]},
		), nil
	}

	positions, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return geom.BBox{}, errors.Wrapf(err, "Failed to read positions")
	}
	if len(positions) == 0 {
		return geom.BBox{}, errors.Errorf("position accessor is empty and carries no min/max")
	}

	first := mgl32.Vec3(positions[0])
	box := geom.NewBBox(first, first)
	for _, p := range positions[1:] {
		box.ExtendPoint(mgl32.Vec3(p))
	}
	return box, nil
}
