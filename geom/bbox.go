package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BBox is an axis-aligned bounding box. CenterTranslation is derived and
// valid only after Center() was called on the final Min/Max pair.
type BBox struct {
	Min               mgl32.Vec3 `json:"min"`
	Max               mgl32.Vec3 `json:"max"`
	CenterTranslation mgl32.Vec3 `json:"centerTranslation"`
}

func NewBBox(min, max mgl32.Vec3) BBox {
	return BBox{Min: min, Max: max}
}

// Extend grows b so it covers other, componentwise per axis.
// A zero-value BBox is not a merge identity: it already spans the origin.
// Seed merges from real data, or use BBoxAccumulator.
func (b *BBox) Extend(other BBox) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], other.Min[i])
		b.Max[i] = math32.Max(b.Max[i], other.Max[i])
	}
}

// ExtendPoint grows b so it covers point p.
func (b *BBox) ExtendPoint(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
}

// Center derives the translation that moves the box midpoint to the origin.
func (b *BBox) Center() {
	b.CenterTranslation = b.Min.Add(b.Max).Mul(-0.5)
}

func (b BBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// BBoxAccumulator merges boxes without inventing an all-zero identity box:
// the first added box becomes the accumulator, later boxes extend it.
type BBoxAccumulator struct {
	box    BBox
	seeded bool
}

func (a *BBoxAccumulator) Add(b BBox) {
	if !a.seeded {
		a.box = b
		a.seeded = true
		return
	}
	a.box.Extend(b)
}

// Box returns the merged box. ok is false when nothing was accumulated.
func (a *BBoxAccumulator) Box() (box BBox, ok bool) {
	return a.box, a.seeded
}
