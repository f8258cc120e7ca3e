package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func v3(x, y, z float32) mgl32.Vec3 { return mgl32.Vec3{x, y, z} }

var extendTests = []struct {
	a, b     BBox
	min, max mgl32.Vec3
}{
	{
		NewBBox(v3(-1, -1, -1), v3(1, 1, 1)),
		NewBBox(v3(0, 0, 0), v3(2, 2, 2)),
		v3(-1, -1, -1), v3(2, 2, 2),
	},
	{
		NewBBox(v3(5, -3, 0.5), v3(6, -2, 0.75)),
		NewBBox(v3(-10, 7, 0.25), v3(-9, 8, 1)),
		v3(-10, -3, 0.25), v3(6, 8, 1),
	},
	{
		NewBBox(v3(1, 2, 3), v3(4, 5, 6)),
		NewBBox(v3(1, 2, 3), v3(4, 5, 6)),
		v3(1, 2, 3), v3(4, 5, 6),
	},
}

func TestBBoxExtend(t *testing.T) {
	for _, test := range extendTests {
		box := test.a
		box.Extend(test.b)
		if box.Min != test.min || box.Max != test.max {
			t.Errorf("Extend(%v,%v) = %v/%v; expected %v/%v",
				test.a, test.b, box.Min, box.Max, test.min, test.max)
		}

		// min/max is commutative, so extend must be too
		flipped := test.b
		flipped.Extend(test.a)
		if flipped.Min != box.Min || flipped.Max != box.Max {
			t.Errorf("Extend is not commutative for %v,%v", test.a, test.b)
		}
	}
}

func TestBBoxExtendAssociative(t *testing.T) {
	a := NewBBox(v3(-1, 4, 0), v3(0, 5, 2))
	b := NewBBox(v3(3, -2, -7), v3(4, -1, -6))
	c := NewBBox(v3(0, 0, 9), v3(1, 1, 10))

	left := a
	left.Extend(b)
	left.Extend(c)

	bc := b
	bc.Extend(c)
	right := a
	right.Extend(bc)

	if left.Min != right.Min || left.Max != right.Max {
		t.Errorf("(a+b)+c = %v/%v but a+(b+c) = %v/%v",
			left.Min, left.Max, right.Min, right.Max)
	}
}

func TestBBoxExtendPoint(t *testing.T) {
	box := NewBBox(v3(0, 0, 0), v3(1, 1, 1))
	box.ExtendPoint(v3(-2, 0.5, 3))
	if box.Min != v3(-2, 0, 0) || box.Max != v3(1, 1, 3) {
		t.Errorf("ExtendPoint result %v/%v", box.Min, box.Max)
	}
}

func TestBBoxCenter(t *testing.T) {
	box := NewBBox(v3(0, 0, 0), v3(2, 4, 6))
	box.Center()
	if box.CenterTranslation != v3(-1, -2, -3) {
		t.Errorf("CenterTranslation = %v; expected (-1,-2,-3)", box.CenterTranslation)
	}

	// translating by CenterTranslation must move the midpoint to the origin
	mid := box.Min.Add(box.Max).Mul(0.5).Add(box.CenterTranslation)
	if mid != v3(0, 0, 0) {
		t.Errorf("midpoint after translation = %v", mid)
	}
}

func TestBBoxAccumulatorSeedsFromFirstBox(t *testing.T) {
	var acc BBoxAccumulator

	if _, ok := acc.Box(); ok {
		t.Error("empty accumulator reported a box")
	}

	// both boxes on the positive side of the origin: a zero-seeded
	// accumulator would wrongly pull Min to (0,0,0)
	acc.Add(NewBBox(v3(5, 5, 5), v3(6, 6, 6)))
	acc.Add(NewBBox(v3(4, 7, 5), v3(5, 8, 6)))

	box, ok := acc.Box()
	if !ok {
		t.Fatal("accumulator with two boxes reported no box")
	}
	if box.Min != v3(4, 5, 5) || box.Max != v3(6, 8, 6) {
		t.Errorf("accumulated box %v/%v; expected (4,5,5)/(6,8,6)", box.Min, box.Max)
	}
}

func TestBBoxMergeThenCenter(t *testing.T) {
	var acc BBoxAccumulator
	acc.Add(NewBBox(v3(-1, -1, -1), v3(1, 1, 1)))
	acc.Add(NewBBox(v3(0, 0, 0), v3(2, 2, 2)))

	box, _ := acc.Box()
	box.Center()

	if box.Min != v3(-1, -1, -1) || box.Max != v3(2, 2, 2) {
		t.Errorf("merged box %v/%v", box.Min, box.Max)
	}
	if box.CenterTranslation != v3(-0.5, -0.5, -0.5) {
		t.Errorf("CenterTranslation = %v; expected (-0.5,-0.5,-0.5)", box.CenterTranslation)
	}
}
