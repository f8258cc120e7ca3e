package gpuformat

import (
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
)

var classifyTests = []struct {
	t      gltf.AccessorType
	ct     gltf.ComponentType
	format ElementFormat
	fail   bool
}{
	{gltf.AccessorVec3, gltf.ComponentFloat, FormatR32G32B32Float, false},
	{gltf.AccessorScalar, gltf.ComponentUint, FormatR32Uint, false},
	{gltf.AccessorScalar, gltf.ComponentUshort, FormatR16Uint, false},
	{gltf.AccessorVec3, gltf.ComponentUint, FormatUnknown, true},
	{gltf.AccessorVec2, gltf.ComponentFloat, FormatUnknown, true},
	{gltf.AccessorScalar, gltf.ComponentFloat, FormatUnknown, true},
	{gltf.AccessorMat4, gltf.ComponentFloat, FormatUnknown, true},
	{gltf.AccessorScalar, gltf.ComponentUbyte, FormatUnknown, true},
}

func TestClassify(t *testing.T) {
	for _, test := range classifyTests {
		format, err := Classify(test.t, test.ct)
		if test.fail {
			if err == nil {
				t.Errorf("Classify(%v,%v) expected error, got %v", test.t, test.ct, format)
			}
			continue
		}
		if err != nil {
			t.Errorf("Classify(%v,%v) unexpected error: %v", test.t, test.ct, err)
			continue
		}
		if format != test.format {
			t.Errorf("Classify(%v,%v)=%v; expected %v", test.t, test.ct, format, test.format)
		}
	}
}

func TestClassifyErrorNamesPair(t *testing.T) {
	_, err := Classify(gltf.AccessorVec3, gltf.ComponentUint)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "VEC3") || !strings.Contains(msg, "UNSIGNED_INT") {
		t.Errorf("error %q does not name the offending pair", msg)
	}
}

func TestFromAccessor(t *testing.T) {
	acc := &gltf.Accessor{Type: gltf.AccessorScalar, ComponentType: gltf.ComponentUshort}
	format, err := FromAccessor(acc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatR16Uint {
		t.Errorf("FromAccessor = %v; expected %v", format, FormatR16Uint)
	}
}

var resourceSizeTests = []struct {
	in, out uint64
}{
	{0, 65536},
	{1, 65536},
	{65535, 65536},
	{65536, 65536},
	{65537, 65537},
	{1000000, 1000000},
}

func TestResourceSize(t *testing.T) {
	for _, test := range resourceSizeTests {
		if got := ResourceSize(test.in); got != test.out {
			t.Errorf("ResourceSize(%d)=%d; expected %d", test.in, got, test.out)
		}
	}
}

func TestElementFormatByteSize(t *testing.T) {
	sizes := map[ElementFormat]uint32{
		FormatR32G32B32Float: 12,
		FormatR32Uint:        4,
		FormatR16Uint:        2,
		FormatUnknown:        0,
	}
	for format, size := range sizes {
		if got := format.ByteSize(); got != size {
			t.Errorf("%v.ByteSize()=%d; expected %d", format, got, size)
		}
	}
}
