package gpuformat

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// ElementFormat is a GPU-consumable vertex/index element encoding.
type ElementFormat uint32

const (
	FormatUnknown ElementFormat = iota
	FormatR32G32B32Float
	FormatR32Uint
	FormatR16Uint
)

func (f ElementFormat) String() string {
	switch f {
	case FormatR32G32B32Float:
		return "R32G32B32_FLOAT"
	case FormatR32Uint:
		return "R32_UINT"
	case FormatR16Uint:
		return "R16_UINT"
	default:
		return "UNKNOWN"
	}
}

// ByteSize returns the per-element stride of the format.
func (f ElementFormat) ByteSize() uint32 {
	switch f {
	case FormatR32G32B32Float:
		return 12
	case FormatR32Uint:
		return 4
	case FormatR16Uint:
		return 2
	default:
		return 0
	}
}

var accessorTypeNames = map[gltf.AccessorType]string{
	gltf.AccessorScalar: "SCALAR",
	gltf.AccessorVec2:   "VEC2",
	gltf.AccessorVec3:   "VEC3",
	gltf.AccessorVec4:   "VEC4",
	gltf.AccessorMat2:   "MAT2",
	gltf.AccessorMat3:   "MAT3",
	gltf.AccessorMat4:   "MAT4",
}

var componentTypeNames = map[gltf.ComponentType]string{
	gltf.ComponentByte:   "BYTE",
	gltf.ComponentUbyte:  "UNSIGNED_BYTE",
	gltf.ComponentShort:  "SHORT",
	gltf.ComponentUshort: "UNSIGNED_SHORT",
	gltf.ComponentUint:   "UNSIGNED_INT",
	gltf.ComponentFloat:  "FLOAT",
}

func accessorTypeName(t gltf.AccessorType) string {
	if name, ok := accessorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("accessorType(%d)", t)
}

func componentTypeName(ct gltf.ComponentType) string {
	if name, ok := componentTypeNames[ct]; ok {
		return name
	}
	return fmt.Sprintf("componentType(%d)", ct)
}

// Classify maps an accessor type pair to the element format the GPU pipeline
// consumes it as. Only the pairs produced by well-formed position and index
// accessors are recognized; anything else is an error for that attribute,
// never a guessed format.
func Classify(t gltf.AccessorType, ct gltf.ComponentType) (ElementFormat, error) {
	switch {
	case t == gltf.AccessorVec3 && ct == gltf.ComponentFloat:
		return FormatR32G32B32Float, nil
	case t == gltf.AccessorScalar && ct == gltf.ComponentUint:
		return FormatR32Uint, nil
	case t == gltf.AccessorScalar && ct == gltf.ComponentUshort:
		return FormatR16Uint, nil
	default:
		return FormatUnknown, errors.Errorf("unrecognized accessor format %s/%s",
			accessorTypeName(t), componentTypeName(ct))
	}
}

// FromAccessor classifies the accessor the document walker is about to upload.
func FromAccessor(acc *gltf.Accessor) (ElementFormat, error) {
	return Classify(acc.Type, acc.ComponentType)
}

// MinResourceSize is the allocation granularity floor of the GPU allocator.
const MinResourceSize = 64 * 1024

// ResourceSize clamps a requested buffer size to the allocator floor.
func ResourceSize(size uint64) uint64 {
	if size < MinResourceSize {
		return MinResourceSize
	}
	return size
}
