package driver

import "github.com/gogpu/gputypes"

// TextureDim identifies the dimensionality of a texture resource.
type TextureDim uint8

const (
	// TextureDim1D is a one-dimensional texture.
	TextureDim1D TextureDim = iota
	// TextureDim2D is a two-dimensional texture.
	TextureDim2D
	// TextureDim3D is a volume texture.
	TextureDim3D
	// TextureDimCube is a cube texture with six faces.
	TextureDimCube
)

// textureDimNames maps TextureDim values to their string representation.
var textureDimNames = [...]string{
	TextureDim1D:   "1D",
	TextureDim2D:   "2D",
	TextureDim3D:   "3D",
	TextureDimCube: "Cube",
}

// String returns the string representation of a TextureDim.
func (d TextureDim) String() string {
	if int(d) < len(textureDimNames) {
		return textureDimNames[d]
	}
	return "Unknown"
}

// TextureKind describes the shape of a texture as needed for subresource
// addressing: its dimensionality and mip level count.
type TextureKind struct {
	// Dim is the texture dimensionality.
	Dim TextureDim

	// Levels is the number of mip levels. Zero is treated as one level.
	Levels uint32
}

// MipCount returns the effective mip level count.
func (k TextureKind) MipCount() uint32 {
	if k.Levels == 0 {
		return 1
	}
	return k.Levels
}

// CubeFace selects one face of a cube texture.
// The zero value CubeFaceNone means the update targets a non-cube texture.
type CubeFace uint8

const (
	// CubeFaceNone selects no face (non-cube texture).
	CubeFaceNone CubeFace = iota
	// CubeFacePosX is the +X face.
	CubeFacePosX
	// CubeFaceNegX is the -X face.
	CubeFaceNegX
	// CubeFacePosY is the +Y face.
	CubeFacePosY
	// CubeFaceNegY is the -Y face.
	CubeFaceNegY
	// CubeFacePosZ is the +Z face.
	CubeFacePosZ
	// CubeFaceNegZ is the -Z face.
	CubeFaceNegZ
)

// Index returns the array index of the face: +X is 0, -Z is 5.
// Calling Index on CubeFaceNone is a programming error.
func (f CubeFace) Index() uint32 {
	if f == CubeFaceNone {
		panic("driver: CubeFaceNone has no face index")
	}
	return uint32(f - CubeFacePosX)
}

// ImageRegion addresses a sub-region of one mip level of a texture.
type ImageRegion struct {
	// Origin is the destination offset within the mip level.
	Origin gputypes.Origin3D

	// Size is the extent of the region in texels.
	Size gputypes.Extent3D

	// Mip is the target mip level.
	Mip uint32

	// Format is the texel format of the payload data.
	Format gputypes.TextureFormat
}

// Subresource computes the native subresource index for an update targeting
// the given face and mip level of a texture of kind k. For cube textures the
// faces are laid out as consecutive array slices, each carrying a full mip
// chain; for everything else the subresource is the mip level itself.
func Subresource(k TextureKind, face CubeFace, mip uint32) uint32 {
	if face == CubeFaceNone {
		return mip
	}
	return face.Index()*k.MipCount() + mip
}
