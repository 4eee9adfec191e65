package gogpudriver

import (
	"github.com/gogpu/gogpu/gpu/types"
	"github.com/gogpu/gputypes"
)

// convertFormat converts a gputypes.TextureFormat to the gogpu backend
// format. Formats outside the supported set fall back to RGBA8.
func convertFormat(format gputypes.TextureFormat) types.TextureFormat {
	switch format {
	case gputypes.TextureFormatBGRA8Unorm:
		return types.TextureFormatBGRA8Unorm
	case gputypes.TextureFormatRGBA8Unorm:
		return types.TextureFormatRGBA8Unorm
	default:
		return types.TextureFormatRGBA8Unorm
	}
}

// formatBytesPerPixel returns the bytes per texel for a texture format.
func formatBytesPerPixel(format gputypes.TextureFormat) uint32 {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4
	default:
		return 4 // Default to RGBA8
	}
}

// convertOrigin converts a gputypes.Origin3D to the gogpu backend origin.
func convertOrigin(o gputypes.Origin3D) types.Origin3D {
	return types.Origin3D{X: o.X, Y: o.Y, Z: o.Z}
}

// convertExtent converts a gputypes.Extent3D to the gogpu backend extent.
func convertExtent(e gputypes.Extent3D) types.Extent3D {
	return types.Extent3D{
		Width:              e.Width,
		Height:             e.Height,
		DepthOrArrayLayers: e.DepthOrArrayLayers,
	}
}
