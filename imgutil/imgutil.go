// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package imgutil converts image.Image pixel data into tightly packed RGBA
// payloads suitable for texture update commands.
package imgutil

import (
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gfx/driver"
	"github.com/gogpu/gfx/record"
)

// RGBABytes returns img as tightly packed RGBA8 data, row-major with no
// padding between rows. The image is converted when its native storage is
// not *image.RGBA.
func RGBABytes(img image.Image) ([]byte, int, int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != w*4 || !b.Min.Eq(image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return rgba.Pix, w, h
}

// Resize scales img to width x height with bilinear filtering and returns
// the result as a tightly packed RGBA image.
func Resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// RecordUpload records an RGBA8 upload of img into the given mip of a
// non-cube texture. The pixel data is copied into the recorder's payload
// arena, so img may be modified once the call returns.
func RecordUpload(rec record.Recorder, tex driver.TextureHandle, kind driver.TextureKind, mip uint32, img image.Image) {
	data, w, h := RGBABytes(img)
	rec.RecordTextureUpdate(tex, kind, driver.CubeFaceNone, data, driver.ImageRegion{
		Size: gputypes.Extent3D{
			Width:              uint32(w),  // #nosec G115 -- image dimensions fit in uint32
			Height:             uint32(h),  // #nosec G115 -- image dimensions fit in uint32
			DepthOrArrayLayers: 1,
		},
		Mip:    mip,
		Format: gputypes.TextureFormatRGBA8Unorm,
	})
}

// RecordFaceUpload records an RGBA8 upload of img into one face and mip of
// a cube texture.
func RecordFaceUpload(rec record.Recorder, tex driver.TextureHandle, kind driver.TextureKind, face driver.CubeFace, mip uint32, img image.Image) {
	data, w, h := RGBABytes(img)
	rec.RecordTextureUpdate(tex, kind, face, data, driver.ImageRegion{
		Size: gputypes.Extent3D{
			Width:              uint32(w),  // #nosec G115 -- image dimensions fit in uint32
			Height:             uint32(h),  // #nosec G115 -- image dimensions fit in uint32
			DepthOrArrayLayers: 1,
		},
		Mip:    mip,
		Format: gputypes.TextureFormatRGBA8Unorm,
	})
}
