package imgutil

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gfx/driver"
	"github.com/gogpu/gfx/record"
)

func TestRGBABytesFromRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	data, w, h := RGBABytes(img)
	if w != 2 || h != 1 {
		t.Fatalf("size = %dx%d, want 2x1", w, h)
	}
	want := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
}

func TestRGBABytesConverts(t *testing.T) {
	// Gray images are not stored as RGBA and must be converted.
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 128})

	data, w, h := RGBABytes(img)
	if w != 1 || h != 1 {
		t.Fatalf("size = %dx%d, want 1x1", w, h)
	}
	if len(data) != 4 {
		t.Fatalf("len(data) = %d, want 4", len(data))
	}
	if data[0] != data[1] || data[1] != data[2] || data[3] != 255 {
		t.Errorf("data = %v, want gray pixel with full alpha", data)
	}
}

func TestRGBABytesOffsetBounds(t *testing.T) {
	// Sub-images have non-zero bounds and must be repacked from origin.
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.SetRGBA(2, 2, color.RGBA{B: 255, A: 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)

	data, w, h := RGBABytes(sub)
	if w != 2 || h != 2 {
		t.Fatalf("size = %dx%d, want 2x2", w, h)
	}
	if len(data) != 16 {
		t.Fatalf("len(data) = %d, want 16", len(data))
	}
	if data[2] != 255 {
		t.Errorf("first pixel = %v, want blue", data[:4])
	}
}

func TestResize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	got := Resize(img, 2, 2)

	b := got.Bounds()
	if b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("resized bounds = %v, want 2x2", b)
	}
}

func TestRecordUpload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	rec := record.NewBuffered()
	kind := driver.TextureKind{Dim: driver.TextureDim2D, Levels: 1}
	RecordUpload(rec, 1, kind, 0, img)

	cmds := rec.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %d commands, want 1", len(cmds))
	}
	cmd, ok := cmds[0].(record.UpdateTextureCommand)
	if !ok {
		t.Fatalf("command = %T, want UpdateTextureCommand", cmds[0])
	}
	if cmd.Region.Size.Width != 2 || cmd.Region.Size.Height != 2 {
		t.Errorf("region size = %+v, want 2x2", cmd.Region.Size)
	}
	if cmd.Face != driver.CubeFaceNone {
		t.Errorf("face = %v, want CubeFaceNone", cmd.Face)
	}
	if rec.PayloadBytes() != 16 {
		t.Errorf("payload bytes = %d, want 16", rec.PayloadBytes())
	}
}

func TestRecordFaceUpload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	rec := record.NewBuffered()
	kind := driver.TextureKind{Dim: driver.TextureDimCube, Levels: 3}
	RecordFaceUpload(rec, 2, kind, driver.CubeFacePosZ, 1, img)

	cmds := rec.Commands()
	if len(cmds) != 1 {
		t.Fatalf("recorded %d commands, want 1", len(cmds))
	}
	cmd := cmds[0].(record.UpdateTextureCommand)
	if cmd.Face != driver.CubeFacePosZ {
		t.Errorf("face = %v, want CubeFacePosZ", cmd.Face)
	}
	if cmd.Region.Mip != 1 {
		t.Errorf("mip = %d, want 1", cmd.Region.Mip)
	}
}
