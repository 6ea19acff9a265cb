package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestNormalizeAvatar_ResizesToSquare(t *testing.T) {
	raw := encodeTestPNG(t, 640, 480)

	out, mime, err := NormalizeAvatar(raw)
	if err != nil {
		t.Fatalf("NormalizeAvatar: %v", err)
	}
	if mime != "image/png" {
		t.Errorf("mime = %q, want image/png", mime)
	}

	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != AvatarSize || bounds.Dy() != AvatarSize {
		t.Errorf("output is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), AvatarSize, AvatarSize)
	}
}

func TestNormalizeAvatar_RejectsGarbage(t *testing.T) {
	if _, _, err := NormalizeAvatar([]byte("definitely not an image, just text")); err == nil {
		t.Error("NormalizeAvatar accepted non-image bytes")
	}
	if _, _, err := NormalizeAvatar(nil); err == nil {
		t.Error("NormalizeAvatar accepted empty input")
	}
}
