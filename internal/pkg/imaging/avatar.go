package imaging

import (
	"bytes"
	"errors"
	"image"
	stddraw "image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"net/http"

	xdraw "golang.org/x/image/draw"
)

// AvatarSize is the square edge every stored employee photo is normalized to.
const AvatarSize = 256

var ErrUnsupportedImage = errors.New("photo must be png, jpeg, or gif")

// NormalizeAvatar decodes an uploaded photo, center-crops it to a square and
// scales it to AvatarSize, returning PNG bytes ready for storage.
func NormalizeAvatar(raw []byte) ([]byte, string, error) {
	if len(raw) == 0 {
		return nil, "", errors.New("photo file is empty")
	}

	mime := http.DetectContentType(raw)
	switch mime {
	case "image/png", "image/jpeg", "image/gif":
	default:
		return nil, "", ErrUnsupportedImage
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", errors.New("unable to decode photo")
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, "", errors.New("invalid image dimensions")
	}

	cropSize := width
	if height < cropSize {
		cropSize = height
	}
	cropX := (width - cropSize) / 2
	cropY := (height - cropSize) / 2

	cropRect := image.Rect(0, 0, cropSize, cropSize)
	cropped := image.NewRGBA(cropRect)
	srcPoint := image.Point{X: bounds.Min.X + cropX, Y: bounds.Min.Y + cropY}
	stddraw.Draw(cropped, cropRect, img, srcPoint, stddraw.Src)

	resized := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), cropped, cropped.Bounds(), xdraw.Over, nil)

	var out bytes.Buffer
	if err := png.Encode(&out, resized); err != nil {
		return nil, "", errors.New("unable to encode photo")
	}
	return out.Bytes(), "image/png", nil
}
