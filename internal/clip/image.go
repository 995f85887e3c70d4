package clip

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when image helpers are called on a non-image entry.
var ErrNotImage = errors.New("entry is not an image")

// ImageInfo describes an image payload without decoding its pixels.
type ImageInfo struct {
	Width  int
	Height int
	Format string
	Bytes  int
}

func (i ImageInfo) String() string {
	return fmt.Sprintf("%dx%d %s, %d bytes", i.Width, i.Height, strings.ToUpper(i.Format), i.Bytes)
}

// ImageBytes decodes the base64 payload of an image entry. A data URI prefix
// is tolerated.
func (e Entry) ImageBytes() ([]byte, error) {
	if !e.Kind.IsImage() {
		return nil, ErrNotImage
	}
	payload := strings.TrimSpace(e.Data)
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("decode base64: %w", err)
		}
	}
	return raw, nil
}

// Inspect reads the image header to report dimensions and format.
func (e Entry) Inspect() (ImageInfo, error) {
	raw, err := e.ImageBytes()
	if err != nil {
		return ImageInfo{}, err
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("decode image config: %w", err)
	}
	return ImageInfo{Width: cfg.Width, Height: cfg.Height, Format: format, Bytes: len(raw)}, nil
}

// DecodeImage fully decodes the image payload.
func (e Entry) DecodeImage() (image.Image, ImageInfo, error) {
	raw, err := e.ImageBytes()
	if err != nil {
		return nil, ImageInfo{}, err
	}
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ImageInfo{}, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	return img, ImageInfo{Width: b.Dx(), Height: b.Dy(), Format: format, Bytes: len(raw)}, nil
}
