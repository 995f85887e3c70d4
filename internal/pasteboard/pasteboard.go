// Package pasteboard writes entries to the local system clipboard.
package pasteboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"

	// Register the formats an image entry may arrive in.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmpty is returned when asked to write an empty payload.
var ErrEmpty = errors.New("pasteboard: nothing to write")

// Pasteboard is the local clipboard write primitive.
type Pasteboard interface {
	WriteText(text string) error
	WriteImage(data []byte) error
}

// System writes to the desktop clipboard. Text goes through atotto, which
// shells out to the platform clipboard tool; images go through
// golang.design/x/clipboard, initialised on first use.
type System struct {
	initOnce sync.Once
	initErr  error
}

var _ Pasteboard = (*System)(nil)

// NewSystem returns a System pasteboard. Initialisation of the image
// clipboard is deferred until the first image write.
func NewSystem() *System {
	return &System{}
}

// WriteText replaces the clipboard with text.
func (s *System) WriteText(text string) error {
	if text == "" {
		return ErrEmpty
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	return nil
}

// WriteImage replaces the clipboard with an image. Payloads that are not PNG
// are re-encoded, since the image clipboard format is PNG.
func (s *System) WriteImage(data []byte) error {
	if len(data) == 0 {
		return ErrEmpty
	}
	s.initOnce.Do(func() {
		s.initErr = clipboard.Init()
	})
	if s.initErr != nil {
		return fmt.Errorf("init image clipboard: %w", s.initErr)
	}
	pngData, err := ToPNG(data)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, pngData)
	return nil
}

// ToPNG returns data unchanged when it is already PNG and re-encodes any
// other registered format.
func ToPNG(data []byte) ([]byte, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}
	if format == "png" {
		return data, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s image: %w", format, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
