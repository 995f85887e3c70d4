package app

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"

	"github.com/five82/clipdeck/internal/clip"
)

// demoEntries seeds the in-memory backend used by --demo, most recent first.
func demoEntries() []clip.Entry {
	entries := []clip.Entry{
		clip.Text("git log --oneline --graph --decorate"),
		clip.Text("func main() {\n\tfmt.Println(\"hello, clipboard\")\n}"),
		clip.Text("https://pkg.go.dev/github.com/charmbracelet/bubbletea"),
		clip.Text("Meeting notes:\n- ship the poller\n- review search cancellation"),
		clip.Text(`{"name":"clipdeck","version":"0.1.0"}`),
	}
	if img, err := demoImage(); err == nil {
		entries = append([]clip.Entry{clip.Image(img)}, entries...)
	}
	return entries
}

func demoImage() (string, error) {
	const w, h = 48, 24
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / (w - 1)),
				G: uint8(y * 255 / (h - 1)),
				B: 180,
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
