package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// upperHalfBlock draws two vertically stacked pixels per cell: the glyph
// takes the top pixel's color and the cell background the bottom one.
const upperHalfBlock = "▀"

// thumbnail renders img as rows of half-block cells no wider than maxCols
// and no taller than maxRows. Aspect ratio is preserved.
func thumbnail(img image.Image, maxCols, maxRows int) []string {
	if img == nil || maxCols <= 0 || maxRows <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	cols, pixRows := fitThumb(b.Dx(), b.Dy(), maxCols, maxRows*2)

	dst := image.NewRGBA(image.Rect(0, 0, cols, pixRows))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	lines := make([]string, 0, (pixRows+1)/2)
	for y := 0; y < pixRows; y += 2 {
		var line strings.Builder
		for x := 0; x < cols; x++ {
			top := hexAt(dst, x, y)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(top))
			if y+1 < pixRows {
				style = style.Background(lipgloss.Color(hexAt(dst, x, y+1)))
			}
			line.WriteString(style.Render(upperHalfBlock))
		}
		lines = append(lines, line.String())
	}
	return lines
}

// fitThumb scales w x h down to fit maxW x maxH pixels, never upscaling and
// never collapsing a side to zero.
func fitThumb(w, h, maxW, maxH int) (int, int) {
	outW, outH := w, h
	if outW > maxW {
		outH = outH * maxW / outW
		outW = maxW
	}
	if outH > maxH {
		outW = outW * maxH / outH
		outH = maxH
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

func hexAt(img *image.RGBA, x, y int) string {
	c := img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
