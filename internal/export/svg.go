// Package export writes walks in formats other tools can read.
package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/randwalk/internal/config"
	"github.com/san-kum/randwalk/internal/walk"
)

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WalkToSVG draws w as a single path in lattice units scaled by scale. The
// view box is the bounding box plus one unit of padding, with y growing
// downwards like the preview image.
func WalkToSVG(w walk.Walk, theme config.Theme, scale int) string {
	if len(w) == 0 {
		return ""
	}
	if scale < 1 {
		scale = 1
	}

	b := walk.Bounds(w)
	minX, minY := b.MinX-1, b.MinY-1
	vw, vh := b.Width()+2, b.Height()+2
	bg := color.RGBA{theme.PreviewBackground, theme.PreviewBackground, theme.PreviewBackground, 255}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%d %d %d %d">
<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="0.3" stroke-linecap="square" d="M`,
		vw*scale, vh*scale, minX, minY, vw, vh,
		minX, minY, vw, vh, hexColor(bg), hexColor(theme.Path)))

	for i, p := range w {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%d,%d", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%d,%d", p.X, p.Y))
		}
	}
	sb.WriteString("\"/>\n")

	end := w[len(w)-1]
	sb.WriteString(fmt.Sprintf(`<circle cx="0" cy="0" r="0.5" fill="%s"/>
<circle cx="%d" cy="%d" r="0.5" fill="%s"/>
</svg>`, hexColor(theme.Path), end.X, end.Y, hexColor(theme.Dot)))
	return sb.String()
}

func WriteSVG(out io.Writer, w walk.Walk, theme config.Theme, scale int) error {
	_, err := io.WriteString(out, WalkToSVG(w, theme, scale))
	return err
}
