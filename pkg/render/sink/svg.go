// Package sink serializes a built scene into output formats: SVG as
// the native format, PNG and PDF by external conversion, a print-ready
// A4 page, and a JSON layout dump for other tools.
package sink

import (
	"bytes"
	"fmt"

	"github.com/jammo/wardrobe/pkg/render/scene"
)

const componentInteractionCSS = `
    .component { transition: stroke-width 0.2s ease; }
    .component:hover { stroke-width: 4; }`

// RenderSVG serializes the scene as a standalone SVG document.
func RenderSVG(s *scene.Scene) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", componentInteractionCSS)
	writeElements(&buf, s.Elements, "  ")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeElements(buf *bytes.Buffer, elements []scene.Element, indent string) {
	for _, el := range elements {
		switch e := el.(type) {
		case scene.Rect:
			fmt.Fprintf(buf, `%s<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"`,
				indent, e.X, e.Y, e.W, e.H)
			writeFill(buf, e.Fill)
			writeStroke(buf, e.Stroke, e.StrokeWidth, e.Dashed)
			if e.ID != "" {
				fmt.Fprintf(buf, ` id="%s"`, e.ID)
			}
			if e.Class != "" {
				fmt.Fprintf(buf, ` class="%s"`, e.Class)
			}
			buf.WriteString("/>\n")

		case scene.Line:
			fmt.Fprintf(buf, `%s<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"`,
				indent, e.X1, e.Y1, e.X2, e.Y2)
			writeStroke(buf, e.Stroke, e.StrokeWidth, e.Dashed)
			buf.WriteString("/>\n")

		case scene.Circle:
			fmt.Fprintf(buf, `%s<circle cx="%.1f" cy="%.1f" r="%.1f"`,
				indent, e.CX, e.CY, e.R)
			writeFill(buf, e.Fill)
			writeStroke(buf, e.Stroke, e.StrokeWidth, false)
			buf.WriteString("/>\n")

		case scene.Polygon:
			fmt.Fprintf(buf, `%s<polygon points="`, indent)
			for i, p := range e.Points {
				if i > 0 {
					buf.WriteByte(' ')
				}
				fmt.Fprintf(buf, "%.1f,%.1f", p.X, p.Y)
			}
			buf.WriteString(`"`)
			writeFill(buf, e.Fill)
			writeStroke(buf, e.Stroke, e.StrokeWidth, false)
			buf.WriteString("/>\n")

		case scene.Text:
			fmt.Fprintf(buf, `%s<text x="%.1f" y="%.1f" font-family="Arial, sans-serif" font-size="%.0f" text-anchor="middle" dominant-baseline="middle"`,
				indent, e.X, e.Y, e.Size)
			writeFill(buf, e.Fill)
			fmt.Fprintf(buf, ">%s</text>\n", escapeText(e.Content))
		}
	}
}

func writeFill(buf *bytes.Buffer, fill string) {
	if fill == "" {
		buf.WriteString(` fill="none"`)
		return
	}
	fmt.Fprintf(buf, ` fill="%s"`, fill)
}

func writeStroke(buf *bytes.Buffer, stroke string, width float64, dashed bool) {
	if stroke == "" {
		return
	}
	if width == 0 {
		width = 1
	}
	fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.1f"`, stroke, width)
	if dashed {
		buf.WriteString(` stroke-dasharray="6,4"`)
	}
}

func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
