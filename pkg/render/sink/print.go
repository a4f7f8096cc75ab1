package sink

import (
	"bytes"
	"fmt"

	"github.com/jammo/wardrobe/pkg/model"
	"github.com/jammo/wardrobe/pkg/render/scene"
)

// A4 page geometry. Sizes in millimeters, rendered at 96 dpi.
const (
	pageA4WidthMM  = 210.0
	pageA4HeightMM = 297.0
	pxPerMM        = 96.0 / 25.4

	printMarginLeftMM   = 15.0
	printMarginTopMM    = 20.0
	printMarginRightMM  = 15.0
	printMarginBottomMM = 15.0

	titleBlockPx = 60.0
)

// RenderPrint renders the project as a print-ready A4 SVG page. The
// page turns landscape when the frame is wider than tall. A non-empty
// title gets a centered title block above the drawing.
func RenderPrint(p *model.Project, title string, opts ...scene.Option) []byte {
	pageW := pageA4WidthMM * pxPerMM
	pageH := pageA4HeightMM * pxPerMM
	if p.Frame.Width > p.Frame.Height {
		pageW, pageH = pageH, pageW
	}

	contentX := printMarginLeftMM * pxPerMM
	contentY := printMarginTopMM * pxPerMM
	contentW := pageW - (printMarginLeftMM+printMarginRightMM)*pxPerMM
	contentH := pageH - (printMarginTopMM+printMarginBottomMM)*pxPerMM
	if title != "" {
		contentY += titleBlockPx
		contentH -= titleBlockPx
	}

	built := scene.Build(p, append([]scene.Option{
		scene.WithSize(contentW, contentH),
		scene.WithMargin(10),
	}, opts...)...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		pageW, pageH, pageW, pageH)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#FFFFFF"/>`+"\n", pageW, pageH)

	if title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="Arial, sans-serif" font-size="20" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
			pageW/2, printMarginTopMM*pxPerMM+titleBlockPx/2, escapeText(title))
	}

	fmt.Fprintf(&buf, `  <g transform="translate(%.1f,%.1f)">`+"\n", contentX, contentY)
	writeElements(&buf, built.Elements, "    ")
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
