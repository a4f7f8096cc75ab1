package sink

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/jammo/wardrobe/pkg/render/scene"
)

// RenderPNG renders the scene as PNG via SVG conversion with the given
// scale factor (2.0 produces a 2x resolution image).
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(s *scene.Scene, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 2.0
	}
	return rsvgConvert(RenderSVG(s), "png", "-z", fmt.Sprintf("%.2f", scale))
}

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(s *scene.Scene) ([]byte, error) {
	return rsvgConvert(RenderSVG(s), "pdf")
}

// SVGToPDF converts already-rendered SVG bytes (e.g. a print page) to
// PDF.
func SVGToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
