// seehuhn.de/go/balldrop - a software rasteriser and bouncing-ball animation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Command genpdf writes the outlines of the built-in artwork as a vector
// PDF and, if Ghostscript is available, renders the PDF to a greyscale PNG.
// The result can be compared with the rasterised artwork to check the
// curve flattening.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"

	"seehuhn.de/go/balldrop/artwork"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

func main() {
	outDir := flag.String("o", "testdata/outline", "output directory")
	noPNG := flag.Bool("no-png", false, "skip the Ghostscript rendering")
	flag.Parse()

	if err := run(*outDir, !*noPNG); err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}
}

func run(outDir string, withPNG bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	d, err := artwork.Komodo()
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(outDir, d.Name+".pdf")
	if err := generatePDF(d, pdfPath); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	if !withPNG {
		return nil
	}
	pngPath := filepath.Join(outDir, d.Name+".png")
	if err := renderPNG(pdfPath, pngPath); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	return nil
}

func generatePDF(d *artwork.Drawing, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(d.Width),
		URy: float64(d.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(gray(d.Background))
	page.Rectangle(0, 0, float64(d.Width), float64(d.Height))
	page.Fill()

	// PDF origin is bottom-left; the artwork uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(d.Height)})

	// one pixel wide lines, as drawn by the rasteriser
	page.SetLineWidth(1)

	for col, p := range d.Outlines() {
		page.SetStrokeColor(gray(col))
		writePath(page, p)
		page.Stroke()
	}

	return page.Close()
}

// writePath emits the path construction operators for p.  Quadratic
// segments are converted to cubics, since PDF has no quadratic curves.
func writePath(page *document.Page, p *path.Data) {
	var current, subpath [2]float64
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			q := p.Coords[k]
			page.MoveTo(q.X, q.Y)
			current = [2]float64{q.X, q.Y}
			subpath = current
			k++
		case path.CmdLineTo:
			q := p.Coords[k]
			page.LineTo(q.X, q.Y)
			current = [2]float64{q.X, q.Y}
			k++
		case path.CmdQuadTo:
			c, q := p.Coords[k], p.Coords[k+1]
			c1x := current[0] + 2.0/3.0*(c.X-current[0])
			c1y := current[1] + 2.0/3.0*(c.Y-current[1])
			c2x := q.X + 2.0/3.0*(c.X-q.X)
			c2y := q.Y + 2.0/3.0*(c.Y-q.Y)
			page.CurveTo(c1x, c1y, c2x, c2y, q.X, q.Y)
			current = [2]float64{q.X, q.Y}
			k += 2
		case path.CmdCubeTo:
			c1, c2, q := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, q.X, q.Y)
			current = [2]float64{q.X, q.Y}
			k += 3
		case path.CmdClose:
			page.ClosePath()
			current = subpath
		}
	}
}

// gray converts c to a DeviceGray colour with the Rec. 601 luma weights.
func gray(c color.RGBA) pdfcolor.Color {
	y := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	return pdfcolor.DeviceGray(y)
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
