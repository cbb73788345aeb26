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


package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"seehuhn.de/go/balldrop/canvas"
)

// pngPresenter writes every frame to a numbered PNG file.
type pngPresenter struct {
	dir   string
	scale int
	n     int

	buf *canvas.Canvas // scaled copy, reused
}

func newPNGPresenter(dir string, scale int) (*pngPresenter, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &pngPresenter{dir: dir, scale: scale}, nil
}

// Present implements the presenter interface.
func (p *pngPresenter) Present(c *canvas.Canvas) error {
	out := c
	if p.scale > 1 {
		w, h := c.Width()*p.scale, c.Height()*p.scale
		if p.buf == nil || p.buf.Width() != w || p.buf.Height() != h {
			p.buf = canvas.New(w, h)
		}
		draw.NearestNeighbor.Scale(p.buf, image.Rect(0, 0, w, h), c, c.Bounds(), draw.Src, nil)
		out = p.buf
	}

	fname := filepath.Join(p.dir, fmt.Sprintf("frame%05d.png", p.n))
	p.n++
	return out.SavePNG(fname)
}

// Done implements the presenter interface.
func (p *pngPresenter) Done() <-chan struct{} {
	return nil
}

// Close implements the presenter interface.
func (p *pngPresenter) Close() error {
	return nil
}
