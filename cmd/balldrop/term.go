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
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/balldrop/canvas"
)

// termPresenter shows frames in the terminal.  Each character cell shows
// two pixels on top of each other, using the upper half block with the
// foreground for the top pixel and the background for the bottom pixel.
// The canvas is scaled to fill the screen.
type termPresenter struct {
	screen tcell.Screen

	quit     chan struct{}
	quitOnce sync.Once
}

func newTermPresenter() (*termPresenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTermPresenterOn(screen)
}

// newTermPresenterOn initializes screen and starts reading its events.
func newTermPresenterOn(screen tcell.Screen) (*termPresenter, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	t := &termPresenter{
		screen: screen,
		quit:   make(chan struct{}),
	}
	go t.pollEvents()
	return t, nil
}

// pollEvents runs until the screen is finalized.
func (t *termPresenter) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				t.quitOnce.Do(func() { close(t.quit) })
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Present implements the presenter interface.
func (t *termPresenter) Present(c *canvas.Canvas) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	for cy := range rows {
		for cx := range cols {
			x, top, bottom := cellPixels(cx, cy, cols, rows, c.Width(), c.Height())
			style := tcell.StyleDefault.
				Foreground(termColor(c.Pixel(x, top))).
				Background(termColor(c.Pixel(x, bottom)))
			t.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// cellPixels maps the character cell (cx, cy) on a screen of cols×rows
// cells to the canvas column and the two canvas rows shown in the cell.
func cellPixels(cx, cy, cols, rows, width, height int) (x, top, bottom int) {
	x = cx * width / cols
	top = (2 * cy) * height / (2 * rows)
	bottom = (2*cy + 1) * height / (2 * rows)
	return x, top, bottom
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Done implements the presenter interface.
func (t *termPresenter) Done() <-chan struct{} {
	return t.quit
}

// Close implements the presenter interface.
func (t *termPresenter) Close() error {
	t.screen.Fini()
	return nil
}
