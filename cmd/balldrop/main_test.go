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
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/balldrop/artwork"
	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/config"
	"seehuhn.de/go/balldrop/raster"
	"seehuhn.de/go/balldrop/scene"
)

// recordPresenter counts frames and remembers the last one.
type recordPresenter struct {
	frames int
	last   []uint8
	done   chan struct{}
	closed bool
}

func (r *recordPresenter) Present(c *canvas.Canvas) error {
	r.frames++
	r.last = append(r.last[:0], c.Pix()...)
	return nil
}

func (r *recordPresenter) Done() <-chan struct{} { return r.done }

func (r *recordPresenter) Close() error {
	r.closed = true
	return nil
}

func newScene(t *testing.T) (*scene.Scene, *raster.Surface) {
	t.Helper()
	cfg := config.Default()
	art, err := artwork.Komodo()
	require.NoError(t, err)
	sc, err := scene.New(cfg, art)
	require.NoError(t, err)
	surf := raster.NewSurface(canvas.New(cfg.Canvas.Width, cfg.Canvas.Height))
	return sc, surf
}

func TestRunFrameLimit(t *testing.T) {
	sc, surf := newScene(t)
	rec := &recordPresenter{}
	n, err := run(context.Background(), sc, surf, rec, 0.1, options{frames: 5, fixedDT: 1.0 / 60})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, rec.frames)
	assert.InDelta(t, 5.0/60, sc.Time(), 1e-9)
	assert.Equal(t, surf.Canvas().Pix(), rec.last)
}

func TestRunUntilDone(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full animation in short mode")
	}
	sc, surf := newScene(t)
	rec := &recordPresenter{}
	n, err := run(context.Background(), sc, surf, rec, 0.1, options{fixedDT: 1.0 / 60})
	require.NoError(t, err)
	assert.True(t, sc.Done())
	assert.Equal(t, scene.Transformed, sc.State())
	assert.Equal(t, n, rec.frames)

	// the last frame shows the drawing
	d, err := artwork.Komodo()
	require.NoError(t, err)
	want := canvas.New(d.Width, d.Height)
	require.NoError(t, d.Render(raster.NewSurface(want)))
	assert.Equal(t, want.Pix(), rec.last)
}

func TestRunCancelled(t *testing.T) {
	sc, surf := newScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := run(ctx, sc, surf, &recordPresenter{}, 0.1, options{fixedDT: 1.0 / 60})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestRunQuit(t *testing.T) {
	sc, surf := newScene(t)
	rec := &recordPresenter{done: make(chan struct{})}
	close(rec.done)
	n, err := run(context.Background(), sc, surf, rec, 0.1, options{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunWallClock(t *testing.T) {
	sc, surf := newScene(t)
	rec := &recordPresenter{}
	n, err := run(context.Background(), sc, surf, rec, 0.001, options{frames: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	// every step is shortened to maxDT
	assert.LessOrEqual(t, sc.Time(), 3*0.001+1e-12)
	assert.Positive(t, sc.Time())
}

func TestPNGPresenter(t *testing.T) {
	dir := t.TempDir()
	p, err := newPNGPresenter(dir, 3)
	require.NoError(t, err)

	c := canvas.New(4, 2)
	c.Clear(canvas.White)
	c.Plot(1, 0, canvas.Red)
	require.NoError(t, p.Present(c))
	require.NoError(t, p.Present(c))
	require.NoError(t, p.Close())

	for _, name := range []string{"frame00000.png", "frame00001.png"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	f, err := os.Open(filepath.Join(dir, "frame00001.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	r, g, b, _ := img.At(4, 2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})
	r, g, b, _ = img.At(6, 2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestPNGPresenterScale(t *testing.T) {
	_, err := newPNGPresenter(t.TempDir(), 0)
	assert.Error(t, err)
}

func TestCellPixels(t *testing.T) {
	// 600x600 canvas on a 100x50 screen: 6 columns and 12 rows per cell
	x, top, bottom := cellPixels(0, 0, 100, 50, 600, 600)
	assert.Equal(t, [3]int{0, 0, 6}, [3]int{x, top, bottom})
	x, top, bottom = cellPixels(99, 49, 100, 50, 600, 600)
	assert.Equal(t, [3]int{594, 588, 594}, [3]int{x, top, bottom})

	// more cells than pixels
	x, top, bottom = cellPixels(3, 3, 8, 8, 4, 4)
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{x, top, bottom})
}

func TestTermPresenter(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	p, err := newTermPresenterOn(sim)
	require.NoError(t, err)
	defer p.Close()
	sim.SetSize(4, 2)

	c := canvas.New(4, 4)
	c.Clear(canvas.White)
	c.Plot(0, 0, canvas.Red)
	c.Plot(0, 1, canvas.Black)
	require.NoError(t, p.Present(c))

	mainc, _, style, _ := sim.GetContent(0, 0)
	assert.Equal(t, '▀', mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("q did not quit")
	}
}
