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


// Command balldrop shows the bouncing-ball animation.  Frames are either
// written as PNG files or shown in the terminal.
//
// Usage:
//
//	balldrop [-config file.toml] [-out dir] [-frames n] [-scale k] [-term] [-fixed-dt s] [-v]
//
// Without -term, frames are written to the directory given by -out.  If
// -fixed-dt is not set, the time step is taken from the wall clock.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"seehuhn.de/go/balldrop"
	"seehuhn.de/go/balldrop/artwork"
	"seehuhn.de/go/balldrop/canvas"
	"seehuhn.de/go/balldrop/config"
	"seehuhn.de/go/balldrop/raster"
	"seehuhn.de/go/balldrop/scene"
)

// frameInterval is the frame period of the wall-clock loop, about 60 FPS.
const frameInterval = 16 * time.Millisecond

// presenter shows finished frames.
type presenter interface {
	Present(c *canvas.Canvas) error

	// Done is closed when the user asks to quit.  It may be nil.
	Done() <-chan struct{}

	Close() error
}

type options struct {
	frames  int     // maximum number of frames, 0 for no limit
	fixedDT float64 // time step in seconds, 0 for wall-clock time
}

func main() {
	configFile := flag.String("config", "", "TOML configuration file")
	outDir := flag.String("out", "frames", "directory for PNG frames")
	frames := flag.Int("frames", 0, "stop after this many frames (0 for no limit)")
	scale := flag.Int("scale", 1, "PNG upscaling factor")
	term := flag.Bool("term", false, "show the animation in the terminal")
	fixedDT := flag.Float64("fixed-dt", 0, "fixed time step in seconds (0 for wall-clock time)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *term {
		// keep the terminal display readable
		level = slog.LevelWarn
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	balldrop.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainErr(ctx, logger, *configFile, *outDir, *scale, *term, options{
		frames:  *frames,
		fixedDT: *fixedDT,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "balldrop:", err)
		os.Exit(1)
	}
}

func mainErr(ctx context.Context, logger *slog.Logger, configFile, outDir string, scale int, term bool, opt options) error {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}

	art, err := artwork.Komodo()
	if err != nil {
		return err
	}
	sc, err := scene.New(cfg, art)
	if err != nil {
		return err
	}

	var pres presenter
	if term {
		pres, err = newTermPresenter()
	} else {
		pres, err = newPNGPresenter(outDir, scale)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := pres.Close(); err != nil {
			logger.Warn("closing presenter", "err", err)
		}
	}()

	surf := raster.NewSurface(canvas.New(cfg.Canvas.Width, cfg.Canvas.Height))

	logger.Info("starting",
		"width", cfg.Canvas.Width,
		"height", cfg.Canvas.Height,
		"term", term,
		"fixed_dt", opt.fixedDT)
	start := time.Now()
	n, err := run(ctx, sc, surf, pres, cfg.Physics.MaxFrameDT, opt)
	logger.Info("finished",
		"frames", n,
		"state", sc.State(),
		"sim_time", sc.Time(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// run drives the animation: one scene update, one drawing and one
// presentation per frame.  It returns the number of frames shown.
// Wall-clock time steps are shortened to maxDT.
func run(ctx context.Context, sc *scene.Scene, surf *raster.Surface, pres presenter, maxDT float64, opt options) (int, error) {
	var tick <-chan time.Time
	if opt.fixedDT <= 0 {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		tick = ticker.C
	}
	last := time.Now()

	n := 0
	for opt.frames <= 0 || n < opt.frames {
		if sc.Done() {
			break
		}

		dt := opt.fixedDT
		if tick != nil {
			select {
			case <-ctx.Done():
				return n, ctx.Err()
			case <-pres.Done():
				return n, nil
			case now := <-tick:
				dt = min(now.Sub(last).Seconds(), maxDT)
				last = now
			}
		} else {
			select {
			case <-ctx.Done():
				return n, ctx.Err()
			case <-pres.Done():
				return n, nil
			default:
			}
		}

		sc.Update(dt)
		if err := sc.Draw(surf); err != nil {
			return n, err
		}
		if err := pres.Present(surf.Canvas()); err != nil {
			return n, fmt.Errorf("frame %d: %w", n, err)
		}
		n++
	}
	return n, nil
}
